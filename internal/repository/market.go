package repository

import (
	"context"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// Market defines persistence for marketplace listings
type Market interface {
	GetListing(ctx context.Context, listingID int) (*domain.MarketListing, error)
	ListActiveListings(ctx context.Context) ([]domain.MarketListing, error)
	ListListingsBySeller(ctx context.Context, sellerID int) ([]domain.MarketListing, error)
	BeginTx(ctx context.Context) (MarketTx, error)
}
