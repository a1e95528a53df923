package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleRealms_Go/internal/database/generated"
	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// MarketRepository implements repository.Market for PostgreSQL
type MarketRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db, q: generated.New(db)}
}

var _ repository.Market = (*MarketRepository)(nil)

// GetListing returns nil, nil when the listing does not exist
func (r *MarketRepository) GetListing(ctx context.Context, listingID int) (*domain.MarketListing, error) {
	if !fitsInt4(listingID) {
		return nil, nil
	}
	row, err := r.q.GetMarketListing(ctx, int32(listingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetListing, err)
	}
	return mapListing(row), nil
}

// ListActiveListings returns active listings joined with item and seller names, by id
func (r *MarketRepository) ListActiveListings(ctx context.Context) ([]domain.MarketListing, error) {
	rows, err := r.q.ListActiveMarketListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListListings, err)
	}

	listings := make([]domain.MarketListing, 0, len(rows))
	for _, row := range rows {
		l := mapListing(generated.MarketListing{
			ID:           row.ID,
			SellerID:     row.SellerID,
			ItemID:       row.ItemID,
			Quantity:     row.Quantity,
			PricePerUnit: row.PricePerUnit,
			TotalPrice:   row.TotalPrice,
			IsActive:     row.IsActive,
			Escrowed:     row.Escrowed,
			BuyerID:      row.BuyerID,
			SoldAt:       row.SoldAt,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		})
		l.ItemName = row.ItemName
		l.SellerName = row.SellerName
		listings = append(listings, *l)
	}
	return listings, nil
}

// ListListingsBySeller returns every listing of a seller, newest first
func (r *MarketRepository) ListListingsBySeller(ctx context.Context, sellerID int) ([]domain.MarketListing, error) {
	if !fitsInt4(sellerID) {
		return []domain.MarketListing{}, nil
	}
	rows, err := r.q.ListMarketListingsBySeller(ctx, int32(sellerID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListListings, err)
	}

	listings := make([]domain.MarketListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, *mapListing(row))
	}
	return listings, nil
}

// BeginTx opens a marketplace transaction
func (r *MarketRepository) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	tx, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return &marketTx{ledgerTx: tx}, nil
}
