package market

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/event"
	"github.com/osse101/IdleRealms_Go/internal/inventory"
	"github.com/osse101/IdleRealms_Go/internal/logger"
	"github.com/osse101/IdleRealms_Go/internal/metrics"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// ListingsCache holds the active listings snapshot. Generation changes on
// every Invalidate; SetActive drops a snapshot whose generation is stale.
type ListingsCache interface {
	GetActive(ctx context.Context) ([]domain.MarketListing, bool)
	Generation(ctx context.Context) (int64, bool)
	SetActive(ctx context.Context, generation int64, listings []domain.MarketListing)
	Invalidate(ctx context.Context)
}

// Config selects the listing mode
type Config struct {
	// Escrow debits the seller when the listing is created. Without it a
	// listing only announces the offer and the seller keeps the items.
	Escrow bool
}

// Service defines the marketplace operations
type Service interface {
	CreateMarketListing(ctx context.Context, sellerID, itemID, quantity int, pricePerUnit decimal.Decimal) (*domain.MarketListing, error)
	ListActiveMarketListings(ctx context.Context) ([]domain.MarketListing, error)
	GetMarketListing(ctx context.Context, listingID int) (*domain.MarketListing, error)
	ListSellerListings(ctx context.Context, sellerID int) ([]domain.MarketListing, error)
	PurchaseMarketItem(ctx context.Context, listingID, buyerID int) (*domain.PurchaseResult, error)
}

type service struct {
	repo  repository.Market
	cache ListingsCache
	bus   event.Bus
	cfg   Config
	now   func() time.Time
}

// NewService creates the marketplace. cache and bus may be nil.
func NewService(repo repository.Market, cache ListingsCache, bus event.Bus, cfg Config) Service {
	return &service{
		repo:  repo,
		cache: cache,
		bus:   bus,
		cfg:   cfg,
		now:   time.Now,
	}
}

func (s *service) CreateMarketListing(ctx context.Context, sellerID, itemID, quantity int, pricePerUnit decimal.Decimal) (*domain.MarketListing, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateCalled, logger.AttrKeySellerID, sellerID, logger.AttrKeyItemID, itemID, "quantity", quantity, "price_per_unit", pricePerUnit.String(), "escrow", s.cfg.Escrow)

	if quantity <= 0 {
		return nil, domain.ErrNonPositiveQuantity
	}
	if !domain.ValidPrice(pricePerUnit) {
		return nil, fmt.Errorf("%w: got %s", domain.ErrInvalidPrice, pricePerUnit.String())
	}
	total := domain.ListingTotal(quantity, pricePerUnit)
	if total.GreaterThan(domain.MaxMoney) {
		return nil, fmt.Errorf("%w: %d x %s", domain.ErrTotalTooLarge, quantity, pricePerUnit.String())
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// 1. Lock the seller so concurrent listings see each other's escrow
	seller, err := tx.GetCharacterForUpdate(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetCharacterFailed, err)
	}
	if seller == nil {
		return nil, domain.ErrCharacterNotFound
	}

	// 2. The seller must hold the quantity
	entry, err := tx.GetEntryForUpdate(ctx, sellerID, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetEntryFailed, err)
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: item %d", domain.ErrInventoryNotFound, itemID)
	}
	if entry.Quantity < quantity {
		return nil, fmt.Errorf("%w: have %d, listing %d", domain.ErrInsufficientQuantity, entry.Quantity, quantity)
	}

	// 3. Escrow mode takes the items now
	if s.cfg.Escrow {
		if _, err := inventory.Debit(ctx, tx, sellerID, itemID, quantity); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgEscrowFailed, err)
		}
	}

	listing, err := tx.CreateListing(ctx, &domain.MarketListing{
		SellerID:     sellerID,
		ItemID:       itemID,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		TotalPrice:   total,
		IsActive:     true,
		Escrowed:     s.cfg.Escrow,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateListingFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgListingCreated, logger.AttrKeyListingID, listing.ID, "total_price", listing.TotalPrice.StringFixed(domain.MoneyScale))
	s.invalidate(ctx)
	s.publish(ctx, event.NewListingCreatedEvent(listing))
	return listing, nil
}

func (s *service) ListActiveMarketListings(ctx context.Context) ([]domain.MarketListing, error) {
	var (
		generation int64
		cacheable  bool
	)
	if s.cache != nil {
		if listings, ok := s.cache.GetActive(ctx); ok {
			return listings, nil
		}
		// read before the query so a purchase committing meanwhile wins
		generation, cacheable = s.cache.Generation(ctx)
	}

	listings, err := s.repo.ListActiveListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListListingsFailed, err)
	}

	if cacheable {
		s.cache.SetActive(ctx, generation, listings)
	}
	return listings, nil
}

func (s *service) GetMarketListing(ctx context.Context, listingID int) (*domain.MarketListing, error) {
	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetListingFailed, err)
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}
	return listing, nil
}

func (s *service) ListSellerListings(ctx context.Context, sellerID int) ([]domain.MarketListing, error) {
	listings, err := s.repo.ListListingsBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListListingsFailed, err)
	}
	return listings, nil
}

func (s *service) PurchaseMarketItem(ctx context.Context, listingID, buyerID int) (*domain.PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, logger.AttrKeyListingID, listingID, logger.AttrKeyBuyerID, buyerID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	skip := func(reason domain.PurchaseSkipReason, listing *domain.MarketListing) (*domain.PurchaseResult, error) {
		log.Info(LogMsgPurchaseSkipped, logger.AttrKeyListingID, listingID, logger.AttrKeyBuyerID, buyerID, "reason", reason)
		metrics.MarketPurchaseNoops.WithLabelValues(string(reason)).Inc()
		return &domain.PurchaseResult{Reason: reason, Listing: listing}, nil
	}

	// 1. Lock the listing; a concurrent buyer waits here and then sees it inactive
	listing, err := tx.GetListingForUpdate(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetListingFailed, err)
	}
	if listing == nil {
		return skip(domain.PurchaseSkipNotFound, nil)
	}
	if !listing.IsActive {
		return skip(domain.PurchaseSkipInactive, listing)
	}

	// 2. Lock the buyer; the ledger credit relies on it
	buyer, err := tx.GetCharacterForUpdate(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetCharacterFailed, err)
	}
	if buyer == nil {
		return skip(domain.PurchaseSkipBuyerNotFound, listing)
	}
	if buyer.ID == listing.SellerID {
		return skip(domain.PurchaseSkipSelfPurchase, listing)
	}
	buyerID = buyer.ID

	// 3. Move the goods, then close the listing
	if _, err := inventory.Credit(ctx, tx, buyerID, listing.ItemID, listing.Quantity); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreditBuyerFailed, err)
	}

	soldAt := s.now().UTC()
	sold, err := tx.MarkListingSold(ctx, listingID, buyerID, soldAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMarkSoldFailed, err)
	}
	if !sold {
		return skip(domain.PurchaseSkipInactive, listing)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	snapshot := *listing
	snapshot.IsActive = false
	snapshot.BuyerID = &buyerID
	snapshot.SoldAt = &soldAt
	snapshot.UpdatedAt = soldAt

	log.Info(LogMsgListingSold, logger.AttrKeyListingID, listingID, logger.AttrKeyBuyerID, buyerID, logger.AttrKeySellerID, listing.SellerID, "total_price", listing.TotalPrice.StringFixed(domain.MoneyScale))
	s.invalidate(ctx)
	s.publish(ctx, event.NewListingSoldEvent(&snapshot, buyerID))

	return &domain.PurchaseResult{Purchased: true, Listing: &snapshot}, nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishEventFailed, "event_type", e.Type, "error", err)
	}
}
