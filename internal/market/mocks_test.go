package market

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/event"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// MockRepository implements repository.Market for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetListing(ctx context.Context, listingID int) (*domain.MarketListing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketListing), args.Error(1)
}

func (m *MockRepository) ListActiveListings(ctx context.Context) ([]domain.MarketListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketListing), args.Error(1)
}

func (m *MockRepository) ListListingsBySeller(ctx context.Context, sellerID int) ([]domain.MarketListing, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketListing), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.MarketTx), args.Error(1)
}

// MockTx implements repository.MarketTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) GetCharacterForUpdate(ctx context.Context, characterID int) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockTx) GetEntryForUpdate(ctx context.Context, characterID, itemID int) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, characterID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockTx) InsertEntry(ctx context.Context, characterID, itemID, quantity int, equipped bool) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, characterID, itemID, quantity, equipped)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockTx) UpdateEntry(ctx context.Context, characterID, itemID, quantity int, equipped bool) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, characterID, itemID, quantity, equipped)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockTx) DeleteEntry(ctx context.Context, characterID, itemID int) error {
	return m.Called(ctx, characterID, itemID).Error(0)
}

func (m *MockTx) AddQuantity(ctx context.Context, characterID, itemID, quantity int) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, characterID, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockTx) UnequipSlot(ctx context.Context, characterID int, slot domain.EquipmentSlot, keepItemID int) (int64, error) {
	args := m.Called(ctx, characterID, slot, keepItemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) CreateListing(ctx context.Context, listing *domain.MarketListing) (*domain.MarketListing, error) {
	args := m.Called(ctx, listing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketListing), args.Error(1)
}

func (m *MockTx) GetListingForUpdate(ctx context.Context, listingID int) (*domain.MarketListing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketListing), args.Error(1)
}

func (m *MockTx) MarkListingSold(ctx context.Context, listingID, buyerID int, soldAt time.Time) (bool, error) {
	args := m.Called(ctx, listingID, buyerID, soldAt)
	return args.Bool(0), args.Error(1)
}

// memoryCache is an in-process ListingsCache
type memoryCache struct {
	listings    []domain.MarketListing
	present     bool
	generation  int64
	invalidated int
}

func (c *memoryCache) GetActive(ctx context.Context) ([]domain.MarketListing, bool) {
	return c.listings, c.present
}

func (c *memoryCache) Generation(ctx context.Context) (int64, bool) {
	return c.generation, true
}

func (c *memoryCache) SetActive(ctx context.Context, generation int64, listings []domain.MarketListing) {
	if generation != c.generation {
		return
	}
	c.listings, c.present = listings, true
}

func (c *memoryCache) Invalidate(ctx context.Context) {
	c.listings, c.present = nil, false
	c.generation++
	c.invalidated++
}

// recordingBus captures published events
type recordingBus struct {
	events []event.Event
}

func (b *recordingBus) Publish(ctx context.Context, e event.Event) error {
	b.events = append(b.events, e)
	return nil
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}
