package inventory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/event"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// MockRepository implements repository.Inventory for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetInventory(ctx context.Context, characterID int) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

// MockTx implements repository.LedgerTx for testing
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

// MockItems implements ItemLookup for testing
type MockItems struct {
	mock.Mock
}

func (m *MockItems) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
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
