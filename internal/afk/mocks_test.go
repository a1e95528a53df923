package afk

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/event"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// MockRepository implements repository.Afk for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetSession(ctx context.Context, sessionID int) (*domain.AfkSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AfkSession), args.Error(1)
}

func (m *MockRepository) ListSessionsByCharacter(ctx context.Context, characterID, limit int) ([]domain.AfkSession, error) {
	args := m.Called(ctx, characterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AfkSession), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.AfkTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AfkTx), args.Error(1)
}

// MockTx implements repository.AfkTx for testing
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

func (m *MockTx) GetMembership(ctx context.Context, characterID int) (domain.MembershipTier, error) {
	args := m.Called(ctx, characterID)
	return args.Get(0).(domain.MembershipTier), args.Error(1)
}

func (m *MockTx) SetCharacterAfk(ctx context.Context, characterID int, window domain.AfkWindow) error {
	return m.Called(ctx, characterID, window).Error(0)
}

func (m *MockTx) FinishCharacterAfk(ctx context.Context, characterID int, experience int64) (*domain.Character, error) {
	args := m.Called(ctx, characterID, experience)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockTx) CreateSession(ctx context.Context, session *domain.AfkSession) (*domain.AfkSession, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AfkSession), args.Error(1)
}

func (m *MockTx) GetSessionForUpdate(ctx context.Context, sessionID int) (*domain.AfkSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AfkSession), args.Error(1)
}

func (m *MockTx) CompleteSession(ctx context.Context, sessionID int, experience int64, items []domain.ItemStack, completedAt time.Time) (*domain.AfkSession, error) {
	args := m.Called(ctx, sessionID, experience, items, completedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AfkSession), args.Error(1)
}

// MockItems implements inventory.ItemLookup for testing
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

// scriptedRoller returns its values in order, then 0.99 forever
type scriptedRoller struct {
	values []float64
	calls  int
}

func (r *scriptedRoller) Float64() float64 {
	r.calls++
	if len(r.values) == 0 {
		return 0.99
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
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
