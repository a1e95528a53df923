package item

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// MockCatalog implements repository.Catalog for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalog) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalog) GetRealm(ctx context.Context, realm domain.Realm) (*domain.RealmInfo, error) {
	args := m.Called(ctx, realm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RealmInfo), args.Error(1)
}

func (m *MockCatalog) ListRealms(ctx context.Context) ([]domain.RealmInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RealmInfo), args.Error(1)
}

func (m *MockCatalog) ListMonstersByRealm(ctx context.Context, realm domain.Realm) ([]domain.Monster, error) {
	args := m.Called(ctx, realm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Monster), args.Error(1)
}
