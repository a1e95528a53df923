package repository

import (
	"context"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// Catalog defines read access to items, realms and monsters
type Catalog interface {
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetRealm(ctx context.Context, realm domain.Realm) (*domain.RealmInfo, error)
	ListRealms(ctx context.Context) ([]domain.RealmInfo, error)
	ListMonstersByRealm(ctx context.Context, realm domain.Realm) ([]domain.Monster, error)
}
