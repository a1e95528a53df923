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

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	q *generated.Queries
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{q: generated.New(db)}
}

var _ repository.Catalog = (*CatalogRepository)(nil)

// GetItem returns nil, nil for unknown ids
func (r *CatalogRepository) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	if !fitsInt4(itemID) {
		return nil, nil
	}
	row, err := r.q.GetItem(ctx, int32(itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return mapItem(row), nil
}

func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.q.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, *mapItem(row))
	}
	return items, nil
}

func (r *CatalogRepository) GetRealm(ctx context.Context, realm domain.Realm) (*domain.RealmInfo, error) {
	row, err := r.q.GetRealm(ctx, string(realm))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRealm, err)
	}
	return mapRealm(row), nil
}

func (r *CatalogRepository) ListRealms(ctx context.Context) ([]domain.RealmInfo, error) {
	rows, err := r.q.ListRealms(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRealms, err)
	}
	realms := make([]domain.RealmInfo, 0, len(rows))
	for _, row := range rows {
		realms = append(realms, *mapRealm(row))
	}
	return realms, nil
}

func (r *CatalogRepository) ListMonstersByRealm(ctx context.Context, realm domain.Realm) ([]domain.Monster, error) {
	rows, err := r.q.ListMonstersByRealm(ctx, string(realm))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMonsters, err)
	}
	monsters := make([]domain.Monster, 0, len(rows))
	for _, row := range rows {
		monsters = append(monsters, mapMonster(row))
	}
	return monsters, nil
}
