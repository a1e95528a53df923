package item

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// Service is the read-only game catalog
type Service interface {
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	ListRealms(ctx context.Context) ([]domain.RealmInfo, error)
	GetRealm(ctx context.Context, realm domain.Realm) (*domain.RealmInfo, error)
	ListMonstersByRealm(ctx context.Context, realm domain.Realm) ([]domain.Monster, error)
	// Invalidate drops every cached item
	Invalidate()
}

type service struct {
	repo  repository.Catalog
	cache *itemCache
	title cases.Caser
}

// NewService creates the catalog with an item cache of cacheSize entries
func NewService(repo repository.Catalog, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		cache: newItemCache(cacheSize, cacheTTL),
		title: cases.Title(language.English),
	}
}

// GetItem returns domain.ErrItemNotFound for unknown ids. Misses are not cached.
func (s *service) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	if it, ok := s.cache.Get(itemID); ok {
		return it, nil
	}

	it, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetItemFailed, err)
	}
	if it == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}

	s.cache.Set(it)
	return it, nil
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListItemsFailed, err)
	}
	for i := range items {
		s.cache.Set(&items[i])
	}
	return items, nil
}

func (s *service) ListRealms(ctx context.Context) ([]domain.RealmInfo, error) {
	realms, err := s.repo.ListRealms(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListRealmsFailed, err)
	}
	for i := range realms {
		s.decorate(&realms[i])
	}
	return realms, nil
}

func (s *service) GetRealm(ctx context.Context, realm domain.Realm) (*domain.RealmInfo, error) {
	if !realm.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRealm, realm)
	}
	info, err := s.repo.GetRealm(ctx, realm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetRealmFailed, err)
	}
	if info == nil {
		return nil, domain.ErrRealmNotFound
	}
	s.decorate(info)
	return info, nil
}

func (s *service) ListMonstersByRealm(ctx context.Context, realm domain.Realm) ([]domain.Monster, error) {
	if !realm.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRealm, realm)
	}
	monsters, err := s.repo.ListMonstersByRealm(ctx, realm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListMonstersFailed, err)
	}
	return monsters, nil
}

func (s *service) Invalidate() {
	s.cache.Purge()
}

// decorate fills the display name, e.g. "mars" -> "Mars"
func (s *service) decorate(r *domain.RealmInfo) {
	if r.DisplayName == "" {
		r.DisplayName = s.title.String(string(r.Name))
	}
}
