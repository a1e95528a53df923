package item

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

func helmet() *domain.Item {
	return &domain.Item{ID: 3, Name: "Iron Helmet", Type: domain.ItemTypeArmor, EquipmentSlot: domain.SlotHelmet}
}

func TestGetItem_CachesHits(t *testing.T) {
	// ARRANGE
	repo := new(MockCatalog)
	repo.On("GetItem", mock.Anything, 3).Return(helmet(), nil).Once()
	svc := NewService(repo, 16, time.Minute)
	ctx := context.Background()

	// ACT
	first, err1 := svc.GetItem(ctx, 3)
	second, err2 := svc.GetItem(ctx, 3)

	// ASSERT
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "GetItem", 1)
}

func TestGetItem_CachedCopyIsIsolated(t *testing.T) {
	repo := new(MockCatalog)
	repo.On("GetItem", mock.Anything, 3).Return(helmet(), nil).Once()
	svc := NewService(repo, 16, time.Minute)

	first, err := svc.GetItem(context.Background(), 3)
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := svc.GetItem(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Iron Helmet", second.Name)
}

func TestGetItem_NotFound(t *testing.T) {
	repo := new(MockCatalog)
	repo.On("GetItem", mock.Anything, 99).Return(nil, nil).Twice()
	svc := NewService(repo, 16, time.Minute)

	_, err := svc.GetItem(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// misses are not cached
	_, err = svc.GetItem(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	repo.AssertExpectations(t)
}

func TestGetItem_RepositoryError(t *testing.T) {
	repo := new(MockCatalog)
	repo.On("GetItem", mock.Anything, 3).Return(nil, errors.New("db down"))
	svc := NewService(repo, 16, time.Minute)

	_, err := svc.GetItem(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgGetItemFailed)
	assert.NotErrorIs(t, err, domain.ErrItemNotFound)
}

func TestListItems_WarmsCache(t *testing.T) {
	repo := new(MockCatalog)
	repo.On("ListItems", mock.Anything).Return([]domain.Item{*helmet()}, nil)
	svc := NewService(repo, 16, time.Minute)

	items, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	it, err := svc.GetItem(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Iron Helmet", it.Name)
	repo.AssertNotCalled(t, "GetItem", mock.Anything, mock.Anything)
}

func TestInvalidate_Purges(t *testing.T) {
	repo := new(MockCatalog)
	repo.On("GetItem", mock.Anything, 3).Return(helmet(), nil).Twice()
	svc := NewService(repo, 16, time.Minute)

	_, _ = svc.GetItem(context.Background(), 3)
	svc.Invalidate()
	_, _ = svc.GetItem(context.Background(), 3)

	repo.AssertNumberOfCalls(t, "GetItem", 2)
}

func TestListRealms_DisplayNames(t *testing.T) {
	repo := new(MockCatalog)
	repo.On("ListRealms", mock.Anything).Return([]domain.RealmInfo{
		{ID: 1, Name: domain.RealmEarth},
		{ID: 2, Name: domain.RealmMoon, DisplayName: "The Moon"},
	}, nil)
	svc := NewService(repo, 16, time.Minute)

	realms, err := svc.ListRealms(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Earth", realms[0].DisplayName)
	assert.Equal(t, "The Moon", realms[1].DisplayName)
}

func TestGetRealm(t *testing.T) {
	t.Run("invalid realm", func(t *testing.T) {
		svc := NewService(new(MockCatalog), 16, time.Minute)
		_, err := svc.GetRealm(context.Background(), "venus")
		assert.ErrorIs(t, err, domain.ErrInvalidRealm)
	})

	t.Run("missing row", func(t *testing.T) {
		repo := new(MockCatalog)
		repo.On("GetRealm", mock.Anything, domain.RealmMars).Return(nil, nil)
		svc := NewService(repo, 16, time.Minute)
		_, err := svc.GetRealm(context.Background(), domain.RealmMars)
		assert.ErrorIs(t, err, domain.ErrRealmNotFound)
	})

	t.Run("found", func(t *testing.T) {
		repo := new(MockCatalog)
		repo.On("GetRealm", mock.Anything, domain.RealmMars).
			Return(&domain.RealmInfo{ID: 3, Name: domain.RealmMars, RequiredLevel: 20}, nil)
		svc := NewService(repo, 16, time.Minute)
		info, err := svc.GetRealm(context.Background(), domain.RealmMars)
		require.NoError(t, err)
		assert.Equal(t, "Mars", info.DisplayName)
	})
}

func TestListMonstersByRealm(t *testing.T) {
	repo := new(MockCatalog)
	repo.On("ListMonstersByRealm", mock.Anything, domain.RealmEarth).Return([]domain.Monster{
		{ID: 1, Name: "Goblin", Realm: domain.RealmEarth, Type: domain.MonsterNormal},
	}, nil)
	svc := NewService(repo, 16, time.Minute)

	monsters, err := svc.ListMonstersByRealm(context.Background(), domain.RealmEarth)
	require.NoError(t, err)
	assert.Len(t, monsters, 1)

	_, err = svc.ListMonstersByRealm(context.Background(), "pluto")
	assert.ErrorIs(t, err, domain.ErrInvalidRealm)
}

func TestItemCache_EvictsOldest(t *testing.T) {
	c := newItemCache(2, time.Minute)
	for id := 1; id <= 3; id++ {
		c.Set(&domain.Item{ID: id})
	}

	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestItemCache_StaleVersionDropped(t *testing.T) {
	c := newItemCache(2, time.Minute)
	c.lru.Add(5, &cachedItem{Version: "0.1", Item: &domain.Item{ID: 5}})

	_, ok := c.Get(5)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}
