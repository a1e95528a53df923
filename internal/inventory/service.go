package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/event"
	"github.com/osse101/IdleRealms_Go/internal/logger"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// ItemLookup resolves catalog items. Missing items fail with domain.ErrItemNotFound.
type ItemLookup interface {
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
}

// Service defines the interface for inventory operations
type Service interface {
	UpdateInventory(ctx context.Context, characterID, itemID, quantity int, equip *bool) (*domain.InventoryEntry, error)
	GetInventory(ctx context.Context, characterID int) ([]domain.InventoryEntry, error)
}

type service struct {
	repo  repository.Inventory
	items ItemLookup
	bus   event.Bus
	now   func() time.Time
}

// NewService creates a new inventory service. bus may be nil.
func NewService(repo repository.Inventory, items ItemLookup, bus event.Bus) Service {
	return &service{
		repo:  repo,
		items: items,
		bus:   bus,
		now:   time.Now,
	}
}

func (s *service) UpdateInventory(ctx context.Context, characterID, itemID, quantity int, equip *bool) (*domain.InventoryEntry, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpdateInventory, logger.AttrKeyCharacterID, characterID, logger.AttrKeyItemID, itemID, "quantity", quantity, "equip", equip)

	// 1. Resolve the catalog item (slot and required level)
	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetItemFailed, err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// 2. Lock the character; concurrent equips for one character queue here
	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetCharacterFailed, err)
	}
	if character == nil {
		return nil, domain.ErrCharacterNotFound
	}

	// 3. Upsert, evicting the slot if needed
	res, err := Apply(ctx, tx, character, item, quantity, equip, s.now())
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	switch {
	case res.Removed:
		log.Info(LogMsgEntryRemoved, logger.AttrKeyCharacterID, characterID, logger.AttrKeyItemID, itemID)
	case equip != nil && *equip && !item.Equippable():
		log.Debug(LogMsgEquipIgnored, logger.AttrKeyItemID, itemID)
	case res.Equipped:
		if res.Unequipped > 0 {
			log.Info(LogMsgSlotEvicted, logger.AttrKeyCharacterID, characterID, "slot", item.EquipmentSlot, "count", res.Unequipped)
		}
		s.publish(ctx, event.NewItemEquippedEvent(characterID, itemID, item.EquipmentSlot, res.Unequipped))
	}

	return res.Entry, nil
}

func (s *service) GetInventory(ctx context.Context, characterID int) ([]domain.InventoryEntry, error) {
	entries, err := s.repo.GetInventory(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetInventoryFailed, err)
	}
	return entries, nil
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishEventFailed, "event_type", e.Type, "error", err)
	}
}
