package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// Ledger primitives. They run inside a transaction owned by the caller, so the
// AFK engine and the marketplace mutate inventory through the same rules as
// UpdateInventory. The caller is expected to hold the character row lock.

// Credit adds quantity of item to the character, creating an unequipped entry
// when the character holds none
func Credit(ctx context.Context, tx repository.LedgerTx, characterID, itemID, quantity int) (*domain.InventoryEntry, error) {
	if quantity <= 0 {
		return nil, domain.ErrNonPositiveQuantity
	}
	entry, err := tx.AddQuantity(ctx, characterID, itemID, quantity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgWriteEntryFailed, err)
	}
	return entry, nil
}

// Debit removes quantity of item from the character. The entry is deleted when
// it reaches zero; a missing or short entry fails with ErrInsufficientQuantity.
func Debit(ctx context.Context, tx repository.LedgerTx, characterID, itemID, quantity int) (*domain.InventoryEntry, error) {
	if quantity <= 0 {
		return nil, domain.ErrNonPositiveQuantity
	}

	entry, err := tx.GetEntryForUpdate(ctx, characterID, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetEntryFailed, err)
	}
	if entry == nil || entry.Quantity < quantity {
		have := 0
		if entry != nil {
			have = entry.Quantity
		}
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientQuantity, have, quantity)
	}

	remaining := entry.Quantity - quantity
	if remaining == 0 {
		if err := tx.DeleteEntry(ctx, characterID, itemID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgDeleteEntryFailed, err)
		}
		return entry.Tombstone(time.Now()), nil
	}

	updated, err := tx.UpdateEntry(ctx, characterID, itemID, remaining, entry.IsEquipped)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgWriteEntryFailed, err)
	}
	return updated, nil
}

// ApplyResult describes what Apply changed
type ApplyResult struct {
	Entry *domain.InventoryEntry
	// Removed is true when a non-positive quantity deleted the entry
	Removed bool
	// Equipped is true when this call equipped the item into its slot
	Equipped bool
	// Unequipped counts entries evicted from the slot
	Unequipped int64
}

// Apply sets the character's entry for item to quantity.
//
// quantity <= 0 deletes an existing entry and returns its tombstone, and is
// rejected when there is nothing to delete. equip nil keeps the current flag.
// Equipping an item with a slot first clears every other equipped entry in
// that slot; equipping a slotless item stores it unequipped.
func Apply(ctx context.Context, tx repository.LedgerTx, character *domain.Character, item *domain.Item, quantity int, equip *bool, now time.Time) (*ApplyResult, error) {
	existing, err := tx.GetEntryForUpdate(ctx, character.ID, item.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetEntryFailed, err)
	}

	if quantity <= 0 {
		if existing == nil {
			return nil, domain.ErrCannotCreateEmpty
		}
		if err := tx.DeleteEntry(ctx, character.ID, item.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgDeleteEntryFailed, err)
		}
		return &ApplyResult{Entry: existing.Tombstone(now), Removed: true}, nil
	}

	equipped := existing != nil && existing.IsEquipped
	if equip != nil {
		equipped = *equip
	}
	if !item.Equippable() {
		equipped = false
	}

	res := &ApplyResult{}
	if equip != nil && *equip && item.Equippable() {
		if item.RequiredLevel > character.Level {
			return nil, fmt.Errorf("%w: requires level %d, character is %d", domain.ErrLevelTooLow, item.RequiredLevel, character.Level)
		}
		n, err := tx.UnequipSlot(ctx, character.ID, item.EquipmentSlot, item.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgUnequipFailed, err)
		}
		res.Unequipped = n
		res.Equipped = true
	}

	if existing == nil {
		res.Entry, err = tx.InsertEntry(ctx, character.ID, item.ID, quantity, equipped)
	} else {
		res.Entry, err = tx.UpdateEntry(ctx, character.ID, item.ID, quantity, equipped)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgWriteEntryFailed, err)
	}
	return res, nil
}
