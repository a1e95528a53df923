package domain

import "time"

// InventoryEntry is one (character, item) row of the ledger.
// A stored entry always has Quantity > 0; a zero quantity only appears on the
// snapshot returned after an entry is removed.
type InventoryEntry struct {
	ID          int       `json:"id"`
	CharacterID int       `json:"character_id"`
	ItemID      int       `json:"item_id"`
	Quantity    int       `json:"quantity"`
	IsEquipped  bool      `json:"is_equipped"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Populated on reads joined with the catalog
	ItemName      string        `json:"item_name,omitempty"`
	EquipmentSlot EquipmentSlot `json:"equipment_slot,omitempty"`
}

// Tombstone returns the snapshot reported after the entry is deleted
func (e InventoryEntry) Tombstone(now time.Time) *InventoryEntry {
	e.Quantity = 0
	e.IsEquipped = false
	e.UpdatedAt = now
	return &e
}

// ItemStack is a quantity of one catalog item, used for rewards and transfers
type ItemStack struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}
