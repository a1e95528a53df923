package inventory

// Error message constants
const (
	ErrMsgBeginTxFailed      = "failed to begin transaction"
	ErrMsgCommitFailed       = "failed to commit transaction"
	ErrMsgGetCharacterFailed = "failed to get character"
	ErrMsgGetItemFailed      = "failed to get item"
	ErrMsgGetEntryFailed     = "failed to get inventory entry"
	ErrMsgWriteEntryFailed   = "failed to write inventory entry"
	ErrMsgDeleteEntryFailed  = "failed to delete inventory entry"
	ErrMsgUnequipFailed      = "failed to unequip slot"
	ErrMsgGetInventoryFailed = "failed to get inventory"
)

// Log message constants
const (
	LogMsgUpdateInventory    = "UpdateInventory called"
	LogMsgEntryRemoved       = "Inventory entry removed"
	LogMsgEquipIgnored       = "Equip requested for item without slot, storing unequipped"
	LogMsgSlotEvicted        = "Unequipped previous items in slot"
	LogMsgPublishEventFailed = "Failed to publish inventory event"
)
