package repository

import (
	"context"
	"time"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// Tx is the commit/rollback half of a unit of work
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// LedgerTx is the inventory ledger bound to an open transaction.
// Lookups return nil, nil when the row does not exist.
type LedgerTx interface {
	Tx
	GetCharacterForUpdate(ctx context.Context, characterID int) (*domain.Character, error)
	GetEntryForUpdate(ctx context.Context, characterID, itemID int) (*domain.InventoryEntry, error)
	InsertEntry(ctx context.Context, characterID, itemID, quantity int, equipped bool) (*domain.InventoryEntry, error)
	UpdateEntry(ctx context.Context, characterID, itemID, quantity int, equipped bool) (*domain.InventoryEntry, error)
	DeleteEntry(ctx context.Context, characterID, itemID int) error
	// AddQuantity merges quantity into the entry, creating it unequipped when absent
	AddQuantity(ctx context.Context, characterID, itemID, quantity int) (*domain.InventoryEntry, error)
	// UnequipSlot clears every equipped entry of the character in slot except keepItemID
	UnequipSlot(ctx context.Context, characterID int, slot domain.EquipmentSlot, keepItemID int) (int64, error)
}

// AfkTx is the AFK engine's unit of work
type AfkTx interface {
	LedgerTx
	GetMembership(ctx context.Context, characterID int) (domain.MembershipTier, error)
	SetCharacterAfk(ctx context.Context, characterID int, window domain.AfkWindow) error
	FinishCharacterAfk(ctx context.Context, characterID int, experience int64) (*domain.Character, error)
	CreateSession(ctx context.Context, session *domain.AfkSession) (*domain.AfkSession, error)
	GetSessionForUpdate(ctx context.Context, sessionID int) (*domain.AfkSession, error)
	// CompleteSession finalises a running session; it returns nil, nil when the
	// session was already completed
	CompleteSession(ctx context.Context, sessionID int, experience int64, items []domain.ItemStack, completedAt time.Time) (*domain.AfkSession, error)
}

// MarketTx is the marketplace's unit of work
type MarketTx interface {
	LedgerTx
	CreateListing(ctx context.Context, listing *domain.MarketListing) (*domain.MarketListing, error)
	GetListingForUpdate(ctx context.Context, listingID int) (*domain.MarketListing, error)
	// MarkListingSold deactivates an active listing and reports whether it did
	MarkListingSold(ctx context.Context, listingID, buyerID int, soldAt time.Time) (bool, error)
}
