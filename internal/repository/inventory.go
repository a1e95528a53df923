package repository

import (
	"context"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// Inventory defines persistence for the inventory ledger
type Inventory interface {
	GetInventory(ctx context.Context, characterID int) ([]domain.InventoryEntry, error)
	BeginTx(ctx context.Context) (LedgerTx, error)
}
