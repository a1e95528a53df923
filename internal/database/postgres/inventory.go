package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleRealms_Go/internal/database/generated"
	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db, q: generated.New(db)}
}

var _ repository.Inventory = (*InventoryRepository)(nil)

// GetInventory lists a character's entries joined with item name and slot
func (r *InventoryRepository) GetInventory(ctx context.Context, characterID int) ([]domain.InventoryEntry, error) {
	if !fitsInt4(characterID) {
		return []domain.InventoryEntry{}, nil
	}
	rows, err := r.q.ListInventoryByCharacter(ctx, int32(characterID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
	}

	entries := make([]domain.InventoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.InventoryEntry{
			ID:            int(row.ID),
			CharacterID:   int(row.CharacterID),
			ItemID:        int(row.ItemID),
			Quantity:      int(row.Quantity),
			IsEquipped:    row.IsEquipped,
			CreatedAt:     row.CreatedAt.Time,
			UpdatedAt:     row.UpdatedAt.Time,
			ItemName:      row.ItemName,
			EquipmentSlot: domain.EquipmentSlot(row.EquipmentSlot.String),
		})
	}
	return entries, nil
}

// BeginTx opens a ledger transaction
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	return beginTx(ctx, r.db, r.q)
}
