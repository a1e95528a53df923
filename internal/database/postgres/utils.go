package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/IdleRealms_Go/internal/database/generated"
	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// beginTx starts a transaction and binds the queries to it
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (*ledgerTx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &ledgerTx{tx: tx, q: q.WithTx(tx)}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// ---- pgtype conversions ----

// Every id and quantity column is INT4. A Go int beyond that range must not
// be narrowed: int32(seller+1<<32) is the seller again.
var (
	errIDOutOfRange       = fmt.Errorf("%w: id outside INT4 range", domain.ErrNotFound)
	errQuantityOutOfRange = fmt.Errorf("%w: quantity outside INT4 range", domain.ErrInvalidState)
)

func fitsInt4(values ...int) bool {
	for _, v := range values {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return false
		}
	}
	return true
}

func checkEntryArgs(characterID, itemID, quantity int) error {
	if !fitsInt4(characterID, itemID) {
		return errIDOutOfRange
	}
	if !fitsInt4(quantity) {
		return errQuantityOutOfRange
	}
	return nil
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func ptrTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func ptrInt(i pgtype.Int4) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int32)
	return &v
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func slotText(slot domain.EquipmentSlot) pgtype.Text {
	return pgtype.Text{String: string(slot), Valid: slot != domain.SlotNone}
}

// numericToDecimal converts NUMERIC to a decimal; NULL and NaN read as zero
func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// ---- row mappers ----

func mapUser(row generated.User) *domain.User {
	return &domain.User{
		ID:           int(row.ID),
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Membership:   domain.MembershipTier(row.MembershipType),
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}

func mapCharacter(row generated.Character) *domain.Character {
	c := &domain.Character{
		ID:           int(row.ID),
		UserID:       int(row.UserID),
		Name:         row.Name,
		Level:        int(row.Level),
		Experience:   row.Experience,
		Health:       int(row.Health),
		MaxHealth:    int(row.MaxHealth),
		Attack:       int(row.Attack),
		Defense:      int(row.Defense),
		CurrentRealm: domain.Realm(row.CurrentRealm),
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
	// The table CHECK keeps is_afk and both timestamps in step
	if row.IsAfk && row.AfkStartTime.Valid && row.AfkEndTime.Valid {
		c.Afk = &domain.AfkWindow{Start: row.AfkStartTime.Time, End: row.AfkEndTime.Time}
	}
	return c
}

func mapProfession(row generated.Profession) domain.Profession {
	return domain.Profession{
		ID:          int(row.ID),
		CharacterID: int(row.CharacterID),
		Type:        domain.ProfessionType(row.Type),
		Level:       int(row.Level),
		Experience:  int(row.Experience),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func mapItem(row generated.Item) *domain.Item {
	return &domain.Item{
		ID:            int(row.ID),
		Name:          row.Name,
		Description:   row.Description,
		Type:          domain.ItemType(row.Type),
		Rarity:        domain.Rarity(row.Rarity),
		EquipmentSlot: domain.EquipmentSlot(row.EquipmentSlot.String),
		AttackBonus:   ptrInt(row.AttackBonus),
		DefenseBonus:  ptrInt(row.DefenseBonus),
		HealthBonus:   ptrInt(row.HealthBonus),
		RequiredLevel: int(row.RequiredLevel),
		MarketValue:   numericToDecimal(row.MarketValue),
		CreatedAt:     row.CreatedAt.Time,
	}
}

func mapRealm(row generated.Realm) *domain.RealmInfo {
	return &domain.RealmInfo{
		ID:                   int(row.ID),
		Name:                 domain.Realm(row.Name),
		DisplayName:          row.DisplayName,
		RequiredLevel:        int(row.RequiredLevel),
		RequiredBossDefeated: textToPtr(row.RequiredBossDefeated),
		Description:          row.Description,
		CreatedAt:            row.CreatedAt.Time,
	}
}

func mapMonster(row generated.Monster) domain.Monster {
	return domain.Monster{
		ID:               int(row.ID),
		Name:             row.Name,
		Realm:            domain.Realm(row.Realm),
		Type:             domain.MonsterType(row.Type),
		Level:            int(row.Level),
		Health:           int(row.Health),
		Attack:           int(row.Attack),
		Defense:          int(row.Defense),
		ExperienceReward: int(row.ExperienceReward),
		CreatedAt:        row.CreatedAt.Time,
	}
}

func mapEntry(row generated.Inventory) *domain.InventoryEntry {
	return &domain.InventoryEntry{
		ID:          int(row.ID),
		CharacterID: int(row.CharacterID),
		ItemID:      int(row.ItemID),
		Quantity:    int(row.Quantity),
		IsEquipped:  row.IsEquipped,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func mapSession(row generated.AfkSession) (*domain.AfkSession, error) {
	items := []domain.ItemStack{}
	if len(row.ItemsFound) > 0 {
		if err := json.Unmarshal(row.ItemsFound, &items); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalItemsFound, err)
		}
	}
	status := domain.AfkStatus(row.Status)
	return &domain.AfkSession{
		ID:               int(row.ID),
		CharacterID:      int(row.CharacterID),
		StartTime:        row.StartTime.Time,
		EndTime:          row.EndTime.Time,
		Realm:            domain.Realm(row.Realm),
		ExperienceGained: row.ExperienceGained,
		ItemsFound:       items,
		Status:           status,
		IsCompleted:      status == domain.AfkStatusCompleted,
		CompletedAt:      ptrTime(row.CompletedAt),
		CreatedAt:        row.CreatedAt.Time,
	}, nil
}

func mapListing(row generated.MarketListing) *domain.MarketListing {
	return &domain.MarketListing{
		ID:           int(row.ID),
		SellerID:     int(row.SellerID),
		ItemID:       int(row.ItemID),
		Quantity:     int(row.Quantity),
		PricePerUnit: numericToDecimal(row.PricePerUnit),
		TotalPrice:   numericToDecimal(row.TotalPrice),
		IsActive:     row.IsActive,
		Escrowed:     row.Escrowed,
		BuyerID:      ptrInt(row.BuyerID),
		SoldAt:       ptrTime(row.SoldAt),
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}

func mapChatMessage(row generated.ChatMessage) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        int(row.ID),
		UserID:    int(row.UserID),
		Username:  row.Username,
		Message:   row.Message,
		CreatedAt: row.CreatedAt.Time,
	}
}
