package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/IdleRealms_Go/internal/database/generated"
	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

var (
	_ repository.LedgerTx = (*ledgerTx)(nil)
	_ repository.AfkTx    = (*afkTx)(nil)
	_ repository.MarketTx = (*marketTx)(nil)
)

// ledgerTx implements repository.LedgerTx on a pgx transaction
type ledgerTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return err
	}
	return nil
}

func (t *ledgerTx) GetCharacterForUpdate(ctx context.Context, characterID int) (*domain.Character, error) {
	if !fitsInt4(characterID) {
		return nil, nil
	}
	row, err := t.q.GetCharacterForUpdate(ctx, int32(characterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockCharacter, err)
	}
	return mapCharacter(row), nil
}

func (t *ledgerTx) GetEntryForUpdate(ctx context.Context, characterID, itemID int) (*domain.InventoryEntry, error) {
	if !fitsInt4(characterID, itemID) {
		return nil, nil
	}
	row, err := t.q.GetInventoryEntryForUpdate(ctx, generated.GetInventoryEntryForUpdateParams{
		CharacterID: int32(characterID),
		ItemID:      int32(itemID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEntry, err)
	}
	return mapEntry(row), nil
}

func (t *ledgerTx) InsertEntry(ctx context.Context, characterID, itemID, quantity int, equipped bool) (*domain.InventoryEntry, error) {
	if err := checkEntryArgs(characterID, itemID, quantity); err != nil {
		return nil, err
	}
	row, err := t.q.InsertInventoryEntry(ctx, generated.InsertInventoryEntryParams{
		CharacterID: int32(characterID),
		ItemID:      int32(itemID),
		Quantity:    int32(quantity),
		IsEquipped:  equipped,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertEntry, err)
	}
	return mapEntry(row), nil
}

func (t *ledgerTx) UpdateEntry(ctx context.Context, characterID, itemID, quantity int, equipped bool) (*domain.InventoryEntry, error) {
	if err := checkEntryArgs(characterID, itemID, quantity); err != nil {
		return nil, err
	}
	row, err := t.q.UpdateInventoryEntry(ctx, generated.UpdateInventoryEntryParams{
		CharacterID: int32(characterID),
		ItemID:      int32(itemID),
		Quantity:    int32(quantity),
		IsEquipped:  equipped,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateEntry, err)
	}
	return mapEntry(row), nil
}

func (t *ledgerTx) DeleteEntry(ctx context.Context, characterID, itemID int) error {
	if !fitsInt4(characterID, itemID) {
		return errIDOutOfRange
	}
	err := t.q.DeleteInventoryEntry(ctx, generated.DeleteInventoryEntryParams{
		CharacterID: int32(characterID),
		ItemID:      int32(itemID),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteEntry, err)
	}
	return nil
}

func (t *ledgerTx) AddQuantity(ctx context.Context, characterID, itemID, quantity int) (*domain.InventoryEntry, error) {
	if err := checkEntryArgs(characterID, itemID, quantity); err != nil {
		return nil, err
	}
	row, err := t.q.AddInventoryQuantity(ctx, generated.AddInventoryQuantityParams{
		CharacterID: int32(characterID),
		ItemID:      int32(itemID),
		Quantity:    int32(quantity),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAddQuantity, err)
	}
	return mapEntry(row), nil
}

func (t *ledgerTx) UnequipSlot(ctx context.Context, characterID int, slot domain.EquipmentSlot, keepItemID int) (int64, error) {
	if !fitsInt4(characterID, keepItemID) {
		return 0, errIDOutOfRange
	}
	n, err := t.q.UnequipSlot(ctx, generated.UnequipSlotParams{
		CharacterID:   int32(characterID),
		EquipmentSlot: slotText(slot),
		KeepItemID:    int32(keepItemID),
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUnequipSlot, err)
	}
	return n, nil
}

// afkTx adds session and AFK window writes to the ledger
type afkTx struct {
	*ledgerTx
}

func (t *afkTx) GetMembership(ctx context.Context, characterID int) (domain.MembershipTier, error) {
	if !fitsInt4(characterID) {
		return "", domain.ErrUserNotFound
	}
	m, err := t.q.GetMembershipByCharacterID(ctx, int32(characterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToGetMembership, err)
	}
	return domain.MembershipTier(m), nil
}

func (t *afkTx) SetCharacterAfk(ctx context.Context, characterID int, window domain.AfkWindow) error {
	if !fitsInt4(characterID) {
		return errIDOutOfRange
	}
	err := t.q.SetCharacterAfk(ctx, generated.SetCharacterAfkParams{
		ID:           int32(characterID),
		AfkStartTime: timestamptz(window.Start),
		AfkEndTime:   timestamptz(window.End),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetAfk, err)
	}
	return nil
}

func (t *afkTx) FinishCharacterAfk(ctx context.Context, characterID int, experience int64) (*domain.Character, error) {
	if !fitsInt4(characterID) {
		return nil, errIDOutOfRange
	}
	row, err := t.q.FinishCharacterAfk(ctx, generated.FinishCharacterAfkParams{
		ExperienceGained: experience,
		ID:               int32(characterID),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFinishAfk, err)
	}
	return mapCharacter(row), nil
}

func (t *afkTx) CreateSession(ctx context.Context, session *domain.AfkSession) (*domain.AfkSession, error) {
	if !fitsInt4(session.CharacterID) {
		return nil, errIDOutOfRange
	}
	row, err := t.q.CreateAfkSession(ctx, generated.CreateAfkSessionParams{
		CharacterID: int32(session.CharacterID),
		StartTime:   timestamptz(session.StartTime),
		EndTime:     timestamptz(session.EndTime),
		Realm:       string(session.Realm),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyAfk
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateSession, err)
	}
	return mapSession(row)
}

func (t *afkTx) GetSessionForUpdate(ctx context.Context, sessionID int) (*domain.AfkSession, error) {
	if !fitsInt4(sessionID) {
		return nil, nil
	}
	row, err := t.q.GetAfkSessionForUpdate(ctx, int32(sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSession, err)
	}
	return mapSession(row)
}

func (t *afkTx) CompleteSession(ctx context.Context, sessionID int, experience int64, items []domain.ItemStack, completedAt time.Time) (*domain.AfkSession, error) {
	if !fitsInt4(sessionID) {
		return nil, errIDOutOfRange
	}
	if items == nil {
		items = []domain.ItemStack{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalItemsFound, err)
	}

	row, err := t.q.CompleteAfkSession(ctx, generated.CompleteAfkSessionParams{
		ID:               int32(sessionID),
		ExperienceGained: experience,
		ItemsFound:       itemsJSON,
		CompletedAt:      timestamptz(completedAt),
	})
	if err != nil {
		// The status guard matched nothing: already completed
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCompleteSession, err)
	}
	return mapSession(row)
}

// marketTx adds listing writes to the ledger
type marketTx struct {
	*ledgerTx
}

func (t *marketTx) CreateListing(ctx context.Context, listing *domain.MarketListing) (*domain.MarketListing, error) {
	if err := checkEntryArgs(listing.SellerID, listing.ItemID, listing.Quantity); err != nil {
		return nil, err
	}
	row, err := t.q.CreateMarketListing(ctx, generated.CreateMarketListingParams{
		SellerID:     int32(listing.SellerID),
		ItemID:       int32(listing.ItemID),
		Quantity:     int32(listing.Quantity),
		PricePerUnit: decimalToNumeric(listing.PricePerUnit),
		TotalPrice:   decimalToNumeric(listing.TotalPrice),
		Escrowed:     listing.Escrowed,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateListing, err)
	}
	return mapListing(row), nil
}

func (t *marketTx) GetListingForUpdate(ctx context.Context, listingID int) (*domain.MarketListing, error) {
	if !fitsInt4(listingID) {
		return nil, nil
	}
	row, err := t.q.GetMarketListingForUpdate(ctx, int32(listingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetListing, err)
	}
	return mapListing(row), nil
}

func (t *marketTx) MarkListingSold(ctx context.Context, listingID, buyerID int, soldAt time.Time) (bool, error) {
	if !fitsInt4(listingID, buyerID) {
		return false, errIDOutOfRange
	}
	n, err := t.q.MarkListingSold(ctx, generated.MarkListingSoldParams{
		BuyerID: pgtype.Int4{Int32: int32(buyerID), Valid: true},
		SoldAt:  timestamptz(soldAt),
		ID:      int32(listingID),
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToMarkListingSold, err)
	}
	return n == 1, nil
}
