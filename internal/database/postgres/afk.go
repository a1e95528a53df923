package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleRealms_Go/internal/database/generated"
	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// AfkRepository implements repository.Afk for PostgreSQL
type AfkRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewAfkRepository creates a new AfkRepository
func NewAfkRepository(db *pgxpool.Pool) *AfkRepository {
	return &AfkRepository{db: db, q: generated.New(db)}
}

var _ repository.Afk = (*AfkRepository)(nil)

// GetSession returns nil, nil when the session does not exist
func (r *AfkRepository) GetSession(ctx context.Context, sessionID int) (*domain.AfkSession, error) {
	if !fitsInt4(sessionID) {
		return nil, nil
	}
	row, err := r.q.GetAfkSession(ctx, int32(sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSession, err)
	}
	return mapSession(row)
}

// ListSessionsByCharacter returns the newest sessions first
func (r *AfkRepository) ListSessionsByCharacter(ctx context.Context, characterID, limit int) ([]domain.AfkSession, error) {
	if !fitsInt4(characterID) {
		return []domain.AfkSession{}, nil
	}
	if limit <= 0 || !fitsInt4(limit) {
		limit = DefaultSessionListLimit
	}
	rows, err := r.q.ListAfkSessionsByCharacter(ctx, generated.ListAfkSessionsByCharacterParams{
		CharacterID: int32(characterID),
		Limit:       int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}

	sessions := make([]domain.AfkSession, 0, len(rows))
	for _, row := range rows {
		s, err := mapSession(row)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, nil
}

// BeginTx opens an AFK transaction
func (r *AfkRepository) BeginTx(ctx context.Context) (repository.AfkTx, error) {
	tx, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return &afkTx{ledgerTx: tx}, nil
}
