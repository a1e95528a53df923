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

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db, q: generated.New(db)}
}

var _ repository.User = (*UserRepository)(nil)

// CreateUser inserts a user; duplicate username or email maps to ErrUsernameTaken
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	row, err := r.q.CreateUser(ctx, generated.CreateUserParams{
		Username:       user.Username,
		Email:          user.Email,
		PasswordHash:   user.PasswordHash,
		MembershipType: string(user.Membership),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return mapUser(row), nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	if !fitsInt4(userID) {
		return nil, nil
	}
	row, err := r.q.GetUserByID(ctx, int32(userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return mapUser(row), nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserByEmail, err)
	}
	return mapUser(row), nil
}

// CreateCharacter inserts the character and its starting professions together
func (r *UserRepository) CreateCharacter(ctx context.Context, userID int, name string) (*domain.Character, error) {
	if !fitsInt4(userID) {
		return nil, errIDOutOfRange
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := r.q.WithTx(tx)
	row, err := q.CreateCharacter(ctx, generated.CreateCharacterParams{
		UserID: int32(userID),
		Name:   name,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertCharacter, err)
	}

	for _, p := range []domain.ProfessionType{domain.ProfessionMining, domain.ProfessionChopping} {
		if _, err := q.CreateProfession(ctx, generated.CreateProfessionParams{
			CharacterID: row.ID,
			Type:        string(p),
		}); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSeedProfession, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return mapCharacter(row), nil
}

func (r *UserRepository) GetCharacter(ctx context.Context, characterID int) (*domain.Character, error) {
	if !fitsInt4(characterID) {
		return nil, nil
	}
	row, err := r.q.GetCharacter(ctx, int32(characterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCharacter, err)
	}
	return mapCharacter(row), nil
}

func (r *UserRepository) ListCharactersByUser(ctx context.Context, userID int) ([]domain.Character, error) {
	if !fitsInt4(userID) {
		return []domain.Character{}, nil
	}
	rows, err := r.q.ListCharactersByUser(ctx, int32(userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCharacters, err)
	}
	out := make([]domain.Character, 0, len(rows))
	for _, row := range rows {
		out = append(out, *mapCharacter(row))
	}
	return out, nil
}

func (r *UserRepository) ListProfessions(ctx context.Context, characterID int) ([]domain.Profession, error) {
	if !fitsInt4(characterID) {
		return []domain.Profession{}, nil
	}
	rows, err := r.q.ListProfessionsByCharacter(ctx, int32(characterID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListProfessions, err)
	}
	out := make([]domain.Profession, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapProfession(row))
	}
	return out, nil
}
