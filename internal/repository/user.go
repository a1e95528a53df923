package repository

import (
	"context"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// User defines persistence for accounts, characters and professions
type User interface {
	// CreateUser returns domain.ErrUsernameTaken when username or email is in use
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// CreateCharacter also seeds the character's professions
	CreateCharacter(ctx context.Context, userID int, name string) (*domain.Character, error)
	GetCharacter(ctx context.Context, characterID int) (*domain.Character, error)
	ListCharactersByUser(ctx context.Context, userID int) ([]domain.Character, error)
	ListProfessions(ctx context.Context, characterID int) ([]domain.Profession, error)
}
