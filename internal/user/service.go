package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/logger"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// Registration is the input for CreateUser. An empty membership means free.
type Registration struct {
	Username   string                `validate:"required,min=3,max=20"`
	Email      string                `validate:"required,email"`
	Password   string                `validate:"required,min=6"`
	Membership domain.MembershipTier `validate:"omitempty,oneof=free premium"`
}

// Service manages accounts, characters and professions
type Service interface {
	CreateUser(ctx context.Context, reg Registration) (*domain.User, error)
	// Login returns domain.ErrInvalidCredentials for an unknown email or a wrong password
	Login(ctx context.Context, email, password string) (*domain.User, error)
	GetUser(ctx context.Context, userID int) (*domain.User, error)

	CreateCharacter(ctx context.Context, userID int, name string) (*domain.Character, error)
	GetCharacter(ctx context.Context, characterID int) (*domain.Character, error)
	ListCharacters(ctx context.Context, userID int) ([]domain.Character, error)
	ListProfessions(ctx context.Context, characterID int) ([]domain.Profession, error)
}

type service struct {
	repo     repository.User
	validate *validator.Validate
	cost     int
}

// NewService creates a user service
func NewService(repo repository.User) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
		cost:     DefaultBcryptCost,
	}
}

func (s *service) CreateUser(ctx context.Context, reg Registration) (*domain.User, error) {
	log := logger.FromContext(ctx)

	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	if err := s.validate.Struct(reg); err != nil {
		return nil, invalidInput(err)
	}
	if reg.Membership == "" {
		reg.Membership = domain.MembershipFree
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgHashPasswordFailed, err)
	}

	created, err := s.repo.CreateUser(ctx, &domain.User{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Membership:   reg.Membership,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateUserFailed, err)
	}

	log.Info(LogMsgUserCreated, logger.AttrKeyUserID, created.ID, "username", created.Username)
	return created, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetUserFailed, err)
	}
	if u == nil {
		logger.FromContext(ctx).Debug(LogMsgLoginFailed, "reason", "unknown email")
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		logger.FromContext(ctx).Debug(LogMsgLoginFailed, "reason", "password mismatch", logger.AttrKeyUserID, u.ID)
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

func (s *service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetUserFailed, err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *service) CreateCharacter(ctx context.Context, userID int, name string) (*domain.Character, error) {
	name = strings.TrimSpace(name)
	if err := s.validate.Var(name, "required,min=2,max=20"); err != nil {
		return nil, invalidInput(err)
	}
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	c, err := s.repo.CreateCharacter(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateCharacterFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgCharacterCreated, logger.AttrKeyCharacterID, c.ID, logger.AttrKeyUserID, userID)
	return c, nil
}

func (s *service) GetCharacter(ctx context.Context, characterID int) (*domain.Character, error) {
	c, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetCharacterFailed, err)
	}
	if c == nil {
		return nil, domain.ErrCharacterNotFound
	}
	return c, nil
}

// ListCharacters returns an empty list for users without characters
func (s *service) ListCharacters(ctx context.Context, userID int) ([]domain.Character, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	chars, err := s.repo.ListCharactersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListCharactersFailed, err)
	}
	if chars == nil {
		chars = []domain.Character{}
	}
	return chars, nil
}

func (s *service) ListProfessions(ctx context.Context, characterID int) ([]domain.Profession, error) {
	if _, err := s.GetCharacter(ctx, characterID); err != nil {
		return nil, err
	}
	profs, err := s.repo.ListProfessions(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListProfessionsFailed, err)
	}
	return profs, nil
}

// invalidInput names the first failing field
func invalidInput(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		if field == "" {
			field = "name"
		}
		return fmt.Errorf("%w: %s failed %s", domain.ErrInvalidInput, field, fe.Tag())
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}
