package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/event"
	"github.com/osse101/IdleRealms_Go/internal/logger"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// UserLookup resolves the sender; it returns domain.ErrUserNotFound for unknown ids
type UserLookup interface {
	GetUser(ctx context.Context, userID int) (*domain.User, error)
}

// Service is the global chat
type Service interface {
	Send(ctx context.Context, userID int, message string) (*domain.ChatMessage, error)
	// List returns the newest messages first
	List(ctx context.Context, limit int) ([]domain.ChatMessage, error)
}

type service struct {
	repo     repository.Chat
	users    UserLookup
	bus      event.Bus
	validate *validator.Validate
}

func NewService(repo repository.Chat, users UserLookup, bus event.Bus) Service {
	return &service{
		repo:     repo,
		users:    users,
		bus:      bus,
		validate: validator.New(),
	}
}

func (s *service) Send(ctx context.Context, userID int, message string) (*domain.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if err := s.validate.Var(message, "required,max=500"); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("%w: message failed %s", domain.ErrInvalidInput, verrs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	msg, err := s.repo.CreateMessage(ctx, u.ID, u.Username, message)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateMessageFailed, err)
	}

	logger.FromContext(ctx).Debug(LogMsgMessageSent, "message_id", msg.ID, logger.AttrKeyUserID, u.ID)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewChatMessageEvent(msg)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishEventFailed, "error", err)
		}
	}
	return msg, nil
}

// List clamps limit to 1..MaxListLimit; zero or negative means DefaultListLimit
func (s *service) List(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	msgs, err := s.repo.ListRecentMessages(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListMessagesFailed, err)
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	return msgs, nil
}
