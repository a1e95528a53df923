package repository

import (
	"context"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// Chat defines persistence for chat messages
type Chat interface {
	CreateMessage(ctx context.Context, userID int, username, message string) (*domain.ChatMessage, error)
	ListRecentMessages(ctx context.Context, limit int) ([]domain.ChatMessage, error)
}
