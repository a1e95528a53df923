package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleRealms_Go/internal/database/generated"
	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// ChatRepository implements repository.Chat for PostgreSQL
type ChatRepository struct {
	q *generated.Queries
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{q: generated.New(db)}
}

var _ repository.Chat = (*ChatRepository)(nil)

func (r *ChatRepository) CreateMessage(ctx context.Context, userID int, username, message string) (*domain.ChatMessage, error) {
	if !fitsInt4(userID) {
		return nil, errIDOutOfRange
	}
	row, err := r.q.CreateChatMessage(ctx, generated.CreateChatMessageParams{
		UserID:   int32(userID),
		Username: username,
		Message:  message,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertChat, err)
	}
	msg := mapChatMessage(row)
	return &msg, nil
}

// ListRecentMessages returns up to limit messages, newest first
func (r *ChatRepository) ListRecentMessages(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	rows, err := r.q.ListRecentChatMessages(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListChat, err)
	}
	msgs := make([]domain.ChatMessage, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, mapChatMessage(row))
	}
	return msgs, nil
}
