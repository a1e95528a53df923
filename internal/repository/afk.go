package repository

import (
	"context"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// Afk defines persistence for AFK sessions
type Afk interface {
	GetSession(ctx context.Context, sessionID int) (*domain.AfkSession, error)
	ListSessionsByCharacter(ctx context.Context, characterID, limit int) ([]domain.AfkSession, error)
	BeginTx(ctx context.Context) (AfkTx, error)
}
