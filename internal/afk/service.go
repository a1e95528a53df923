package afk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/event"
	"github.com/osse101/IdleRealms_Go/internal/inventory"
	"github.com/osse101/IdleRealms_Go/internal/logger"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// Service defines the AFK session lifecycle
type Service interface {
	StartAfkSession(ctx context.Context, characterID, durationHours int) (*domain.AfkSession, error)
	CompleteAfkSession(ctx context.Context, sessionID int) (*domain.AfkCompletion, error)
	GetAfkSession(ctx context.Context, sessionID int) (*domain.AfkSession, error)
	ListCharacterSessions(ctx context.Context, characterID int) ([]domain.AfkSession, error)
}

type service struct {
	repo    repository.Afk
	rewards RewardTable
	roller  Roller
	items   inventory.ItemLookup
	bus     event.Bus
	now     func() time.Time
}

// NewService creates the AFK engine. bus may be nil.
func NewService(repo repository.Afk, rewards RewardTable, roller Roller, items inventory.ItemLookup, bus event.Bus) Service {
	return &service{
		repo:    repo,
		rewards: rewards,
		roller:  roller,
		items:   items,
		bus:     bus,
		now:     time.Now,
	}
}

func (s *service) StartAfkSession(ctx context.Context, characterID, durationHours int) (*domain.AfkSession, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgStartCalled, logger.AttrKeyCharacterID, characterID, "duration_hours", durationHours)

	if durationHours < MinDurationHours || durationHours > MaxDurationHours {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidDuration, durationHours)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// 1. Lock the character
	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetCharacterFailed, err)
	}
	if character == nil {
		return nil, domain.ErrCharacterNotFound
	}

	if character.IsAfk() {
		return nil, domain.ErrAlreadyAfk
	}

	// 2. Tier cap is read from the owner at call time
	tier, err := tx.GetMembership(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetMembershipFailed, err)
	}
	if limit := TierCapHours(tier); durationHours > limit {
		return nil, fmt.Errorf("%w: %s tier allows %d hours, requested %d", domain.ErrDurationExceedsTier, tier, limit, durationHours)
	}

	// 3. Open the window and record the session
	start := s.now().UTC()
	window := domain.AfkWindow{Start: start, End: start.Add(time.Duration(durationHours) * time.Hour)}

	if err := tx.SetCharacterAfk(ctx, characterID, window); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSetAfkFailed, err)
	}

	session, err := tx.CreateSession(ctx, &domain.AfkSession{
		CharacterID: characterID,
		StartTime:   window.Start,
		EndTime:     window.End,
		Realm:       character.CurrentRealm,
		ItemsFound:  []domain.ItemStack{},
		Status:      domain.AfkStatusRunning,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateSessionFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgSessionStarted, logger.AttrKeySessionID, session.ID, logger.AttrKeyCharacterID, characterID, "realm", session.Realm, "end_time", session.EndTime)
	s.publish(ctx, event.NewAfkSessionStartedEvent(session))
	return session, nil
}

func (s *service) CompleteAfkSession(ctx context.Context, sessionID int) (*domain.AfkCompletion, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCompleteCalled, logger.AttrKeySessionID, sessionID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// 1. Lock the session and check it is due
	session, err := tx.GetSessionForUpdate(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetSessionFailed, err)
	}
	now := s.now().UTC()
	if skip := s.skipReason(session, now); skip != nil {
		log.Info(LogMsgCompleteSkipped, logger.AttrKeySessionID, sessionID, "reason", skip.Reason)
		return skip, nil
	}

	// 2. Lock the character
	character, err := tx.GetCharacterForUpdate(ctx, session.CharacterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetCharacterFailed, err)
	}
	if character == nil {
		return nil, domain.ErrCharacterNotFound
	}

	// 3. Settle
	hours := ElapsedHours(session.StartTime, session.EndTime)
	experience := int64(hours) * ExperienceRate(session.Realm)
	found := rollSession(s.rewards, s.roller, session.Realm, hours)

	credited, err := s.creditRewards(ctx, tx, session.CharacterID, found)
	if err != nil {
		return nil, err
	}

	completed, err := tx.CompleteSession(ctx, sessionID, experience, found, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCompleteFailed, err)
	}
	if completed == nil {
		// Settled by a concurrent completion
		return &domain.AfkCompletion{Reason: domain.AfkSkipAlreadyCompleted, Session: session}, nil
	}

	updated, err := tx.FinishCharacterAfk(ctx, session.CharacterID, experience)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFinishCharFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgSessionCompleted,
		logger.AttrKeySessionID, sessionID,
		logger.AttrKeyCharacterID, session.CharacterID,
		"hours", hours,
		"experience", experience,
		"items_found", len(found))
	s.publish(ctx, event.NewAfkSessionCompletedEvent(completed))

	return &domain.AfkCompletion{
		Completed:        true,
		Session:          completed,
		Character:        updated,
		ExperienceGained: experience,
		ItemsCredited:    credited,
	}, nil
}

// skipReason returns the no-op result for a session that cannot be settled now
func (s *service) skipReason(session *domain.AfkSession, now time.Time) *domain.AfkCompletion {
	switch {
	case session == nil:
		return &domain.AfkCompletion{Reason: domain.AfkSkipNotFound}
	case session.Completed():
		return &domain.AfkCompletion{Reason: domain.AfkSkipAlreadyCompleted, Session: session}
	case !session.Due(now):
		return &domain.AfkCompletion{
			Reason:   domain.AfkSkipNotDue,
			Session:  session,
			TimeLeft: session.EndTime.Sub(now).Round(time.Second).String(),
		}
	}
	return nil
}

// creditRewards moves rolled items into the ledger. Items that are not in the
// catalog stay on the session record but are not credited.
func (s *service) creditRewards(ctx context.Context, tx repository.AfkTx, characterID int, found []domain.ItemStack) ([]domain.ItemStack, error) {
	credited := []domain.ItemStack{}
	for _, stack := range found {
		if _, err := s.items.GetItem(ctx, stack.ItemID); err != nil {
			if errors.Is(err, domain.ErrItemNotFound) {
				logger.FromContext(ctx).Warn(LogMsgUnknownRewardItem, logger.AttrKeyItemID, stack.ItemID, logger.AttrKeyCharacterID, characterID)
				continue
			}
			return nil, fmt.Errorf("%s: %w", ErrMsgCreditItemFailed, err)
		}
		if _, err := inventory.Credit(ctx, tx, characterID, stack.ItemID, stack.Quantity); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgCreditItemFailed, err)
		}
		credited = append(credited, stack)
	}
	return credited, nil
}

func (s *service) GetAfkSession(ctx context.Context, sessionID int) (*domain.AfkSession, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetSessionFailed, err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *service) ListCharacterSessions(ctx context.Context, characterID int) ([]domain.AfkSession, error) {
	sessions, err := s.repo.ListSessionsByCharacter(ctx, characterID, DefaultSessionLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListSessionsFailed, err)
	}
	return sessions, nil
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishEventFailed, "event_type", e.Type, "error", err)
	}
}
