package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/event"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateMessage(ctx context.Context, userID int, username, message string) (*domain.ChatMessage, error) {
	args := m.Called(ctx, userID, username, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatMessage), args.Error(1)
}

func (m *MockRepository) ListRecentMessages(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type recordingBus struct {
	events []event.Event
}

func (b *recordingBus) Publish(_ context.Context, e event.Event) error {
	b.events = append(b.events, e)
	return nil
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func TestSend_DenormalisesUsernameAndPublishes(t *testing.T) {
	// ARRANGE
	repo, users, bus := new(MockRepository), new(MockUsers), &recordingBus{}
	users.On("GetUser", mock.Anything, 4).Return(&domain.User{ID: 4, Username: "alice"}, nil)
	repo.On("CreateMessage", mock.Anything, 4, "alice", "hello realm").
		Return(&domain.ChatMessage{ID: 1, UserID: 4, Username: "alice", Message: "hello realm", CreatedAt: time.Now()}, nil)
	svc := NewService(repo, users, bus)

	// ACT
	msg, err := svc.Send(context.Background(), 4, "  hello realm  ")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, "alice", msg.Username)
	require.Len(t, bus.events, 1)
	assert.Equal(t, event.ChatMessageSent, bus.events[0].Type)
}

func TestSend_Rejections(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockUsers), nil)
		_, err := svc.Send(context.Background(), 1, "   ")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("too long", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockUsers), nil)
		_, err := svc.Send(context.Background(), 1, strings.Repeat("a", 501))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, users := new(MockRepository), new(MockUsers)
		users.On("GetUser", mock.Anything, 9).Return(nil, domain.ErrUserNotFound)
		_, err := NewService(repo, users, nil).Send(context.Background(), 9, "hi")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		repo.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestList_Limits(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultListLimit},
		{-3, DefaultListLimit},
		{10, 10},
		{1000, MaxListLimit},
	}
	for _, tt := range tests {
		repo := new(MockRepository)
		repo.On("ListRecentMessages", mock.Anything, tt.want).Return(nil, nil)

		msgs, err := NewService(repo, new(MockUsers), nil).List(context.Background(), tt.in)

		require.NoError(t, err)
		assert.NotNil(t, msgs)
		repo.AssertExpectations(t)
	}
}
