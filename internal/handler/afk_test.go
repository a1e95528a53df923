package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/mocks"
)

func TestHandleStartAfk(t *testing.T) {
	InitValidator()

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	session := &domain.AfkSession{
		ID:          7,
		CharacterID: 3,
		StartTime:   start,
		EndTime:     start.Add(3 * time.Hour),
		Realm:       domain.RealmMars,
		Status:      domain.AfkStatusRunning,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockAfkService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: StartAfkRequest{CharacterID: 3, DurationHours: 3},
			setupMock: func(m *mocks.MockAfkService) {
				m.On("StartAfkSession", mock.Anything, 3, 3).Return(session, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"realm":"mars"`,
		},
		{
			name:           "Missing character",
			body:           StartAfkRequest{DurationHours: 3},
			setupMock:      func(m *mocks.MockAfkService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Unknown field",
			body:           `{"character_id":3,"duration_hours":3,"realm":"moon"}`,
			setupMock:      func(m *mocks.MockAfkService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Exceeds free tier",
			body: StartAfkRequest{CharacterID: 3, DurationHours: 8},
			setupMock: func(m *mocks.MockAfkService) {
				m.On("StartAfkSession", mock.Anything, 3, 8).Return(nil, domain.ErrDurationExceedsTier)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "duration exceeds membership limit",
		},
		{
			name: "Already afk",
			body: StartAfkRequest{CharacterID: 3, DurationHours: 2},
			setupMock: func(m *mocks.MockAfkService) {
				m.On("StartAfkSession", mock.Anything, 3, 2).Return(nil, domain.ErrAlreadyAfk)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "already afk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			svc := mocks.NewMockAfkService(t)
			tt.setupMock(svc)
			req := newJSONRequest(t, http.MethodPost, "/api/v1/afk/start", tt.body, nil)

			// ACT
			w := serve(HandleStartAfk(svc), req)

			// ASSERT
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleCompleteAfk(t *testing.T) {
	t.Run("completed session reports rewards", func(t *testing.T) {
		svc := mocks.NewMockAfkService(t)
		svc.On("CompleteAfkSession", mock.Anything, 7).Return(&domain.AfkCompletion{
			Completed:        true,
			ExperienceGained: 300,
			ItemsCredited:    []domain.ItemStack{{ItemID: 1, Quantity: 2}},
		}, nil)

		w := serve(HandleCompleteAfk(svc), newJSONRequest(t, http.MethodPost, "/api/v1/afk/7/complete", nil, map[string]string{"sessionID": "7"}))

		assert.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[domain.AfkCompletion](t, w)
		assert.True(t, got.Completed)
		assert.EqualValues(t, 300, got.ExperienceGained)
	})

	t.Run("premature call is a no-op", func(t *testing.T) {
		svc := mocks.NewMockAfkService(t)
		svc.On("CompleteAfkSession", mock.Anything, 7).Return(&domain.AfkCompletion{Reason: domain.AfkSkipNotDue}, nil)

		w := serve(HandleCompleteAfk(svc), newJSONRequest(t, http.MethodPost, "/api/v1/afk/7/complete", nil, map[string]string{"sessionID": "7"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"completed":false`)
		assert.Contains(t, w.Body.String(), `"reason":"not_due"`)
	})

	t.Run("bad session id", func(t *testing.T) {
		svc := mocks.NewMockAfkService(t)

		w := serve(HandleCompleteAfk(svc), newJSONRequest(t, http.MethodPost, "/api/v1/afk/abc/complete", nil, map[string]string{"sessionID": "abc"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid sessionID")
	})
}

func TestHandleGetAfkSession_NotFound(t *testing.T) {
	svc := mocks.NewMockAfkService(t)
	svc.On("GetAfkSession", mock.Anything, 99).Return(nil, domain.ErrSessionNotFound)

	w := serve(HandleGetAfkSession(svc), newJSONRequest(t, http.MethodGet, "/api/v1/afk/99", nil, map[string]string{"sessionID": "99"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "afk session not found")
}

func TestHandleListCharacterSessions_EmptyIsArray(t *testing.T) {
	svc := mocks.NewMockAfkService(t)
	svc.On("ListCharacterSessions", mock.Anything, 3).Return(nil, nil)

	w := serve(HandleListCharacterSessions(svc), newJSONRequest(t, http.MethodGet, "/api/v1/characters/3/afk", nil, map[string]string{"characterID": "3"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
