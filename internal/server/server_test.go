package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/mocks"
)

const testAPIKey = "test-key"

type stubPool struct{}

func (stubPool) Ping(ctx context.Context) error { return nil }
func (stubPool) Close()                         {}

type testServices struct {
	users     *mocks.MockUserService
	catalog   *mocks.MockItemService
	inventory *mocks.MockInventoryService
	afk       *mocks.MockAfkService
	market    *mocks.MockMarketService
	chat      *mocks.MockChatService
}

func newTestRouter(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	ts := testServices{
		users:     mocks.NewMockUserService(t),
		catalog:   mocks.NewMockItemService(t),
		inventory: mocks.NewMockInventoryService(t),
		afk:       mocks.NewMockAfkService(t),
		market:    mocks.NewMockMarketService(t),
		chat:      mocks.NewMockChatService(t),
	}
	router := NewRouter(Config{APIKey: testAPIKey}, stubPool{}, Services{
		Users:     ts.users,
		Catalog:   ts.catalog,
		Inventory: ts.inventory,
		Afk:       ts.afk,
		Market:    ts.market,
		Chat:      ts.chat,
	}, nil)
	return router, ts
}

func TestRouter_PublicEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name string
		key  string
	}{
		{"missing", ""},
		{"wrong", "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRouter_QueryKeyOnlyForWebsocket(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items?api_key="+testAPIKey, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RoutesToServices(t *testing.T) {
	router, ts := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		setup  func()
		status int
	}{
		{
			name: "start afk", method: http.MethodPost, path: "/api/v1/afk/start",
			body: `{"character_id":1,"duration_hours":3}`,
			setup: func() {
				ts.afk.On("StartAfkSession", mock.Anything, 1, 3).Return(&domain.AfkSession{ID: 1}, nil).Once()
			},
			status: http.StatusCreated,
		},
		{
			name: "complete afk", method: http.MethodPost, path: "/api/v1/afk/4/complete",
			setup: func() {
				ts.afk.On("CompleteAfkSession", mock.Anything, 4).Return(&domain.AfkCompletion{Reason: domain.AfkSkipNotDue}, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name: "inventory", method: http.MethodGet, path: "/api/v1/characters/2/inventory",
			setup: func() {
				ts.inventory.On("GetInventory", mock.Anything, 2).Return([]domain.InventoryEntry{}, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name: "market listing", method: http.MethodGet, path: "/api/v1/market/listings/9",
			setup: func() {
				ts.market.On("GetMarketListing", mock.Anything, 9).Return(nil, domain.ErrListingNotFound).Once()
			},
			status: http.StatusNotFound,
		},
		{
			name: "realms", method: http.MethodGet, path: "/api/v1/realms",
			setup: func() {
				ts.catalog.On("ListRealms", mock.Anything).Return([]domain.RealmInfo{{Name: domain.RealmEarth}}, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name: "chat", method: http.MethodGet, path: "/api/v1/chat?limit=5",
			setup: func() {
				ts.chat.On("List", mock.Anything, 5).Return([]domain.ChatMessage{}, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name: "professions", method: http.MethodGet, path: "/api/v1/characters/2/professions",
			setup: func() {
				ts.users.On("ListProfessions", mock.Anything, 2).Return([]domain.Profession{}, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name:   "feed disabled without hub", method: http.MethodGet, path: "/api/v1/feed",
			setup:  func() {},
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			tt.setup()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set(HeaderAPIKey, testAPIKey)
			w := httptest.NewRecorder()

			// ACT
			router.ServeHTTP(w, req)

			// ASSERT
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	router, _ := newTestRouter(t)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimit(t *testing.T) {
	router, _ := newTestRouter(t)
	body := `{"user_id":1,"message":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set(HeaderAPIKey, testAPIKey)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAbuseMonitor_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewAbuseMonitor()
	m.now = func() time.Time { return now }
	m.reset()

	for i := 0; i < MaxRequestsPerWindow; i++ {
		require.True(t, m.Allow("1.2.3.4"))
	}
	assert.False(t, m.Allow("1.2.3.4"))
	assert.True(t, m.Allow("5.6.7.8"), "limits are per IP")

	now = now.Add(MonitorWindow + time.Second)
	assert.True(t, m.Allow("1.2.3.4"))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		fwd     string
		trusted []string
		want    string
	}{
		{"direct peer", "10.0.0.1:5555", "", nil, "10.0.0.1"},
		{"untrusted forwarded header ignored", "10.0.0.1:5555", "6.6.6.6", nil, "10.0.0.1"},
		{"trusted proxy uses rightmost hop", "10.0.0.2:5555", "6.6.6.6, 7.7.7.7", []string{"10.0.0.2"}, "7.7.7.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.fwd != "" {
				req.Header.Set(HeaderForwardedFor, tt.fwd)
			}
			assert.Equal(t, tt.want, clientIP(req, tt.trusted))
		})
	}
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set(HeaderAPIKey, "super-secret")
	req.Header.Set(HeaderAuthorization, "Bearer token")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	out := buf.String()
	assert.NotContains(t, out, "super-secret")
	assert.NotContains(t, out, "Bearer token")
	assert.Contains(t, out, RedactedValue)
	assert.Contains(t, out, "status=418")
}
