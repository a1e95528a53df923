package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/IdleRealms_Go/internal/afk"
	"github.com/osse101/IdleRealms_Go/internal/chat"
	"github.com/osse101/IdleRealms_Go/internal/database"
	"github.com/osse101/IdleRealms_Go/internal/feed"
	"github.com/osse101/IdleRealms_Go/internal/handler"
	"github.com/osse101/IdleRealms_Go/internal/inventory"
	"github.com/osse101/IdleRealms_Go/internal/item"
	"github.com/osse101/IdleRealms_Go/internal/logger"
	"github.com/osse101/IdleRealms_Go/internal/market"
	"github.com/osse101/IdleRealms_Go/internal/metrics"
	"github.com/osse101/IdleRealms_Go/internal/user"
)

// Config is the listener and access configuration
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	// probed by /readyz after the database
	ReadinessChecks []handler.ReadinessCheck
}

// Services are the game services exposed over HTTP
type Services struct {
	Users     user.Service
	Catalog   item.Service
	Inventory inventory.Service
	Afk       afk.Service
	Market    market.Service
	Chat      chat.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer builds the router. hub may be nil, which disables /feed.
func NewServer(cfg Config, dbPool database.Pool, svc Services, hub *feed.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, dbPool, svc, hub),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter wires middleware and routes
func NewRouter(cfg Config, dbPool database.Pool, svc Services, hub *feed.Hub) http.Handler {
	r := chi.NewRouter()
	monitor := NewAbuseMonitor()

	// Outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	checks := append([]handler.ReadinessCheck{handler.DatabaseCheck(dbPool)}, cfg.ReadinessChecks...)
	r.Get("/readyz", handler.HandleReadyz(checks...))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Use(APIKeyMiddleware(cfg.APIKey, cfg.TrustedProxies, monitor))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", handler.HandleCreateUser(svc.Users))
			r.Post("/login", handler.HandleLogin(svc.Users))
			r.Get("/{userID}/characters", handler.HandleListUserCharacters(svc.Users))
		})

		r.Route("/characters", func(r chi.Router) {
			r.Post("/", handler.HandleCreateCharacter(svc.Users))
			r.Get("/{characterID}", handler.HandleGetCharacter(svc.Users))
			r.Get("/{characterID}/inventory", handler.HandleGetInventory(svc.Inventory))
			r.Get("/{characterID}/afk", handler.HandleListCharacterSessions(svc.Afk))
			r.Get("/{characterID}/professions", handler.HandleListProfessions(svc.Users))
		})

		r.Post("/inventory", handler.HandleUpdateInventory(svc.Inventory))

		r.Route("/afk", func(r chi.Router) {
			r.Post("/start", handler.HandleStartAfk(svc.Afk))
			r.Get("/{sessionID}", handler.HandleGetAfkSession(svc.Afk))
			r.Post("/{sessionID}/complete", handler.HandleCompleteAfk(svc.Afk))
		})

		r.Route("/market/listings", func(r chi.Router) {
			r.Post("/", handler.HandleCreateListing(svc.Market))
			r.Get("/", handler.HandleListListings(svc.Market))
			r.Get("/{listingID}", handler.HandleGetListing(svc.Market))
			r.Post("/{listingID}/purchase", handler.HandlePurchase(svc.Market))
		})

		r.Get("/items", handler.HandleListItems(svc.Catalog))
		r.Get("/realms", handler.HandleListRealms(svc.Catalog))
		r.Get("/realms/{realm}/monsters", handler.HandleListMonsters(svc.Catalog))

		r.Post("/chat", handler.HandleSendChat(svc.Chat))
		r.Get("/chat", handler.HandleListChat(svc.Chat))

		if hub != nil {
			r.Get("/feed", feed.Handler(hub))
		}
	})

	return r
}

// responseWriter captures the status code for request logging
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	rw.statusCode = http.StatusSwitchingProtocols
	rw.written = true
	return h.Hijack()
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isQuiet(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// loggingMiddleware assigns a request id and logs start and completion.
// Secret headers are redacted.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuiet(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		headers := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				headers[k] = []string{RedactedValue}
			} else {
				headers[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", headers)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start listens until Stop is called
func (s *Server) Start() error {
	slog.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
