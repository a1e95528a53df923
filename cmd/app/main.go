package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	_ "github.com/osse101/IdleRealms_Go/docs"
	"github.com/osse101/IdleRealms_Go/internal/afk"
	"github.com/osse101/IdleRealms_Go/internal/bootstrap"
	"github.com/osse101/IdleRealms_Go/internal/cache"
	"github.com/osse101/IdleRealms_Go/internal/chat"
	"github.com/osse101/IdleRealms_Go/internal/config"
	"github.com/osse101/IdleRealms_Go/internal/database"
	"github.com/osse101/IdleRealms_Go/internal/discord"
	"github.com/osse101/IdleRealms_Go/internal/event"
	"github.com/osse101/IdleRealms_Go/internal/feed"
	"github.com/osse101/IdleRealms_Go/internal/handler"
	"github.com/osse101/IdleRealms_Go/internal/inventory"
	"github.com/osse101/IdleRealms_Go/internal/item"
	"github.com/osse101/IdleRealms_Go/internal/logger"
	"github.com/osse101/IdleRealms_Go/internal/market"
	"github.com/osse101/IdleRealms_Go/internal/metrics"
	"github.com/osse101/IdleRealms_Go/internal/server"
	"github.com/osse101/IdleRealms_Go/internal/user"
)

// @title IdleRealms API
// @version 1.0
// @description Idle RPG backend: characters, inventory, AFK sessions and the player marketplace.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	logger.InitLogger(logger.DefaultConfig())
	if err := run(); err != nil {
		slog.Error("IdleRealms exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		if !cfg.IsDevelopment() {
			return fmt.Errorf("environment check failed: %w", err)
		}
		slog.Warn("Environment check failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString: cfg.GetDBConnString(),
		MaxConns:   cfg.DBMaxConns,
		MaxIdle:    cfg.DBMaxConnIdle,
		MaxLife:    cfg.DBMaxConnLife,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbPool.Close()

	if cfg.MigrateOnStart {
		if err := database.Migrate(ctx, dbPool); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	metrics.NewEventMetricsCollector().Register(events.Bus)

	hub := feed.NewHub()
	hub.Start()
	feed.Subscribe(hub, events.Bus)

	repos := bootstrap.InitializeRepositories(dbPool)
	catalog := item.NewService(repos.Catalog, cfg.ItemCacheSize, cfg.ItemCacheTTL)

	rewards, err := afk.LoadRewardTable(cfg.AfkRewardsPath, config.ConfigPathAfkRewardsSchema)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load AFK reward table: %w", err)
		}
		slog.Warn("AFK reward table not found, using defaults", "path", cfg.AfkRewardsPath)
		rewards = afk.DefaultRewardTable()
	}

	var closers []bootstrap.NamedCloser
	var readiness []handler.ReadinessCheck
	listingsCache, redisClient, err := connectListingsCache(ctx, cfg)
	if err != nil {
		return err
	}
	if redisClient != nil {
		closers = append(closers, bootstrap.NamedCloser{Name: "redis", Closer: redisClient})
		readiness = append(readiness, handler.ReadinessCheck{
			Name:  "redis",
			Probe: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	}

	if cfg.RabbitMQURL != "" {
		sink, err := event.DialRabbitSink(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		events.AttachOutbound("rabbitmq", sink.Register)
		closers = append(closers, bootstrap.NamedCloser{Name: "rabbitmq", Closer: sink})
	}

	if cfg.DiscordToken != "" {
		session, err := discord.NewSession(cfg.DiscordToken)
		if err != nil {
			return err
		}
		notifier := discord.NewNotifier(session, cfg.DiscordChannelID, catalog)
		events.AttachOutbound("discord", notifier.Register)
		closers = append(closers, bootstrap.NamedCloser{Name: "discord", Closer: session})
	}

	users := user.NewService(repos.User)
	svc := server.Services{
		Users:     users,
		Catalog:   catalog,
		Inventory: inventory.NewService(repos.Inventory, catalog, events.Bus),
		Afk:       afk.NewService(repos.Afk, rewards, afk.NewRandomRoller(), catalog, events.Bus),
		Market:    market.NewService(repos.Market, listingsCache, events.Bus, market.Config{Escrow: cfg.MarketEscrow}),
		Chat:      chat.NewService(repos.Chat, users, events.Bus),
	}

	srv := server.NewServer(server.Config{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		ReadinessChecks: readiness,
	}, dbPool, svc, hub)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Hub:     hub,
		Events:  events,
		Closers: closers,
	})
	return err
}

// connectListingsCache returns a nil cache when Redis is not configured
func connectListingsCache(ctx context.Context, cfg *config.Config) (market.ListingsCache, *redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil, nil
	}
	client, err := cache.NewRedisClient(ctx, cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return cache.NewListingsCache(client, cfg.ListingsCacheTTL), client, nil
}
