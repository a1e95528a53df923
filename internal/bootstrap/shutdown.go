package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/IdleRealms_Go/internal/feed"
	"github.com/osse101/IdleRealms_Go/internal/server"
)

// ShutdownComponents holds everything that needs a graceful stop.
// Closers run last, in order, and may be empty.
type ShutdownComponents struct {
	Server  *server.Server
	Hub     *feed.Hub
	Events  *EventSystem
	Closers []NamedCloser
}

// NamedCloser is an optional resource such as the Redis client or the RabbitMQ sink
type NamedCloser struct {
	Name   string
	Closer io.Closer
}

// GracefulShutdown stops the HTTP server first, then the live feed, then
// flushes the outbound event publishers and finally closes external clients.
// Errors are logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Events != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.Events.Shutdown(ctx); err != nil {
			slog.Error(LogMsgPublisherShutdownFailed, "error", err)
		}
	}

	for _, nc := range c.Closers {
		if err := nc.Closer.Close(); err != nil {
			slog.Error(LogMsgComponentCloseFailed, "component", nc.Name, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
