package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osse101/IdleRealms_Go/internal/config"
	"github.com/osse101/IdleRealms_Go/internal/event"
)

// EventSystem is the in-process bus the services publish to, plus one
// retrying outbound path per external sink
type EventSystem struct {
	Bus *event.MemoryBus

	resilient  event.ResilientConfig
	deadLetter *event.DeadLetterWriter
	outbound   []*event.ResilientPublisher
}

// InitializeEventSystem creates the main bus and opens the dead-letter file
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	deadLetter, err := event.NewDeadLetterWriter(cfg.EventDeadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDeadLetter, err)
	}

	es := &EventSystem{
		Bus: event.NewMemoryBus(),
		resilient: event.ResilientConfig{
			MaxRetries: cfg.EventMaxRetries,
			RetryDelay: cfg.EventRetryDelay,
		},
		deadLetter: deadLetter,
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)

	return es, nil
}

// AttachOutbound gives a sink its own bus behind a ResilientPublisher and
// forwards every event type to it. A failing sink is retried on its own so
// the other sinks never see a duplicate.
func (es *EventSystem) AttachOutbound(name string, register func(event.Bus)) {
	cfg := es.resilient
	cfg.Sink = name
	publisher := event.NewResilientPublisher(event.NewMemoryBus(), cfg, es.deadLetter)
	register(publisher)
	event.Forward(es.Bus, publisher, event.AllTypes...)
	es.outbound = append(es.outbound, publisher)

	slog.Info(LogMsgOutboundSinkAttached, "sink", name)
}

// Shutdown drains the outbound publishers then closes the dead-letter file
func (es *EventSystem) Shutdown(ctx context.Context) error {
	var errs []error
	for _, p := range es.outbound {
		if err := p.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := es.deadLetter.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
