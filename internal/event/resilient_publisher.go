package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/IdleRealms_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	// Sink names the downstream in logs and dead-letter entries
	Sink       string
	MaxRetries int
	RetryDelay time.Duration
}

// ResilientPublisher wraps a Bus. A failed publish is retried in the
// background with exponential backoff and dead-lettered once retries run out.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *DeadLetterWriter
	wg         sync.WaitGroup
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewResilientPublisher creates a ResilientPublisher; deadLetter may be nil
func NewResilientPublisher(inner Bus, config ResilientConfig, deadLetter *DeadLetterWriter) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = DefaultMaxRetries
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = DefaultRetryDelay
	}
	return &ResilientPublisher{
		inner:      inner,
		config:     config,
		deadLetter: deadLetter,
		stop:       make(chan struct{}),
	}
}

// Publish delivers the event once synchronously. On failure it schedules
// retries and returns nil, so callers are decoupled from delivery problems.
func (p *ResilientPublisher) Publish(ctx context.Context, e Event) error {
	err := p.inner.Publish(ctx, e)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", e.Type,
		"sink", p.config.Sink,
		"error", err,
		"max_retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(e, err)
	return nil
}

func (p *ResilientPublisher) retryLoop(e Event, lastErr error) {
	defer p.wg.Done()

	// The request context may already be gone
	ctx := context.Background()

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		select {
		case <-time.After(CalculateRetryDelay(p.config.RetryDelay, attempt)):
		case <-p.stop:
			p.writeDeadLetter(e, attempt-1, lastErr)
			return
		}

		if lastErr = p.inner.Publish(ctx, e); lastErr == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", e.Type, "attempt", attempt)
			return
		}
		logger.Warn(LogMsgEventRetryFailed, "event_type", e.Type, "attempt", attempt, "error", lastErr)
	}

	logger.Error(LogMsgEventRetryExhausted, "event_type", e.Type, "attempts", p.config.MaxRetries)
	p.writeDeadLetter(e, p.config.MaxRetries, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(e Event, attempts int, lastErr error) {
	if p.deadLetter == nil {
		return
	}
	if err := p.deadLetter.Write(e, p.config.Sink, attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", e.Type, "error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops pending retries, dead-lettering their events, and waits for
// the retry goroutines until ctx expires
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.stop) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
