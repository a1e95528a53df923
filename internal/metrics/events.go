package metrics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/osse101/IdleRealms_Go/internal/event"
	"github.com/osse101/IdleRealms_Go/internal/logger"
)

// EventMetricsCollector subscribes to game events and records business metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event type
func (c *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range event.AllTypes {
		bus.Subscribe(t, c.HandleEvent)
	}
}

// HandleEvent records metrics for one event. It never fails; a payload that
// cannot be decoded is counted only in EventsPublished.
func (c *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := c.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (c *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.AfkSessionStarted:
		p, err := event.DecodePayload[event.AfkSessionStartedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		AfkSessionsStarted.WithLabelValues(p.Realm).Inc()

	case event.AfkSessionCompleted:
		p, err := event.DecodePayload[event.AfkSessionCompletedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		AfkSessionsCompleted.WithLabelValues(p.Realm).Inc()
		ExperienceAwarded.WithLabelValues(p.Realm).Add(float64(p.ExperienceGained))
		units := 0
		for _, it := range p.Items {
			units += it.Quantity
		}
		RewardItemsFound.WithLabelValues(p.Realm).Add(float64(units))

	case event.ListingCreated:
		p, err := event.DecodePayload[event.ListingCreatedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		mode := ModeAnnounce
		if p.Escrowed {
			mode = ModeEscrow
		}
		ListingsCreated.WithLabelValues(mode).Inc()

	case event.ListingSold:
		p, err := event.DecodePayload[event.ListingSoldPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		Purchases.Inc()
		total, err := decimal.NewFromString(p.TotalPrice)
		if err != nil {
			return err
		}
		MarketVolume.Add(total.InexactFloat64())

	case event.ItemEquipped:
		p, err := event.DecodePayload[event.ItemEquippedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ItemsEquipped.WithLabelValues(p.Slot).Inc()

	case event.ChatMessageSent:
		ChatMessages.Inc()
	}
	return nil
}
