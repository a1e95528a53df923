package feed

import (
	"context"
	"log/slog"

	"github.com/osse101/IdleRealms_Go/internal/event"
)

// Subscribe forwards every game event on bus to the hub
func Subscribe(hub *Hub, bus event.Bus) {
	handler := func(_ context.Context, evt event.Event) error {
		hub.Broadcast(string(evt.Type), evt.Payload)
		return nil
	}
	for _, t := range event.AllTypes {
		bus.Subscribe(t, handler)
	}
	slog.Info(LogMsgSubscribed, "types", len(event.AllTypes))
}
