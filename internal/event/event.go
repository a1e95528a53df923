package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Game event types
const (
	AfkSessionStarted   Type = domain.EventTypeAfkStarted
	AfkSessionCompleted Type = domain.EventTypeAfkCompleted
	ListingCreated      Type = domain.EventTypeListingCreated
	ListingSold         Type = domain.EventTypeListingSold
	ItemEquipped        Type = domain.EventTypeItemEquipped
	ChatMessageSent     Type = domain.EventTypeChatMessage
)

// AllTypes lists every type published by the services, for fan-out subscribers
var AllTypes = []Type{
	AfkSessionStarted,
	AfkSessionCompleted,
	ListingCreated,
	ListingSold,
	ItemEquipped,
	ChatMessageSent,
}

// AfkSessionStartedPayloadV1 is the payload of afk.session.started
type AfkSessionStartedPayloadV1 struct {
	SessionID     int       `json:"session_id"`
	CharacterID   int       `json:"character_id"`
	Realm         string    `json:"realm"`
	DurationHours int       `json:"duration_hours"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}

// AfkSessionCompletedPayloadV1 is the payload of afk.session.completed
type AfkSessionCompletedPayloadV1 struct {
	SessionID        int                `json:"session_id"`
	CharacterID      int                `json:"character_id"`
	Realm            string             `json:"realm"`
	ExperienceGained int64              `json:"experience_gained"`
	Items            []domain.ItemStack `json:"items"`
}

// ListingCreatedPayloadV1 is the payload of market.listing.created.
// Money is encoded with two fractional digits.
type ListingCreatedPayloadV1 struct {
	ListingID    int    `json:"listing_id"`
	SellerID     int    `json:"seller_id"`
	ItemID       int    `json:"item_id"`
	Quantity     int    `json:"quantity"`
	PricePerUnit string `json:"price_per_unit"`
	TotalPrice   string `json:"total_price"`
	Escrowed     bool   `json:"escrowed"`
}

// ListingSoldPayloadV1 is the payload of market.listing.sold
type ListingSoldPayloadV1 struct {
	ListingID  int    `json:"listing_id"`
	SellerID   int    `json:"seller_id"`
	BuyerID    int    `json:"buyer_id"`
	ItemID     int    `json:"item_id"`
	Quantity   int    `json:"quantity"`
	TotalPrice string `json:"total_price"`
}

// ItemEquippedPayloadV1 is the payload of inventory.item.equipped
type ItemEquippedPayloadV1 struct {
	CharacterID int    `json:"character_id"`
	ItemID      int    `json:"item_id"`
	Slot        string `json:"slot"`
	Unequipped  int64  `json:"unequipped"`
}

// ChatMessagePayloadV1 is the payload of chat.message.sent
type ChatMessagePayloadV1 struct {
	MessageID int    `json:"message_id"`
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// New wraps a payload in a versioned event
func New(t Type, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// NewAfkSessionStartedEvent builds afk.session.started from a new session
func NewAfkSessionStartedEvent(s *domain.AfkSession) Event {
	return New(AfkSessionStarted, AfkSessionStartedPayloadV1{
		SessionID:     s.ID,
		CharacterID:   s.CharacterID,
		Realm:         string(s.Realm),
		DurationHours: int(s.EndTime.Sub(s.StartTime) / time.Hour),
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
	})
}

// NewAfkSessionCompletedEvent builds afk.session.completed from a settled session
func NewAfkSessionCompletedEvent(s *domain.AfkSession) Event {
	return New(AfkSessionCompleted, AfkSessionCompletedPayloadV1{
		SessionID:        s.ID,
		CharacterID:      s.CharacterID,
		Realm:            string(s.Realm),
		ExperienceGained: s.ExperienceGained,
		Items:            s.ItemsFound,
	})
}

// NewListingCreatedEvent builds market.listing.created
func NewListingCreatedEvent(l *domain.MarketListing) Event {
	return New(ListingCreated, ListingCreatedPayloadV1{
		ListingID:    l.ID,
		SellerID:     l.SellerID,
		ItemID:       l.ItemID,
		Quantity:     l.Quantity,
		PricePerUnit: l.PricePerUnit.StringFixed(domain.MoneyScale),
		TotalPrice:   l.TotalPrice.StringFixed(domain.MoneyScale),
		Escrowed:     l.Escrowed,
	})
}

// NewListingSoldEvent builds market.listing.sold
func NewListingSoldEvent(l *domain.MarketListing, buyerID int) Event {
	return New(ListingSold, ListingSoldPayloadV1{
		ListingID:  l.ID,
		SellerID:   l.SellerID,
		BuyerID:    buyerID,
		ItemID:     l.ItemID,
		Quantity:   l.Quantity,
		TotalPrice: l.TotalPrice.StringFixed(domain.MoneyScale),
	})
}

// NewItemEquippedEvent builds inventory.item.equipped
func NewItemEquippedEvent(characterID, itemID int, slot domain.EquipmentSlot, unequipped int64) Event {
	return New(ItemEquipped, ItemEquippedPayloadV1{
		CharacterID: characterID,
		ItemID:      itemID,
		Slot:        string(slot),
		Unequipped:  unequipped,
	})
}

// NewChatMessageEvent builds chat.message.sent
func NewChatMessageEvent(m *domain.ChatMessage) Event {
	return New(ChatMessageSent, ChatMessagePayloadV1{
		MessageID: m.ID,
		UserID:    m.UserID,
		Username:  m.Username,
		Message:   m.Message,
		Timestamp: m.CreatedAt.Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously on the publisher's goroutine.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Forward subscribes to on each type and republishes the events to target
func Forward(on Bus, target Bus, types ...Type) {
	for _, t := range types {
		on.Subscribe(t, func(ctx context.Context, e Event) error {
			return target.Publish(ctx, e)
		})
	}
}
