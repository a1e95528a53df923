package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "market.listing.sold")
const (
	// EventTypeAfkStarted is published when a character starts an AFK session
	EventTypeAfkStarted = "afk.session.started"

	// EventTypeAfkCompleted is published when an AFK session is settled
	EventTypeAfkCompleted = "afk.session.completed"

	// EventTypeListingCreated is published when a market listing is created
	EventTypeListingCreated = "market.listing.created"

	// EventTypeListingSold is published when a listing is purchased
	EventTypeListingSold = "market.listing.sold"

	// EventTypeItemEquipped is published when an inventory entry becomes equipped
	EventTypeItemEquipped = "inventory.item.equipped"

	// EventTypeChatMessage is published when a chat message is sent
	EventTypeChatMessage = "chat.message.sent"
)
