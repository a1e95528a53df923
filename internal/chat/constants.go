package chat

// Message limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

const (
	ErrMsgCreateMessageFailed = "failed to create chat message"
	ErrMsgListMessagesFailed  = "failed to list chat messages"

	LogMsgMessageSent        = "Chat message sent"
	LogMsgPublishEventFailed = "Failed to publish chat event"
)
