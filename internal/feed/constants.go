package feed

import "time"

// Buffer sizes
const (
	BroadcastBufferSize = 100
	ClientEventBuffer   = 50
	ClientChannelBuffer = 10
)

// Connection settings
const (
	PingInterval = 30 * time.Second
	PongWait     = 60 * time.Second
	WriteTimeout = 10 * time.Second
	ReadLimit    = 512
)

// EventTypeConnected is sent once when a client attaches
const EventTypeConnected = "connected"

const (
	LogMsgClientConnected    = "Feed client connected"
	LogMsgClientDisconnected = "Feed client disconnected"
	LogMsgUpgradeFailed      = "Feed websocket upgrade failed"
	LogMsgWriteError         = "Failed to write feed message"
	LogMsgEventDropped       = "Feed broadcast buffer full, event dropped"
	LogMsgSubscribed         = "Feed subscribed to event types"
)
