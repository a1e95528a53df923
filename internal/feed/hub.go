package feed

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Message is one frame sent to feed clients
type Message struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is one attached websocket
type Client struct {
	ID       string
	Messages chan Message
	// nil means every type
	Filter map[string]bool
}

// Hub fans messages out to attached clients. A slow client drops messages
// instead of stalling the broadcast loop.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Message
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Message, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start runs the broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the loop and closes every client channel
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for _, c := range h.clients {
			close(c.Messages)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			h.mu.Unlock()

		case id := <-h.unregister:
			h.mu.Lock()
			if c, ok := h.clients[id]; ok {
				close(c.Messages)
				delete(h.clients, id)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, c := range h.clients {
				if c.Filter != nil && !c.Filter[msg.Type] {
					continue
				}
				select {
				case c.Messages <- msg:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register attaches a client interested in types (all when empty)
func (h *Hub) Register(types []string) *Client {
	c := &Client{
		ID:       uuid.NewString(),
		Messages: make(chan Message, ClientEventBuffer),
	}
	if len(types) > 0 {
		c.Filter = make(map[string]bool, len(types))
		for _, t := range types {
			c.Filter[t] = true
		}
	}

	select {
	case h.register <- c:
	case <-h.shutdown:
		close(c.Messages)
	}
	return c
}

func (h *Hub) Unregister(id string) {
	select {
	case h.unregister <- id:
	case <-h.shutdown:
	}
}

// Broadcast queues a message for every interested client
func (h *Hub) Broadcast(msgType string, payload any) {
	msg := Message{
		ID:        uuid.NewString(),
		Type:      msgType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- msg:
	default:
		slog.Warn(LogMsgEventDropped, "type", msgType)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
