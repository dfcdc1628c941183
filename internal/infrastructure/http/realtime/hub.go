// Package realtime streams assistant replies to connected clients
// over websockets.
package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/domain/chat"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

// ReplyEvent is the wire format for a delivered assistant reply
type ReplyEvent struct {
	Type           string    `json:"type"`
	ConversationID uuid.UUID `json:"conversation_id"`
	MessageID      uuid.UUID `json:"message_id"`
	Role           chat.Role `json:"role"`
	Content        string    `json:"content"`
	Timestamp      int64     `json:"timestamp"` // milliseconds
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // serializes writes to the connection
}

func (c *client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

// Hub fans assistant replies out to every connected client. It
// implements the reply publisher port.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	logger  *zap.Logger

	upgrader websocket.Upgrader
}

var _ outbound.ReplyPublisher = (*Hub)(nil)

// NewHub creates a new realtime hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// PublishReply broadcasts a delivered assistant reply to all
// connected clients
func (h *Hub) PublishReply(conversationID uuid.UUID, message chat.Message) {
	payload, err := json.Marshal(ReplyEvent{
		Type:           "assistant_reply",
		ConversationID: conversationID,
		MessageID:      message.ID,
		Role:           message.Role,
		Content:        message.Content,
		Timestamp:      message.Timestamp.UnixMilli(),
	})
	if err != nil {
		h.logger.Error("Failed to encode reply event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if err := c.write(websocket.TextMessage, payload); err != nil {
			h.logger.Debug("Websocket write failed", zap.Error(err))
		}
	}
}

// HandleWS handles GET /api/v1/chat/stream, upgrading to a websocket
// that carries assistant reply events
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("Websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn}
	h.register(c)

	// Ping to keep connections alive through proxies.
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := c.write(websocket.PingMessage, nil); err != nil {
				h.unregister(c)
				return
			}
		}
	}()

	// Read loop ends on client close or error.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.unregister(c)
			return
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, present := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if present {
		_ = c.conn.Close()
	}
}

// Close disconnects every client
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		_ = c.conn.Close()
		delete(h.clients, c)
	}
	return nil
}
