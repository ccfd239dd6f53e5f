package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/HerbHall/stationviz/pkg/sld"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"
)

// sendBuffer is the per-client outbound queue length.
const sendBuffer = 256

// Client represents a connected WebSocket client.
type Client struct {
	conn     *websocket.Conn
	remote   string
	send     chan Message
	resolver Resolver
	logger   *zap.Logger
}

// Hub tracks active WebSocket connections.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	logger  *zap.Logger
}

// NewHub creates a new WebSocket hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Debug("websocket client connected", zap.String("remote", c.remote))
}

// Unregister removes a client from the hub and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	h.logger.Debug("websocket client disconnected", zap.String("remote", c.remote))
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// enqueue queues msg for the client without blocking the reader.
func (c *Client) enqueue(msg Message) {
	select {
	case c.send <- msg:
	default:
		c.logger.Warn("client send buffer full, dropping message",
			zap.String("remote", c.remote),
			zap.String("id", msg.ID))
	}
}

// writePump sends messages from the client's send channel to the WebSocket.
func (c *Client) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.send:
			if !ok {
				// Channel closed by hub (unregister).
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			if err := wsjson.Write(writeCtx, c.conn, msg); err != nil {
				cancel()
				c.logger.Debug("websocket write error", zap.Error(err))
				return
			}
			cancel()
		}
	}
}

// readPump resolves each incoming request and queues the answer. Malformed
// frames are answered with an error message; only a read failure ends the
// loop.
func (c *Client) readPump(ctx context.Context) {
	for {
		typ, data, err := c.conn.Read(ctx)
		if err != nil {
			return
		}
		c.enqueue(c.handleFrame(typ, data))
	}
}

func (c *Client) handleFrame(typ websocket.MessageType, data []byte) Message {
	now := time.Now().UTC()
	if typ != websocket.MessageText {
		return Message{Type: MessageIconError, Error: "expected a JSON text frame", Timestamp: now}
	}

	var req sld.Node
	if err := json.Unmarshal(data, &req); err != nil {
		return Message{Type: MessageIconError, Error: "invalid request: " + err.Error(), Timestamp: now}
	}

	return Message{
		Type:      MessageIconResolved,
		ID:        req.ID,
		Kind:      &req.Kind,
		State:     req.State,
		Icon:      c.resolver.Resolve(req.Kind, req.State),
		Timestamp: now,
	}
}
