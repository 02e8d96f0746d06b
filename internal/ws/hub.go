package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

const (
	// writeWait bounds a single frame write to a client.
	writeWait = 10 * time.Second
	// sendBuffer is how many events a client may fall behind before it is dropped.
	sendBuffer = 16
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans question events out to every connected feed client.
// Each client has its own writer goroutine; Broadcast never waits on a socket.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]*client
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
		logger:  logger,
	}
}

func (h *Hub) AddConnection(conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[conn] = c
	n := len(h.clients)
	h.mu.Unlock()

	go h.writePump(c)
	h.logger.Debug("ws: client connected", zap.Int("clients", n))
}

func (h *Hub) RemoveConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[conn]; ok {
		h.drop(c)
		h.logger.Debug("ws: client disconnected", zap.Int("clients", len(h.clients)))
	}
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues message for every client. A client whose queue is full is dropped.
func (h *Hub) Broadcast(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.clients) == 0 {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("ws: marshal error", zap.String("type", message.Type), zap.Error(err))
		return
	}

	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("ws: client too slow, dropping", zap.String("remote", c.conn.RemoteAddr().String()))
			h.drop(c)
		}
	}
}

// drop must be called with h.mu held.
func (h *Hub) drop(c *client) {
	delete(h.clients, c.conn)
	close(c.send)
	c.conn.Close()
}

func (h *Hub) writePump(c *client) {
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Warn("ws: write error", zap.Error(err))
			h.RemoveConnection(c.conn)
			return
		}
	}
}
