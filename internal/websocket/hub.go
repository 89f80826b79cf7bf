package websocket

import (
	"sync"

	"freshcart-be/internal/pkg/logger"
)

// Hub tracks websocket clients per session and fans refresh frames out
// to every open tab of that session.
type Hub struct {
	// SessionID -> list of clients (multi-tab)
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// SendToSession delivers a frame to every client of one session. Clients
// with a full send buffer are dropped. The read lock is held for the
// whole loop: Send channels are only ever closed under the write lock in
// Run, so a send here can never hit a closed channel.
func (h *Hub) SendToSession(sessionID string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[sessionID] {
		select {
		case client.Send <- payload:
		default:
			// Slow client. Hand it to Run off this goroutine: Run needs
			// the write lock to detach it, which it cannot take while we
			// hold the read lock.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}
