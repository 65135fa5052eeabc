// internal/socket/hub.go
package socket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

const sendBuffer = 16

// Client is one tracking-feed subscriber. Outgoing frames go through the
// send channel; a single writer goroutine owns the connection's write
// side, so broadcasts from concurrent request goroutines never touch the
// connection directly.
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

func (c *Client) writePump() {
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write failed for %s: %v", c.conn.RemoteAddr(), err)
		}
	}
}

// Hub manages the connected tracking-feed subscribers.
type Hub struct {
	clients map[*Client]bool
	// mu guards clients; handlers broadcast from request goroutines.
	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
	}
}

// Register adds a new subscriber to the Hub and starts its writer.
func (h *Hub) Register(conn *websocket.Conn) *Client {
	client := &Client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	go client.writePump()
	log.Printf("WebSocket client registered: %s", conn.RemoteAddr())
	return client
}

// Unregister removes a subscriber from the Hub and stops its writer.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		log.Printf("WebSocket client unregistered: %s", client.conn.RemoteAddr())
	}
}

// Broadcast queues a message for every subscriber. A client whose send
// buffer is full misses the message rather than blocking the caller; a
// gone client's read loop cleans it up.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			log.Printf("WebSocket client %s is not keeping up, dropping message", client.conn.RemoteAddr())
		}
	}
}
