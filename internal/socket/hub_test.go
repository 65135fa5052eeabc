package socket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// newHubServer runs an httptest server that registers every incoming
// websocket connection in hub and returns the ws:// URL to dial.
func newHubServer(t *testing.T, hub *Hub) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := hub.Register(conn)
		defer func() {
			hub.Unregister(client)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func clientCount(h *Hub) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func TestBroadcastDeliversToSubscriber(t *testing.T) {
	hub := NewHub()
	url := newHubServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return clientCount(hub) == 1 },
		time.Second, 10*time.Millisecond)

	hub.Broadcast([]byte(`{"trackingNumber":"TRK482913","status":"In Transit"}`))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(message), "TRK482913")
}

func TestBroadcastConcurrentWriters(t *testing.T) {
	hub := NewHub()
	url := newHubServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return clientCount(hub) == 1 },
		time.Second, 10*time.Millisecond)

	var received atomic.Int64
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			received.Add(1)
		}
	}()

	// Bookings and admin tracking updates broadcast from separate
	// request goroutines; the hub must serialize the writes.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				hub.Broadcast([]byte(`{"status":"In Transit"}`))
			}
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool { return received.Load() > 0 },
		time.Second, 10*time.Millisecond)
}

func TestBroadcastWithNoSubscribers(t *testing.T) {
	hub := NewHub()
	// Must not block or panic.
	hub.Broadcast([]byte(`{"status":"Booked"}`))
}

func TestUnregisterTwiceIsSafe(t *testing.T) {
	hub := NewHub()
	url := newHubServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return clientCount(hub) == 1 },
		time.Second, 10*time.Millisecond)

	hub.mu.RLock()
	var client *Client
	for c := range hub.clients {
		client = c
	}
	hub.mu.RUnlock()

	// A second call on an already-removed client must be a no-op, not
	// a double close of its send channel.
	hub.Unregister(client)
	hub.Unregister(client)
	require.Equal(t, 0, clientCount(hub))
}
