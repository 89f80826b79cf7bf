package websocket

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newTestClient(hub *Hub, sessionID string, buffer int) *Client {
	return &Client{Hub: hub, SessionID: sessionID, Send: make(chan []byte, buffer)}
}

func TestSendToSessionDelivers(t *testing.T) {
	hub := NewHub(nopLogger{})
	go hub.Run()

	client := newTestClient(hub, "s1", 4)
	hub.register <- client

	hub.SendToSession("s1", []byte("refresh"))

	select {
	case frame := <-client.Send:
		assert.Equal(t, []byte("refresh"), frame)
	case <-time.After(time.Second):
		t.Fatal("frame never delivered")
	}
}

func TestSendToSessionOnlyTargetsOneSession(t *testing.T) {
	hub := NewHub(nopLogger{})
	go hub.Run()

	target := newTestClient(hub, "s1", 1)
	other := newTestClient(hub, "s2", 1)
	hub.register <- target
	hub.register <- other

	hub.SendToSession("s1", []byte("refresh"))

	select {
	case <-target.Send:
	case <-time.After(time.Second):
		t.Fatal("frame never delivered")
	}
	assert.Empty(t, other.Send)
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub(nopLogger{})
	go hub.Run()

	client := newTestClient(hub, "s1", 1)
	hub.register <- client
	hub.unregister <- client

	select {
	case _, open := <-client.Send:
		require.False(t, open, "Send channel should be closed after unregister")
	case <-time.After(time.Second):
		t.Fatal("Send channel never closed")
	}
}

// TestSendToSessionConcurrentWithDisconnects hammers the hub with
// concurrent fan-outs against clients whose buffers are never drained, so
// every sender trips the slow-client path while Run is closing those same
// channels. A send on a closed channel would panic and fail the test; the
// race detector covers the slice shifts.
func TestSendToSessionConcurrentWithDisconnects(t *testing.T) {
	hub := NewHub(nopLogger{})
	go hub.Run()

	for i := 0; i < 8; i++ {
		hub.register <- newTestClient(hub, "s1", 1)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				hub.SendToSession("s1", []byte("refresh"))
			}
		}()
	}
	wg.Wait()
}
