package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFeedServer(t *testing.T, hub *Hub) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.AddConnection(conn)
		defer hub.RemoveConnection(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(ts.Close)
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func TestBroadcast_NoClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	hub.Broadcast(Message{Type: EventQuestionCreated, Data: map[string]int{"id": 1}})
	assert.Zero(t, hub.Clients())
}

func TestBroadcast_FansOut(t *testing.T) {
	hub := NewHub(zap.NewNop())
	url := newFeedServer(t, hub)

	var clients []*websocket.Conn
	for i := 0; i < 3; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		defer conn.Close()
		clients = append(clients, conn)
	}
	require.Eventually(t, func() bool { return hub.Clients() == 3 }, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(Message{Type: EventQuestionDeleted, Data: map[string]int{"id": 7}})

	for _, conn := range clients {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var msg struct {
			Type string         `json:"type"`
			Data map[string]int `json:"data"`
		}
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, EventQuestionDeleted, msg.Type)
		assert.Equal(t, 7, msg.Data["id"])
	}
}

func TestBroadcast_UnmarshalableMessage(t *testing.T) {
	hub := NewHub(zap.NewNop())
	url := newFeedServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(Message{Type: "bad", Data: make(chan int)})
	assert.Equal(t, 1, hub.Clients())
}

func TestBroadcast_StalledClientIsDropped(t *testing.T) {
	hub := NewHub(zap.NewNop())
	url := newFeedServer(t, hub)

	// never reads
	stalled, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer stalled.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	payload := strings.Repeat("x", 256<<10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 128; i++ {
			hub.Broadcast(Message{Type: EventQuestionCreated, Data: payload})
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Broadcast blocked on a client that does not read")
	}
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, 5*time.Second, 10*time.Millisecond)

	reader, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer reader.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(Message{Type: EventQuestionDeleted, Data: map[string]int{"id": 3}})

	require.NoError(t, reader.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg struct {
		Type string         `json:"type"`
		Data map[string]int `json:"data"`
	}
	require.NoError(t, reader.ReadJSON(&msg))
	assert.Equal(t, EventQuestionDeleted, msg.Type)
	assert.Equal(t, 3, msg.Data["id"])
}

func TestBroadcast_AfterDisconnect(t *testing.T) {
	hub := NewHub(zap.NewNop())
	url := newFeedServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
	hub.Broadcast(Message{Type: EventQuestionDeleted, Data: map[string]int{"id": 1}})
	assert.Zero(t, hub.Clients())
}
