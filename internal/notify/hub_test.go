package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"comanda-system/internal/common/logger"

	"github.com/gorilla/websocket"
)

func TestHub_BroadcastReachesSubscribers(t *testing.T) {
	hub := NewHub(logger.New("test"))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	defer conn.Close()

	// Registration races the broadcast; wait for the hub to pick it up.
	deadline := time.Now().Add(2 * time.Second)
	for hub.clientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.Broadcast([]byte(`{"type":"order.created"}`))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	if string(msg) != `{"type":"order.created"}` {
		t.Fatalf("broadcast payload = %s", msg)
	}
}

func TestHub_RunStopsOnContextCancel(t *testing.T) {
	hub := NewHub(logger.New("test"))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if n := hub.clientCount(); n != 0 {
		t.Fatalf("clients after shutdown = %d, want 0", n)
	}
}
