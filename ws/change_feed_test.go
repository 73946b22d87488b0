package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rashidrk201111/badshahpizzahub/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeHub_Broadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewChangeHub()
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws/changes", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/changes"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(ctx, services.Event{
		Collection: services.CollectionMenuItems,
		Action:     services.ActionUpdated,
		ID:         4,
		Payload:    map[string]string{"name": "secret"},
	}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got map[string]any
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "menu_items", got["collection"])
	assert.Equal(t, "updated", got["action"])
	assert.EqualValues(t, 4, got["id"])
	assert.NotContains(t, got, "payload")

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestChangeHub_PublishNeverBlocks(t *testing.T) {
	hub := NewChangeHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			_ = hub.Publish(context.Background(), services.Event{Collection: services.CollectionBills, ID: uint(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked without a running hub")
	}
	assert.Len(t, hub.broadcast, cap(hub.broadcast))
}
