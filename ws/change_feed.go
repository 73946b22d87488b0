package ws

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rashidrk201111/badshahpizzahub/services"
	"github.com/rashidrk201111/badshahpizzahub/utils"
)

const writeWait = 5 * time.Second

// ChangeHub pushes change events to every connected admin screen so they
// know to reload.
type ChangeHub struct {
	clients    map[*websocket.Conn]uint // conn -> user id
	broadcast  chan services.Event
	register   chan subscription
	unregister chan *websocket.Conn
	mu         sync.Mutex
	done       chan struct{}
}

type subscription struct {
	conn   *websocket.Conn
	userID uint
}

func NewChangeHub() *ChangeHub {
	return &ChangeHub{
		clients:    make(map[*websocket.Conn]uint),
		broadcast:  make(chan services.Event, 64),
		register:   make(chan subscription),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
	}
}

// Run serves register/unregister/broadcast until ctx is done.
func (h *ChangeHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.clients[sub.conn] = sub.userID
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws: write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()

		case <-ctx.Done():
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Publish queues the event for broadcast. It never blocks the caller; when
// the queue is full the event is dropped and clients catch up on the next one.
func (h *ChangeHub) Publish(_ context.Context, ev services.Event) error {
	ev.Payload = nil
	select {
	case h.broadcast <- ev:
	default:
		log.Printf("ws: broadcast queue full, dropping %s.%s #%d", ev.Collection, ev.Action, ev.ID)
	}
	return nil
}

// Clients returns the number of open connections.
func (h *ChangeHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades GET /ws/changes. Auth is done by WSAuthMiddleware.
func (h *ChangeHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade error: %v", err)
		return
	}

	select {
	case h.register <- subscription{conn: conn, userID: userID}:
	case <-h.done:
		conn.Close()
		return
	}
	go h.readUntilClosed(conn)
}

// readUntilClosed drains the connection; the feed is one-way.
func (h *ChangeHub) readUntilClosed(conn *websocket.Conn) {
	defer func() {
		select {
		case h.unregister <- conn:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
