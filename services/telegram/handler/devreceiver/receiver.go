// Package devreceiver implements a development-only callback sink: it
// accepts webhook posts the way a tenant's endpoint would, keeps the most
// recent deliveries in memory, and streams them to websocket subscribers.
package devreceiver

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/greytg/bridge/internal/pkg/logger"
)

// maxEntries bounds the in-memory log.
const maxEntries = 100

// ReceivedCallback is one captured webhook delivery.
type ReceivedCallback struct {
	At        time.Time       `json:"at"`
	Signature string          `json:"signature,omitempty"`
	Body      json.RawMessage `json:"body"`
}

// Receiver captures webhook deliveries for local inspection.
type Receiver struct {
	mu      sync.Mutex
	entries []ReceivedCallback
	clients map[*websocket.Conn]bool

	upgrader websocket.Upgrader
}

// NewReceiver creates a new dev callback receiver
func NewReceiver() *Receiver {
	return &Receiver{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle accepts a webhook post and records it.
func (r *Receiver) Handle(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"ok": false})
	}

	entry := ReceivedCallback{
		At:        time.Now(),
		Signature: c.Request().Header.Get("X-Signature"),
		Body:      json.RawMessage(body),
	}

	r.mu.Lock()
	r.entries = append(r.entries, entry)
	if len(r.entries) > maxEntries {
		r.entries = r.entries[len(r.entries)-maxEntries:]
	}
	conns := make([]*websocket.Conn, 0, len(r.clients))
	for conn := range r.clients {
		conns = append(conns, conn)
	}
	r.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(entry); err != nil {
			r.dropClient(conn)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true})
}

// Log returns the captured deliveries, oldest first.
func (r *Receiver) Log(c echo.Context) error {
	r.mu.Lock()
	entries := make([]ReceivedCallback, len(r.entries))
	copy(entries, r.entries)
	r.mu.Unlock()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"count":     len(entries),
		"callbacks": entries,
	})
}

// Feed upgrades to a websocket and streams deliveries as they arrive.
func (r *Receiver) Feed(c echo.Context) error {
	conn, err := r.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.clients[conn] = true
	r.mu.Unlock()

	logger.Debug("Dev receiver websocket client connected",
		logger.String("remote", conn.RemoteAddr().String()))

	// Read loop only detects disconnects; the feed is one-way.
	go func() {
		defer r.dropClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}

func (r *Receiver) dropClient(conn *websocket.Conn) {
	r.mu.Lock()
	if _, ok := r.clients[conn]; ok {
		delete(r.clients, conn)
		conn.Close()
	}
	r.mu.Unlock()
}
