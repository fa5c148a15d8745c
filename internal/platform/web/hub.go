// Package web serves a spectator view of an autopilot run: the latest
// snapshot as JSON and a websocket stream of every snapshot.
package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/dinorun/internal/engine"
)

const (
	sendBuffer = 16 // Snapshots queued per client before it is considered slow
	writeWait  = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans snapshots out to websocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte
	logger  *log.Logger
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// Publish encodes snap and queues it for every client. Clients that fall
// behind drop frames rather than stall the simulation.
func (h *Hub) Publish(snap engine.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		h.logger.Error("cannot encode snapshot", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

// Latest returns the most recent encoded snapshot, or nil.
func (h *Hub) Latest() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// ClientCount returns the number of connected websocket clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c] = struct{}{}
	if h.latest != nil {
		c.send <- h.latest
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// ServeSnapshot writes the latest snapshot as JSON.
func (h *Hub) ServeSnapshot(w http.ResponseWriter, r *http.Request) {
	data := h.Latest()
	if data == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // Client went away
	w.Write(data)
}

// ServeWS upgrades the request and streams snapshots until the client leaves.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(c)
	h.logger.Info("spectator joined", "remote", r.RemoteAddr)

	go h.writePump(c)
	h.readPump(c)

	h.logger.Info("spectator left", "remote", r.RemoteAddr)
}

// readPump discards client messages and unregisters the client when the
// connection closes.
func (h *Hub) readPump(c *client) {
	defer h.unregister(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Debug("websocket read error", "error", err)
			}
			return
		}
	}
}

// writePump sends queued snapshots until the send channel closes.
func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		//nolint:errcheck // A failed deadline shows up as a write error
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("websocket write error", "error", err)
			return
		}
	}
	//nolint:errcheck // Best-effort close frame
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
