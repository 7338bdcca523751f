package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/otascout/internal/listener"
	"github.com/muurk/otascout/internal/logging"
	"github.com/muurk/otascout/internal/report"
)

const (
	// EventsPath is the WebSocket endpoint
	EventsPath = "/events"

	// HealthPath answers liveness probes
	HealthPath = "/healthz"

	writeTimeout   = 5 * time.Second
	clientQueueLen = 64
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans events out to WebSocket clients
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}

	server *http.Server
	addr   net.Addr
}

// NewHub creates a hub with no clients
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Local tooling connects from arbitrary origins
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Handler returns the HTTP handler serving the feed
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(EventsPath, h.serveEvents)
	mux.HandleFunc(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

// Listen binds addr and serves the feed in the background
func (h *Hub) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen for feed clients on %s: %w", addr, err)
	}

	h.server = &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	h.addr = ln.Addr()

	go func() {
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Feed server stopped", zap.Error(err))
		}
	}()

	logging.Info("Event feed listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the bound feed address, or nil before Listen
func (h *Hub) Addr() net.Addr {
	return h.addr
}

// Close disconnects all clients and stops the server
func (h *Hub) Close() error {
	h.disconnectAll(websocket.CloseGoingAway, "feed closed")
	if h.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	return h.server.Shutdown(ctx)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Started implements listener.Sink
func (h *Hub) Started(*net.UDPAddr) {}

// Report queues the event for every client
func (h *Hub) Report(ev listener.Event) error {
	data, err := json.Marshal(report.NewRecord(ev))
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			logging.Warn("Dropping slow feed client", zap.String("remote_addr", c.conn.RemoteAddr().String()))
			h.removeLocked(c)
		}
	}
	return nil
}

// Stopped tells clients the listener has shut down
func (h *Hub) Stopped() {
	h.disconnectAll(websocket.CloseGoingAway, "listener stopped")
}

func (h *Hub) serveEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("Feed upgrade failed", zap.String("remote_addr", r.RemoteAddr), zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, clientQueueLen)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	logging.Info("Feed client connected", zap.String("remote_addr", r.RemoteAddr))

	go h.writePump(c)
	h.readPump(c)
}

// readPump drains client frames so control messages are processed, and
// removes the client when the connection ends
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		_ = c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer func() { _ = c.conn.Close() }()
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			logging.Debug("Feed write failed", zap.Error(err))
			return
		}
	}
}

func (h *Hub) disconnectAll(code int, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := websocket.FormatCloseMessage(code, text)
	for c := range h.clients {
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeTimeout))
		h.removeLocked(c)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}
