// Package monitor broadcasts a live burst-status feed over a
// WebSocket, upgrading the teacher's pkg/web websocket hub (peer and
// transmission events) to the transmitter's own domain: one event per
// generated burst, carrying the TDMA time, burst kind, active logical
// channels, and any FEC failures observed while building it.
package monitor

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/dbehnke/tetra-corebs/internal/logger"
	"github.com/gorilla/websocket"
)

// Event is a WebSocket event broadcast to connected clients.
type Event struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// Marshal converts an event to JSON bytes.
func (e *Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Client represents a connected WebSocket client.
type Client struct {
	ID       string
	conn     *websocket.Conn
	messages chan []byte
}

// Hub manages WebSocket client connections and broadcasts burst
// status events to all of them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Event
	register   chan *Client
	unregister chan *Client
	log        *logger.Logger
	mu         sync.RWMutex
}

// NewHub creates a new monitor hub.
func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.New(logger.Config{Level: "info"})
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log.WithComponent("monitor"),
	}
}

// Run starts the hub event loop until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.log.Debug("client registered", logger.String("client_id", client.ID))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.messages)
			}
			h.mu.Unlock()
			h.log.Debug("client unregistered", logger.String("client_id", client.ID))

		case event := <-h.broadcast:
			data, err := event.Marshal()
			if err != nil {
				h.log.Error("failed to marshal event", logger.Error(err))
				continue
			}
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.messages <- data:
				default:
					h.log.Warn("client message buffer full, skipping", logger.String("client_id", client.ID))
				}
			}
			h.mu.RUnlock()

		case <-ctx.Done():
			h.log.Info("monitor hub shutting down")
			h.mu.Lock()
			for client := range h.clients {
				close(client.messages)
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return
		}
	}
}

// Broadcast sends an event to all connected clients, dropping it if
// the hub's internal buffer is full.
func (h *Hub) Broadcast(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case h.broadcast <- event:
	default:
		h.log.Warn("broadcast channel full, dropping event", logger.String("event_type", event.Type))
	}
}

// BroadcastBurst announces one generated burst: its TDMA time
// (slot/frame/multiframe/hyperframe, 1-based), burst kind ("sync" or
// "normal"), the logical channels carried in it, and the number of
// FEC failures observed while building it.
func (h *Hub) BroadcastBurst(slot, frame, multiframe, hyperframe uint32, kind string, channels []string, fecFailures int) {
	h.Broadcast(Event{
		Type: "burst",
		Data: map[string]interface{}{
			"slot":         slot,
			"frame":        frame,
			"multiframe":   multiframe,
			"hyperframe":   hyperframe,
			"kind":         kind,
			"channels":     channels,
			"fec_failures": fecFailures,
		},
	})
}

// Handler returns an HTTP handler that upgrades requests to
// WebSocket connections and streams burst events to them.
func (h *Hub) Handler() http.Handler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, "websocket upgrade failed", http.StatusBadRequest)
			return
		}
		client := &Client{ID: r.RemoteAddr, conn: conn, messages: make(chan []byte, 256)}
		h.register <- client

		go func() {
			defer func() {
				h.unregister <- client
				_ = client.conn.Close()
			}()
			client.conn.SetReadLimit(1024)
			for {
				if _, _, err := client.conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		go func() {
			for msg := range client.messages {
				_ = client.conn.WriteMessage(websocket.TextMessage, msg)
			}
		}()
	})
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
