package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/physics"
	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/simulation"
)

const (
	writeWait      = 5 * time.Second
	sendBufferSize = 8
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans simulation snapshots out to websocket clients. Publishing never
// blocks the frame loop: a client that falls behind loses frames.
type Hub struct {
	upgrader websocket.Upgrader
	limiter  *rate.Limiter
	logger   *slog.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}
	last    []byte
	closed  bool
}

// NewHub creates a hub that publishes at most perSecond snapshots per second.
func NewHub(perSecond float64) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		logger:  slog.With("component", "stream"),
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the connection and streams snapshots until the client
// goes away. New clients first receive the latest snapshot.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBufferSize)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	if h.last != nil {
		c.send <- h.last
	}
	h.mu.Unlock()

	h.logger.Info("Client connected", "remote", conn.RemoteAddr().String())

	go h.writePump(c)
	h.readPump(c)
}

// readPump drains client messages so close frames are noticed.
func (h *Hub) readPump(c *client) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.Debug("Write failed", "error", err)
			h.remove(c)
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.logger.Info("Client disconnected", "remote", c.conn.RemoteAddr().String())
}

// Publish broadcasts snap unless the rate limit has been hit. It reports
// whether the snapshot was sent.
func (h *Hub) Publish(snap Snapshot) bool {
	if !h.limiter.Allow() {
		return false
	}
	return h.Broadcast(snap) == nil
}

// Broadcast sends snap to every client regardless of the rate limit.
func (h *Hub) Broadcast(snap Snapshot) error {
	msg, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = msg
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// slow client, drop this frame
		}
	}
	return nil
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// Run steps sim in real time at tps frames per second and publishes a
// snapshot after each frame, until ctx is cancelled.
func (h *Hub) Run(ctx context.Context, sim *simulation.Simulator, tps int) error {
	if tps <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", physics.ErrInvalidConfig, tps)
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			sim.UpdateFrame(now.Sub(last).Seconds())
			last = now
			h.Publish(NewSnapshot(sim, true))
		}
	}
}
