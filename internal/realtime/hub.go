// Package realtime implements the live message channel: one Session per
// websocket connection, tracked by a Hub. Responses go back to the
// connection that asked; nothing is broadcast.
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"sup-chat/backend/internal/interfaces"
	"sup-chat/backend/internal/metrics"
)

// SessionInfo is a point-in-time view of a session.
type SessionInfo struct {
	ID         string
	State      State
	ActiveChat string
}

// Hub owns every live session. Sessions share nothing but the exchange
// service, whose store serializes its own writes.
type Hub struct {
	exchange interfaces.ExchangeService

	pongWait   time.Duration
	pingPeriod time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*Session
	cycles   sync.WaitGroup
}

func NewHub(exchange interfaces.ExchangeService) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		exchange:   exchange,
		pongWait:   pongWait,
		pingPeriod: pongWait * 9 / 10,
		ctx:        ctx,
		cancel:     cancel,
		sessions:   make(map[string]*Session),
	}
}

// Serve runs a session on conn and blocks until the connection is gone.
func (h *Hub) Serve(conn *websocket.Conn) {
	s := newSession(h, conn)
	if !h.register(s) {
		_ = conn.Close()
		return
	}
	defer h.unregister(s)

	s.run(h.ctx)
}

// Count returns the number of open sessions.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Sessions returns a snapshot of the open sessions.
func (h *Hub) Sessions() []SessionInfo {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]SessionInfo, 0, len(h.sessions))
	for _, s := range h.sessions {
		out = append(out, s.info())
	}
	return out
}

// ActiveChat returns the chat a session last sent a message to.
func (h *Hub) ActiveChat(sessionID string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[sessionID]
	if !ok {
		return "", false
	}
	return s.activeChat(), true
}

// Close disconnects every session and waits for the exchange cycles of
// already received messages to finish, or for ctx to expire.
func (h *Hub) Close(ctx context.Context) error {
	h.mu.Lock()
	h.cancel()
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.cycles.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) register(s *Session) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ctx.Err() != nil {
		return false
	}
	h.sessions[s.id] = s
	// Added under the lock so no cycle can start once Close is waiting.
	h.cycles.Add(1)
	metrics.RecordConnectionOpened()
	slog.Info("User connected", "session_id", s.id, "remote_addr", s.conn.RemoteAddr().String())
	return true
}

func (h *Hub) unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[s.id]; ok {
		delete(h.sessions, s.id)
		metrics.RecordConnectionClosed()
		slog.Info("User disconnected", "session_id", s.id)
	}
}
