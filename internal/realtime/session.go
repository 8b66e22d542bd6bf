package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"sup-chat/backend/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	maxMessageSize = 64 * 1024

	sendBuffer  = 16
	inboxBuffer = 8
)

// State is the lifecycle state of a session.
type State int32

const (
	StateConnected State = iota
	StateProcessing
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateProcessing:
		return "processing"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Session is one live connection. The read pump is the only reader and the
// write pump the only writer. Exchange cycles run one at a time in between.
type Session struct {
	id   string
	hub  *Hub
	conn *websocket.Conn

	send  chan []byte
	inbox chan service.InboundMessage

	state atomic.Int32

	mu   sync.Mutex
	chat string
}

func newSession(hub *Hub, conn *websocket.Conn) *Session {
	return &Session{
		id:    uuid.NewString(),
		hub:   hub,
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
		inbox: make(chan service.InboundMessage, inboxBuffer),
	}
}

func (s *Session) State() State { return State(s.state.Load()) }

func (s *Session) info() SessionInfo {
	return SessionInfo{ID: s.id, State: s.State(), ActiveChat: s.activeChat()}
}

func (s *Session) activeChat() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat
}

func (s *Session) setActiveChat(chatID string) {
	if chatID == "" {
		return
	}
	s.mu.Lock()
	s.chat = chatID
	s.mu.Unlock()
}

// transition moves the session between live states. DISCONNECTED is terminal.
func (s *Session) transition(from, to State) bool {
	return s.state.CompareAndSwap(int32(from), int32(to))
}

func (s *Session) run(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)

	var pumps sync.WaitGroup
	pumps.Add(1)
	go func() {
		defer pumps.Done()
		s.writePump(ctx, cancel)
	}()

	go func() {
		defer s.hub.cycles.Done()
		s.processLoop(ctx)
	}()

	s.readPump(ctx)
	s.state.Store(int32(StateDisconnected))
	cancel()
	pumps.Wait()
}

// readPump decodes inbound frames and queues chat messages for processing.
func (s *Session) readPump(ctx context.Context) {
	defer close(s.inbox)

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(s.hub.pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.hub.pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				slog.Warn("Websocket read failed", "session_id", s.id, "error", err)
			}
			return
		}

		in, err := decodeChatMessage(data)
		if errors.Is(err, errUnknownEvent) {
			slog.Debug("Ignoring unknown event", "session_id", s.id, "error", err)
			continue
		}
		if err != nil {
			slog.Warn("Invalid inbound frame", "session_id", s.id, "error", err)
			s.emit(ctx, EventError, ErrorPayload{Error: "invalid message format"})
			continue
		}

		s.setActiveChat(in.ChatID)
		s.enqueue(in)
	}
}

// enqueue hands a message to the processing loop. A full inbox stops the
// reader until a cycle finishes. Pongs are not read meanwhile, so the read
// deadline restarts once the message is queued.
func (s *Session) enqueue(in service.InboundMessage) {
	select {
	case s.inbox <- in:
		return
	default:
	}

	slog.Debug("Inbox full, waiting for a running cycle", "session_id", s.id)
	s.inbox <- in
	_ = s.conn.SetReadDeadline(time.Now().Add(s.hub.pongWait))
}

// processLoop runs exchange cycles in arrival order until the read pump
// closes the inbox. Messages received before a disconnect are still
// processed; only their replies are dropped.
func (s *Session) processLoop(ctx context.Context) {
	for in := range s.inbox {
		s.transition(StateConnected, StateProcessing)
		slog.Info("Processing message", "session_id", s.id, "chat_id", in.ChatID)

		resp := s.hub.exchange.Exchange(ctx, in)

		s.transition(StateProcessing, StateConnected)
		s.emit(ctx, EventAIResponse, resp)
	}
}

// writePump is the only goroutine that writes to the connection.
func (s *Session) writePump(ctx context.Context, cancel context.CancelFunc) {
	ticker := time.NewTicker(s.hub.pingPeriod)
	defer func() {
		ticker.Stop()
		cancel()
		_ = s.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = s.conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait),
			)
			return
		case frame := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				slog.Warn("Websocket write failed", "session_id", s.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// emit queues an event for the write pump. Events for a closed session are
// discarded.
func (s *Session) emit(ctx context.Context, event string, payload any) {
	frame, err := encodeEnvelope(event, payload)
	if err != nil {
		slog.Error("Failed to encode event", "session_id", s.id, "event", event, "error", err)
		return
	}
	if ctx.Err() == nil {
		select {
		case s.send <- frame:
			return
		case <-ctx.Done():
		}
	}
	slog.Debug("Dropping event for closed session", "session_id", s.id, "event", event)
}

func encodeEnvelope(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: data})
}
