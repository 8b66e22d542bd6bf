package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sup-chat/backend/internal/service"
)

type exchangeFunc func(ctx context.Context, in service.InboundMessage) service.OutboundResponse

func (f exchangeFunc) Exchange(ctx context.Context, in service.InboundMessage) service.OutboundResponse {
	return f(ctx, in)
}

func TestSession_StaysOpenWhileReaderWaitsForInbox(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	hub := NewHub(exchangeFunc(func(_ context.Context, in service.InboundMessage) service.OutboundResponse {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return service.OutboundResponse{Message: "re: " + in.Message}
	}))
	hub.pongWait = 300 * time.Millisecond
	hub.pingPeriod = hub.pongWait * 9 / 10

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(conn)
	}))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hub.Close(ctx)
		srv.Close()
	})

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	// One message in the running cycle, a full inbox, one the reader is
	// holding and one it has not read yet.
	total := inboxBuffer + 3
	for i := range total {
		data, err := json.Marshal(service.InboundMessage{Message: fmt.Sprint(i)})
		require.NoError(t, err)
		require.NoError(t, conn.WriteJSON(Envelope{Event: EventChatMessage, Data: data}))
	}

	<-started
	// Longer than the pong window, with no frames read on either side.
	time.Sleep(3 * hub.pongWait)
	close(release)

	for i := range total {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		var env Envelope
		require.NoError(t, conn.ReadJSON(&env), "reply %d", i)
		require.Equal(t, EventAIResponse, env.Event)

		var resp service.OutboundResponse
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, fmt.Sprintf("re: %d", i), resp.Message)
	}
	assert.Equal(t, 1, hub.Count())
}
