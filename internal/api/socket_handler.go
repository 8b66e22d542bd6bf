package api

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gorilla/websocket"
)

// LiveChannel runs live sessions on upgraded connections.
type LiveChannel interface {
	Serve(conn *websocket.Conn)
	Count() int
}

// SocketHandler upgrades /socket requests and hands the connection to the hub.
type SocketHandler struct {
	hub      LiveChannel
	upgrader websocket.Upgrader
}

func NewSocketHandler(hub LiveChannel, allowedOrigins []string) *SocketHandler {
	return &SocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// ServeWS upgrades the request and blocks for the life of the connection.
// Frames are JSON envelopes {"event","data"}: the client sends "chat message"
// and the server answers with "ai response".
func (h *SocketHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		slog.Warn("Websocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err)
		return
	}
	h.hub.Serve(conn)
}

// Health reports liveness and the number of open live connections.
func (h *SocketHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok", Connections: h.hub.Count()})
}

// originChecker allows requests without an Origin header, and any origin
// when the list contains "*".
func originChecker(allowed []string) func(r *http.Request) bool {
	allowAll := len(allowed) == 0 || slices.Contains(allowed, "*")
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if allowAll || origin == "" {
			return true
		}
		return slices.Contains(allowed, origin)
	}
}
