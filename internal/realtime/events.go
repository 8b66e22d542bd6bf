package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"sup-chat/backend/internal/model"
	"sup-chat/backend/internal/service"
)

// Event names on the live channel.
const (
	EventChatMessage = "chat message"
	EventAIResponse  = "ai response"
	EventError       = "error"
)

var errUnknownEvent = errors.New("unknown event")

// Envelope wraps every frame exchanged over the socket.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ErrorPayload is the data of an "error" event.
type ErrorPayload struct {
	Error string `json:"error"`
}

func decodeChatMessage(frame []byte) (service.InboundMessage, error) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return service.InboundMessage{}, fmt.Errorf("invalid envelope: %w", err)
	}
	if env.Event != EventChatMessage {
		return service.InboundMessage{}, fmt.Errorf("%w: %q", errUnknownEvent, env.Event)
	}

	if len(env.Data) == 0 {
		return service.InboundMessage{}, errors.New("missing data")
	}
	var wire struct {
		Message       string          `json:"message"`
		ChatID        string          `json:"chatId"`
		UserFontStyle json.RawMessage `json:"userFontStyle"`
	}
	if err := json.Unmarshal(env.Data, &wire); err != nil {
		return service.InboundMessage{}, fmt.Errorf("invalid chat message: %w", err)
	}

	return service.InboundMessage{
		Message:       wire.Message,
		ChatID:        wire.ChatID,
		UserFontStyle: decodeStyleHint(wire.UserFontStyle),
	}, nil
}

// decodeStyleHint keeps the client's style hint when it is a JSON object and
// drops it otherwise.
func decodeStyleHint(raw json.RawMessage) model.FontStyle {
	if len(raw) == 0 {
		return nil
	}
	var style model.FontStyle
	if err := json.Unmarshal(raw, &style); err != nil {
		slog.Debug("Dropping non-object style hint", "hint", string(raw))
		return nil
	}
	return style
}
