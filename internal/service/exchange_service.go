package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sup-chat/backend/internal/llm"
	"sup-chat/backend/internal/metrics"
	"sup-chat/backend/internal/model"
	"sup-chat/backend/internal/repository"
	"sup-chat/backend/internal/style"
)

const (
	// gatewayErrorFormat is sent (and stored) when the model could not answer.
	gatewayErrorFormat = "🎨 FONT ERROR! Make sure Ollama is running with %s model! 🎨"
	// CrashMessage is sent when the exchange cycle itself failed.
	CrashMessage = "💥 COMIC CRASH! Something went wrong with the AI! 💥"

	timestampLayout = "3:04:05 PM"
)

// GatewayErrorMessage is the fallback reply used when the model is unreachable.
func GatewayErrorMessage(modelName string) string {
	return fmt.Sprintf(gatewayErrorFormat, modelName)
}

// InboundMessage is the payload of a "chat message" event.
type InboundMessage struct {
	Message       string          `json:"message"`
	ChatID        string          `json:"chatId"`
	UserFontStyle model.FontStyle `json:"userFontStyle"`
}

// OutboundResponse is the payload of an "ai response" event.
type OutboundResponse struct {
	Message   string          `json:"message"`
	FontStyle model.FontStyle `json:"fontStyle"`
	Timestamp string          `json:"timestamp"`
}

// SettingsReader provides the generation settings for each cycle.
type SettingsReader interface {
	Get(ctx context.Context) (*Settings, error)
}

// ExchangeService runs one exchange cycle per inbound user message. It holds
// no per-connection state, so concurrent cycles never observe each other.
type ExchangeService struct {
	store    repository.Store
	llm      llm.LLMProvider
	picker   style.Picker
	settings SettingsReader
	timeout  time.Duration
	now      func() time.Time
}

func NewExchangeService(
	store repository.Store,
	llmProvider llm.LLMProvider,
	picker style.Picker,
	settings SettingsReader,
	timeout time.Duration,
) *ExchangeService {
	return &ExchangeService{
		store:    store,
		llm:      llmProvider,
		picker:   picker,
		settings: settings,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Exchange persists the user message, asks the model for a reply, persists the
// styled reply and returns it. It never fails: any error or panic is turned
// into the crash reply. Persistence is skipped when the message carries no
// chat id.
//
// The cycle is detached from ctx cancellation so a client that disconnects
// mid-cycle does not abort writes that are already under way.
func (s *ExchangeService) Exchange(ctx context.Context, in InboundMessage) (out OutboundResponse) {
	ctx = context.WithoutCancel(ctx)
	outcome := metrics.OutcomeFailure
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Exchange cycle panicked", "chat_id", in.ChatID, "panic", r)
			outcome = metrics.OutcomeFailure
			out = s.crashReply()
		}
		metrics.RecordExchange(outcome)
	}()

	resp, generated, err := s.exchange(ctx, in)
	if err != nil {
		slog.Error("Exchange cycle failed", "chat_id", in.ChatID, "error", err)
		return s.crashReply()
	}
	if generated {
		outcome = metrics.OutcomeOK
	} else {
		outcome = metrics.OutcomeFallback
	}
	return resp
}

// exchange runs one cycle and reports whether the reply came from the model.
func (s *ExchangeService) exchange(ctx context.Context, in InboundMessage) (OutboundResponse, bool, error) {
	// Step 1: Save the user's message
	if in.ChatID != "" {
		if _, err := s.store.AppendMessage(ctx, in.ChatID, model.SenderUser, in.Message, in.UserFontStyle); err != nil {
			return OutboundResponse{}, false, fmt.Errorf("could not save user message: %w", err)
		}
		metrics.RecordMessageStored(string(model.SenderUser))
	}

	// Step 2: Ask the model, degrading to the fallback text
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return OutboundResponse{}, false, fmt.Errorf("could not load settings: %w", err)
	}
	reply, generated := s.generate(ctx, settings, in.Message)

	// Step 3: Style and save the reply
	fontStyle := s.picker.Pick()
	if in.ChatID != "" {
		if _, err := s.store.AppendMessage(ctx, in.ChatID, model.SenderAI, reply, fontStyle); err != nil {
			return OutboundResponse{}, false, fmt.Errorf("could not save ai message: %w", err)
		}
		metrics.RecordMessageStored(string(model.SenderAI))
	}

	return OutboundResponse{
		Message:   reply,
		FontStyle: fontStyle,
		Timestamp: s.timestamp(),
	}, generated, nil
}

func (s *ExchangeService) crashReply() OutboundResponse {
	return OutboundResponse{
		Message:   CrashMessage,
		FontStyle: s.picker.Pick(),
		Timestamp: s.timestamp(),
	}
}

// generate returns the model's reply, or the fallback text and false.
func (s *ExchangeService) generate(ctx context.Context, settings *Settings, prompt string) (string, bool) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.llm.Generate(ctx, &llm.GenerateRequest{
		Model:  settings.Model,
		Prompt: prompt,
		System: settings.SystemPrompt,
	})
	metrics.RecordGatewayCall(start)
	if err == nil && resp == nil {
		err = llm.ErrEmptyResponse
	}
	if err != nil {
		slog.Warn("Ollama API error", "model", settings.Model, "error", err)
		return GatewayErrorMessage(settings.Model), false
	}
	return resp.Response, true
}

func (s *ExchangeService) timestamp() string {
	return s.now().Format(timestampLayout)
}
