package interfaces

import (
	"context"

	"sup-chat/backend/internal/llm"
	"sup-chat/backend/internal/model"
	"sup-chat/backend/internal/service"
)

// Handlers and the live channel depend on these contracts rather than on the
// concrete services, which keeps them testable with generated mocks.

// ChatService defines the contract for chat management.
type ChatService interface {
	ListChats(ctx context.Context) ([]model.Chat, error)
	CreateChat(ctx context.Context, name string) (*model.Chat, error)
	GetChat(ctx context.Context, chatID string) (*model.Chat, error)
	RenameChat(ctx context.Context, chatID, name string) (bool, error)
	DeleteChat(ctx context.Context, chatID string) (bool, error)
	ListMessages(ctx context.Context, chatID string) ([]model.Message, error)
}

// ExchangeService runs one exchange cycle for an inbound message.
type ExchangeService interface {
	Exchange(ctx context.Context, in service.InboundMessage) service.OutboundResponse
}

// ModelService defines the contract for model discovery.
type ModelService interface {
	List(ctx context.Context) (*llm.ListModelsResponse, error)
}

// SettingsService defines the contract for managing application settings.
type SettingsService interface {
	Get(ctx context.Context) (*service.Settings, error)
	Save(ctx context.Context, settings *service.Settings) error
}
