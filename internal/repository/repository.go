package repository

import (
	"context"

	"sup-chat/backend/internal/model"
)

// Store is the durable record of chats and messages. Implementations must be
// safe for concurrent use and serialize their own writes.
type Store interface {
	CreateChat(ctx context.Context, name string) (*model.Chat, error)
	GetChat(ctx context.Context, chatID string) (*model.Chat, error)
	ListChats(ctx context.Context) ([]model.Chat, error)
	// RenameChat reports whether a chat was changed. An unknown id is not an error.
	RenameChat(ctx context.Context, chatID, name string) (bool, error)
	// DeleteChat removes the chat together with all of its messages.
	DeleteChat(ctx context.Context, chatID string) (bool, error)

	// AppendMessage stores a message and bumps the owning chat's updated_at
	// in the same transaction. It returns ErrNotFound if the chat is missing.
	AppendMessage(ctx context.Context, chatID string, sender model.Sender, content string, fontStyle model.FontStyle) (*model.Message, error)
	// ListMessages returns messages oldest first. An unknown chat yields an empty slice.
	ListMessages(ctx context.Context, chatID string) ([]model.Message, error)
}
