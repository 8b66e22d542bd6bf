package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	app_errors "sup-chat/backend/internal/errors"
	"sup-chat/backend/internal/model"
	"sup-chat/backend/internal/repository"
)

// ChatService implements chat management on top of the store.
type ChatService struct {
	store repository.Store
}

func NewChatService(store repository.Store) *ChatService {
	return &ChatService{store: store}
}

// ListChats returns all chats, most recently active first.
func (s *ChatService) ListChats(ctx context.Context) ([]model.Chat, error) {
	chats, err := s.store.ListChats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list chats: %w", err)
	}
	return chats, nil
}

// CreateChat creates a chat. A blank name falls back to the default.
func (s *ChatService) CreateChat(ctx context.Context, name string) (*model.Chat, error) {
	chat, err := s.store.CreateChat(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("could not create chat: %w", err)
	}
	slog.Info("Created chat", "chat_id", chat.ID, "name", chat.Name)
	return chat, nil
}

// RenameChat reports whether a chat with chatID existed and was renamed.
func (s *ChatService) RenameChat(ctx context.Context, chatID, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("%w: chat name cannot be empty", app_errors.ErrValidation)
	}
	changed, err := s.store.RenameChat(ctx, chatID, name)
	if err != nil {
		return false, fmt.Errorf("could not rename chat %s: %w", chatID, err)
	}
	if !changed {
		slog.Debug("Rename matched no chat", "chat_id", chatID)
	}
	return changed, nil
}

// DeleteChat removes a chat and its messages.
func (s *ChatService) DeleteChat(ctx context.Context, chatID string) (bool, error) {
	changed, err := s.store.DeleteChat(ctx, chatID)
	if err != nil {
		return false, fmt.Errorf("could not delete chat %s: %w", chatID, err)
	}
	slog.Info("Deleted chat", "chat_id", chatID, "changed", changed)
	return changed, nil
}

// ListMessages returns a chat's history, oldest first. Unknown chats yield an
// empty history rather than an error.
func (s *ChatService) ListMessages(ctx context.Context, chatID string) ([]model.Message, error) {
	messages, err := s.store.ListMessages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("could not list messages for chat %s: %w", chatID, err)
	}
	return messages, nil
}

// GetChat returns a single chat's metadata.
func (s *ChatService) GetChat(ctx context.Context, chatID string) (*model.Chat, error) {
	chat, err := s.store.GetChat(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("chat %s: %w", chatID, app_errors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: could not get chat %s: %w", app_errors.ErrInternal, chatID, err)
	}
	return chat, nil
}
