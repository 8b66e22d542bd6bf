package model

import (
	"time"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Valid reports whether s is one of the known senders.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderAI
}

// FontStyle is an opaque presentation descriptor attached to a message.
// The backend never interprets its keys; it is stored as JSON and handed
// back to the renderer unchanged.
type FontStyle map[string]any

// Chat stores metadata about a conversation.
type Chat struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message stores a single message in a chat.
type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	FontStyle FontStyle `json:"font_style"` // null when absent.
	CreatedAt time.Time `json:"created_at"`
}

// DefaultChatName is used when a chat is created without a name.
const DefaultChatName = "New Chat"
