package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"sup-chat/backend/internal/model"
)

type sqliteRepository struct {
	db    *sql.DB
	clock *clock
}

func NewSQLiteRepository(db *sql.DB) Store {
	return &sqliteRepository{db: db, clock: newClock()}
}

func (r *sqliteRepository) CreateChat(ctx context.Context, name string) (*model.Chat, error) {
	if name == "" {
		name = model.DefaultChatName
	}
	now := r.clock.Now()
	chat := &model.Chat{ID: uuid.NewString(), Name: name, CreatedAt: now, UpdatedAt: now}

	query := "INSERT INTO chats (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, query, chat.ID, chat.Name, chat.CreatedAt, chat.UpdatedAt); err != nil {
		return nil, fmt.Errorf("could not insert chat: %w", err)
	}
	return chat, nil
}

func (r *sqliteRepository) GetChat(ctx context.Context, chatID string) (*model.Chat, error) {
	query := "SELECT id, name, created_at, updated_at FROM chats WHERE id = ?"
	var chat model.Chat
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(&chat.ID, &chat.Name, &chat.CreatedAt, &chat.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &chat, nil
}

// ListChats orders by recency. rowid breaks ties so that, of two chats with the
// same updated_at, the one created later comes first.
func (r *sqliteRepository) ListChats(ctx context.Context) ([]model.Chat, error) {
	query := "SELECT id, name, created_at, updated_at FROM chats ORDER BY updated_at DESC, rowid DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := []model.Chat{}
	for rows.Next() {
		var chat model.Chat
		if err := rows.Scan(&chat.ID, &chat.Name, &chat.CreatedAt, &chat.UpdatedAt); err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	return chats, rows.Err()
}

func (r *sqliteRepository) RenameChat(ctx context.Context, chatID, name string) (bool, error) {
	query := "UPDATE chats SET name = ?, updated_at = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, name, r.clock.Now(), chatID)
	if err != nil {
		return false, fmt.Errorf("could not rename chat: %w", err)
	}
	return changed(res)
}

// DeleteChat relies on ON DELETE CASCADE to remove the chat's messages in the
// same statement.
func (r *sqliteRepository) DeleteChat(ctx context.Context, chatID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM chats WHERE id = ?", chatID)
	if err != nil {
		return false, fmt.Errorf("could not delete chat: %w", err)
	}
	return changed(res)
}

// AppendMessage uses a transaction so the message insert and the chat's
// recency bump are applied together or not at all.
func (r *sqliteRepository) AppendMessage(
	ctx context.Context,
	chatID string,
	sender model.Sender,
	content string,
	fontStyle model.FontStyle,
) (*model.Message, error) {
	if !sender.Valid() {
		return nil, fmt.Errorf("invalid sender %q", sender)
	}
	style, err := encodeFontStyle(fontStyle)
	if err != nil {
		return nil, fmt.Errorf("could not encode font style: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	// Ensure transaction is rolled back on error
	defer func() { _ = tx.Rollback() }()

	// The timestamp is taken inside the transaction so commit order and
	// created_at order agree.
	now := r.clock.Now()

	res, err := tx.ExecContext(ctx, "UPDATE chats SET updated_at = ? WHERE id = ?", now, chatID)
	if err != nil {
		return nil, fmt.Errorf("could not update chat timestamp: %w", err)
	}
	ok, err := changed(res)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("chat %s: %w", chatID, ErrNotFound)
	}

	msg := &model.Message{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Sender:    sender,
		Content:   content,
		FontStyle: fontStyle,
		CreatedAt: now,
	}
	insertMsgQuery := `
		INSERT INTO messages (id, chat_id, sender, content, font_style, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, insertMsgQuery, msg.ID, msg.ChatID, msg.Sender, msg.Content, style, msg.CreatedAt); err != nil {
		return nil, fmt.Errorf("could not insert message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit message: %w", err)
	}
	return msg, nil
}

func (r *sqliteRepository) ListMessages(ctx context.Context, chatID string) ([]model.Message, error) {
	query := `
		SELECT id, chat_id, sender, content, font_style, created_at
		FROM messages
		WHERE chat_id = ?
		ORDER BY created_at ASC, rowid ASC
	`
	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var msg model.Message
		var style sql.NullString
		if err := rows.Scan(&msg.ID, &msg.ChatID, &msg.Sender, &msg.Content, &style, &msg.CreatedAt); err != nil {
			return nil, err
		}
		if msg.FontStyle, err = decodeFontStyle(style); err != nil {
			return nil, fmt.Errorf("message %s: could not decode font style: %w", msg.ID, err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func changed(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}
	return n > 0, nil
}

func encodeFontStyle(style model.FontStyle) (sql.NullString, error) {
	if style == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(style)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeFontStyle(raw sql.NullString) (model.FontStyle, error) {
	// Rows written by older clients may hold a literal JSON null.
	if !raw.Valid || raw.String == "" || raw.String == "null" {
		return nil, nil
	}
	var style model.FontStyle
	if err := json.Unmarshal([]byte(raw.String), &style); err != nil {
		return nil, err
	}
	return style, nil
}
