package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sup-chat/backend/internal/database"
	"sup-chat/backend/internal/model"
)

func newTestStore(t *testing.T) (Store, *sql.DB) {
	t.Helper()
	db, err := database.InitDB(database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), db
}

func TestCreateChat(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults name when empty", func(t *testing.T) {
		store, _ := newTestStore(t)

		chat, err := store.CreateChat(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, model.DefaultChatName, chat.Name)
		assert.NotEmpty(t, chat.ID)
		assert.True(t, chat.CreatedAt.Equal(chat.UpdatedAt))
	})

	t.Run("New chat is listed first", func(t *testing.T) {
		store, _ := newTestStore(t)

		_, err := store.CreateChat(ctx, "Older")
		require.NoError(t, err)
		created, err := store.CreateChat(ctx, "Demo")
		require.NoError(t, err)

		chats, err := store.ListChats(ctx)
		require.NoError(t, err)
		require.Len(t, chats, 2)
		assert.Equal(t, created.ID, chats[0].ID)
		assert.Equal(t, "Demo", chats[0].Name)
	})

	t.Run("Ids are unique", func(t *testing.T) {
		store, _ := newTestStore(t)
		seen := map[string]bool{}
		for i := 0; i < 20; i++ {
			chat, err := store.CreateChat(ctx, fmt.Sprintf("chat %d", i))
			require.NoError(t, err)
			assert.False(t, seen[chat.ID])
			seen[chat.ID] = true
		}
	})
}

func TestListChats_Empty(t *testing.T) {
	store, _ := newTestStore(t)

	chats, err := store.ListChats(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, chats)
	assert.Empty(t, chats)
}

func TestGetChat(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	chat, err := store.CreateChat(ctx, "Lookup")
	require.NoError(t, err)

	got, err := store.GetChat(ctx, chat.ID)
	require.NoError(t, err)
	assert.Equal(t, chat.ID, got.ID)
	assert.Equal(t, "Lookup", got.Name)
	assert.True(t, chat.CreatedAt.Equal(got.CreatedAt))

	_, err = store.GetChat(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRenameChat(t *testing.T) {
	ctx := context.Background()

	t.Run("Renames and bumps recency", func(t *testing.T) {
		store, _ := newTestStore(t)
		first, err := store.CreateChat(ctx, "First")
		require.NoError(t, err)
		_, err = store.CreateChat(ctx, "Second")
		require.NoError(t, err)

		ok, err := store.RenameChat(ctx, first.ID, "Renamed")
		require.NoError(t, err)
		assert.True(t, ok)

		chats, err := store.ListChats(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID, chats[0].ID)
		assert.Equal(t, "Renamed", chats[0].Name)
		assert.True(t, chats[0].UpdatedAt.After(first.UpdatedAt))
		assert.True(t, chats[0].CreatedAt.Equal(first.CreatedAt))
	})

	t.Run("Unknown id changes nothing", func(t *testing.T) {
		store, _ := newTestStore(t)
		chat, err := store.CreateChat(ctx, "Untouched")
		require.NoError(t, err)

		ok, err := store.RenameChat(ctx, "does-not-exist", "x")
		require.NoError(t, err)
		assert.False(t, ok)

		chats, err := store.ListChats(ctx)
		require.NoError(t, err)
		require.Len(t, chats, 1)
		assert.Equal(t, "Untouched", chats[0].Name)
		assert.True(t, chats[0].UpdatedAt.Equal(chat.UpdatedAt))
	})
}

func TestDeleteChat_CascadesMessages(t *testing.T) {
	ctx := context.Background()
	store, db := newTestStore(t)

	doomed, err := store.CreateChat(ctx, "Doomed")
	require.NoError(t, err)
	kept, err := store.CreateChat(ctx, "Kept")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := store.AppendMessage(ctx, doomed.ID, model.SenderUser, fmt.Sprintf("m%d", i), nil)
		require.NoError(t, err)
	}
	_, err = store.AppendMessage(ctx, kept.ID, model.SenderUser, "stays", nil)
	require.NoError(t, err)

	ok, err := store.DeleteChat(ctx, doomed.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	messages, err := store.ListMessages(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, messages)

	var orphans int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM messages WHERE chat_id NOT IN (SELECT id FROM chats)").Scan(&orphans))
	assert.Zero(t, orphans)

	messages, err = store.ListMessages(ctx, kept.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	ok, err = store.DeleteChat(ctx, doomed.ID)
	require.NoError(t, err)
	assert.False(t, ok, "second delete should report no change")
}

func TestAppendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Preserves append order", func(t *testing.T) {
		store, _ := newTestStore(t)
		chat, err := store.CreateChat(ctx, "Ordered")
		require.NoError(t, err)

		var want []string
		for i := 0; i < 25; i++ {
			content := fmt.Sprintf("message %02d", i)
			sender := model.SenderUser
			if i%2 == 1 {
				sender = model.SenderAI
			}
			_, err := store.AppendMessage(ctx, chat.ID, sender, content, nil)
			require.NoError(t, err)
			want = append(want, content)
		}

		messages, err := store.ListMessages(ctx, chat.ID)
		require.NoError(t, err)
		got := make([]string, 0, len(messages))
		for _, m := range messages {
			got = append(got, m.Content)
		}
		assert.Equal(t, want, got)
	})

	t.Run("Bumps chat recency", func(t *testing.T) {
		store, _ := newTestStore(t)
		touched, err := store.CreateChat(ctx, "Touched")
		require.NoError(t, err)
		idle, err := store.CreateChat(ctx, "Idle")
		require.NoError(t, err)

		chats, err := store.ListChats(ctx)
		require.NoError(t, err)
		require.Equal(t, idle.ID, chats[0].ID)

		msg, err := store.AppendMessage(ctx, touched.ID, model.SenderUser, "hi", nil)
		require.NoError(t, err)

		chats, err = store.ListChats(ctx)
		require.NoError(t, err)
		assert.Equal(t, touched.ID, chats[0].ID)
		assert.True(t, chats[0].UpdatedAt.Equal(msg.CreatedAt))
	})

	t.Run("Font style round trips", func(t *testing.T) {
		store, _ := newTestStore(t)
		chat, err := store.CreateChat(ctx, "Styled")
		require.NoError(t, err)

		style := model.FontStyle{
			"fontFamily": `"Bungee", cursive`,
			"fontSize":   "24px",
			"color":      "#FF6B35",
			"textShadow": "3px 3px 0px #000000",
		}
		_, err = store.AppendMessage(ctx, chat.ID, model.SenderAI, "styled", style)
		require.NoError(t, err)
		_, err = store.AppendMessage(ctx, chat.ID, model.SenderUser, "plain", nil)
		require.NoError(t, err)

		messages, err := store.ListMessages(ctx, chat.ID)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, style, messages[0].FontStyle)
		assert.Nil(t, messages[1].FontStyle)
	})

	t.Run("Unknown chat is rejected", func(t *testing.T) {
		store, db := newTestStore(t)

		_, err := store.AppendMessage(ctx, "ghost", model.SenderUser, "hello?", nil)
		assert.ErrorIs(t, err, ErrNotFound)

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("Invalid sender is rejected", func(t *testing.T) {
		store, _ := newTestStore(t)
		chat, err := store.CreateChat(ctx, "x")
		require.NoError(t, err)

		_, err = store.AppendMessage(ctx, chat.ID, model.Sender("system"), "nope", nil)
		assert.Error(t, err)
	})
}

func TestAppendMessage_Concurrent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	chat, err := store.CreateChat(ctx, "Busy")
	require.NoError(t, err)

	const writers, perWriter = 8, 10
	var wg sync.WaitGroup
	errs := make(chan error, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if _, err := store.AppendMessage(ctx, chat.ID, model.SenderUser, fmt.Sprintf("%d-%d", w, i), nil); err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent append failed: %v", err)
	}

	messages, err := store.ListMessages(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, messages, writers*perWriter)
	for i := 1; i < len(messages); i++ {
		assert.True(t, messages[i].CreatedAt.After(messages[i-1].CreatedAt), "created_at must be strictly increasing")
	}

	got, err := store.GetChat(ctx, chat.ID)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.Equal(messages[len(messages)-1].CreatedAt))
}

func TestListMessages_UnknownChat(t *testing.T) {
	store, _ := newTestStore(t)

	messages, err := store.ListMessages(context.Background(), "nope")
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

// Storage failures are exercised against sqlmock since a real SQLite file is
// hard to break on demand.
func TestStorageErrors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("disk I/O error")

	setup := func(t *testing.T) (Store, sqlmock.Sqlmock) {
		db, mockDB, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		return NewSQLiteRepository(db), mockDB
	}

	t.Run("CreateChat", func(t *testing.T) {
		store, mockDB := setup(t)
		mockDB.ExpectExec(regexp.QuoteMeta("INSERT INTO chats")).WillReturnError(dbErr)

		_, err := store.CreateChat(ctx, "x")
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("AppendMessage rolls back when insert fails", func(t *testing.T) {
		store, mockDB := setup(t)
		mockDB.ExpectBegin()
		mockDB.ExpectExec(regexp.QuoteMeta("UPDATE chats SET updated_at")).
			WithArgs(sqlmock.AnyArg(), "chat-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mockDB.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).WillReturnError(dbErr)
		mockDB.ExpectRollback()

		_, err := store.AppendMessage(ctx, "chat-1", model.SenderUser, "hi", nil)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("AppendMessage serializes font style", func(t *testing.T) {
		store, mockDB := setup(t)
		mockDB.ExpectBegin()
		mockDB.ExpectExec(regexp.QuoteMeta("UPDATE chats SET updated_at")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mockDB.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
			WithArgs(sqlmock.AnyArg(), "chat-1", "ai", "hi", `{"color":"#FFF"}`, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mockDB.ExpectCommit()

		msg, err := store.AppendMessage(ctx, "chat-1", model.SenderAI, "hi", model.FontStyle{"color": "#FFF"})
		require.NoError(t, err)
		assert.Equal(t, "chat-1", msg.ChatID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("ListChats", func(t *testing.T) {
		store, mockDB := setup(t)
		mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id, name, created_at, updated_at FROM chats")).WillReturnError(dbErr)

		_, err := store.ListChats(ctx)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("ListMessages with corrupt font style", func(t *testing.T) {
		store, mockDB := setup(t)
		rows := sqlmock.NewRows([]string{"id", "chat_id", "sender", "content", "font_style", "created_at"}).
			AddRow("m1", "c1", "ai", "hi", "{not json", time.Now())
		mockDB.ExpectQuery(regexp.QuoteMeta("FROM messages")).WithArgs("c1").WillReturnRows(rows)

		_, err := store.ListMessages(ctx, "c1")
		assert.Error(t, err)
	})
}

func TestClock_StrictlyIncreasing(t *testing.T) {
	frozen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &clock{now: func() time.Time { return frozen }}

	a := c.Now()
	b := c.Now()
	assert.True(t, a.Equal(frozen))
	assert.True(t, b.After(a))
}
