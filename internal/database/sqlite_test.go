package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_InMemory(t *testing.T) {
	db, err := InitDB(MemoryPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()

	for _, table := range []string{"chats", "messages", "settings"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}

	var fk int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys must be enforced so messages cascade with their chat")
}

func TestInitDB_FileIsReopenable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "chat.db")

	db, err := InitDB(path)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO chats (id, name, created_at, updated_at) VALUES ('c1', 'kept', datetime('now'), datetime('now'))")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Second open must find the schema already at the latest version.
	db, err = InitDB(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()

	var name string
	require.NoError(t, db.QueryRow("SELECT name FROM chats WHERE id = 'c1'").Scan(&name))
	assert.Equal(t, "kept", name)
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_foreign_keys=on&_busy_timeout=5000", dsn(MemoryPath))
	assert.Equal(t, "file:/tmp/x.db?_foreign_keys=on&_busy_timeout=5000", dsn("/tmp/x.db"))
}
