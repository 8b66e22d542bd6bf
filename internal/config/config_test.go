package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no .env file is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.AppPort)
	assert.Equal(t, "./data/sup_chat.db", cfg.DatabasePath)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaURL)
	assert.Equal(t, "gemma3:4b", cfg.OllamaModel)
	assert.Equal(t, DefaultSystemPrompt, cfg.InitialSystemPrompt)
	assert.Equal(t, 120*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "./public", cfg.StaticDir)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadConfig_Environment(t *testing.T) {
	inTempDir(t)
	t.Setenv("APP_PORT", "8080")
	t.Setenv("OLLAMA_MODEL", "llama3:8b")
	t.Setenv("GATEWAY_TIMEOUT", "30s")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://sup.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.AppPort)
	assert.Equal(t, "llama3:8b", cfg.OllamaModel)
	assert.Equal(t, 30*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://sup.example"}, cfg.AllowedOrigins)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := inTempDir(t)
	content := "DATABASE_PATH=/tmp/chat.db\nLOG_LEVEL=DEBUG\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/chat.db", cfg.DatabasePath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.NotEmpty(t, viper.ConfigFileUsed())
}

func TestSplitOrigins(t *testing.T) {
	assert.Nil(t, splitOrigins(nil))
	assert.Equal(t, []string{"a", "b"}, splitOrigins([]string{" a ,", "b"}))
}
