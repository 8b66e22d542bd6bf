package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

	app_errors "sup-chat/backend/internal/errors"
	"sup-chat/backend/internal/llm"
)

const (
	keySystemPrompt = "system_prompt"
	keyModel        = "model"
)

// Settings holds the runtime generation settings stored in the settings table.
type Settings struct {
	SystemPrompt string `json:"system_prompt" validate:"required,max=4000"`
	Model        string `json:"model" validate:"required,max=200"`
}

type SettingsService struct {
	db       *sql.DB
	llm      llm.LLMProvider
	defaults Settings
}

// NewSettingsService returns a service whose missing values fall back to defaults.
func NewSettingsService(db *sql.DB, llmProvider llm.LLMProvider, defaults Settings) *SettingsService {
	return &SettingsService{db: db, llm: llmProvider, defaults: defaults}
}

// InitAndGet loads the settings and persists any values taken from the
// defaults, so the table is fully populated after the first start.
func (s *SettingsService) InitAndGet(ctx context.Context) (*Settings, error) {
	settings, missing, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if missing {
		slog.Info("Seeding settings with defaults", "model", settings.Model)
		if err := s.saveToDB(ctx, settings); err != nil {
			return nil, fmt.Errorf("failed to save initial settings: %w", err)
		}
	}
	return settings, nil
}

// Get retrieves the current settings. Missing keys take their default value.
func (s *SettingsService) Get(ctx context.Context) (*Settings, error) {
	settings, _, err := s.load(ctx)
	return settings, err
}

// Save validates the model against the local Ollama instance and stores the settings.
func (s *SettingsService) Save(ctx context.Context, settings *Settings) error {
	available, err := s.llm.ListModels(ctx)
	if err != nil {
		slog.Warn("Could not list models for validation, saving settings without check", "error", err)
	} else {
		names := make([]string, len(available.Models))
		for i, m := range available.Models {
			names[i] = m.Name
		}
		if !slices.Contains(names, settings.Model) {
			return fmt.Errorf("%w: model '%s' not found in Ollama", app_errors.ErrValidation, settings.Model)
		}
	}

	if err := s.saveToDB(ctx, settings); err != nil {
		return err
	}
	slog.Info("Settings updated", "model", settings.Model)
	return nil
}

func (s *SettingsService) load(ctx context.Context) (*Settings, bool, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, false, fmt.Errorf("failed to read settings: %w", err)
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, false, fmt.Errorf("failed to scan setting: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := &Settings{SystemPrompt: values[keySystemPrompt], Model: values[keyModel]}
	missing := false
	if settings.SystemPrompt == "" {
		settings.SystemPrompt = s.defaults.SystemPrompt
		missing = true
	}
	if settings.Model == "" {
		settings.Model = s.defaults.Model
		missing = true
	}
	return settings, missing, nil
}

func (s *SettingsService) saveToDB(ctx context.Context, settings *Settings) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	if err != nil {
		return fmt.Errorf("could not prepare settings statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, kv := range [][2]string{
		{keyModel, settings.Model},
		{keySystemPrompt, settings.SystemPrompt},
	} {
		if _, err := stmt.ExecContext(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("could not save setting %s: %w", kv[0], err)
		}
	}
	return tx.Commit()
}
