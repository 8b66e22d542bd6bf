package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"sup-chat/backend/internal/api"
	"sup-chat/backend/internal/config"
	"sup-chat/backend/internal/database"
	"sup-chat/backend/internal/llm"
	"sup-chat/backend/internal/realtime"
	"sup-chat/backend/internal/repository"
	"sup-chat/backend/internal/service"
	"sup-chat/backend/internal/style"
)

const (
	shutdownTimeout = 15 * time.Second

	probeAttempts = 5
	probeInterval = 3 * time.Second
	probeTimeout  = 2 * time.Second
)

// App is the wired server: database, live channel hub and HTTP server.
type App struct {
	DB     *sql.DB
	Hub    *realtime.Hub
	Server *http.Server

	llm llm.LLMProvider
}

// NewApp opens the database, seeds settings and wires every layer.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)

	repo := repository.NewSQLiteRepository(db)
	ollamaProvider := llm.NewOllamaProvider(cfg.OllamaURL)
	settingsService := service.NewSettingsService(db, ollamaProvider, service.Settings{
		SystemPrompt: cfg.InitialSystemPrompt,
		Model:        cfg.OllamaModel,
	})

	appSettings, err := settingsService.InitAndGet(context.Background())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize application settings: %w", err)
	}
	slog.Info("Loaded application settings", "model", appSettings.Model)

	chatService := service.NewChatService(repo)
	modelService := service.NewModelService(ollamaProvider)
	exchangeService := service.NewExchangeService(repo, ollamaProvider, style.NewRandomPicker(), settingsService, cfg.GatewayTimeout)
	hub := realtime.NewHub(exchangeService)

	chatHandler := api.NewChatHandler(chatService, settingsService)
	modelHandler := api.NewModelHandler(modelService)
	socketHandler := api.NewSocketHandler(hub, cfg.AllowedOrigins)
	router := api.NewRouter(chatHandler, modelHandler, socketHandler, cfg.StaticDir)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Hub: hub, Server: server, llm: ollamaProvider}, nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down and
// closes the live sessions.
func (a *App) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("SUP Chat server running", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := a.Server.Shutdown(shutdownCtx)
		// Hijacked websocket connections are not covered by Shutdown.
		if hubErr := a.Hub.Close(shutdownCtx); hubErr != nil {
			slog.Warn("Exchange cycles still running at shutdown", "error", hubErr)
		}
		return err
	})

	g.Go(func() error {
		probeOllama(gctx, a.llm)
		return nil
	})

	return g.Wait()
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	application, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to start application", "error", err)
		return 1
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Serve(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		return 1
	}
	slog.Info("Server stopped.")
	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// probeOllama checks that Ollama answers. The server keeps running either way:
// replies fall back to the error text until the model is reachable.
func probeOllama(ctx context.Context, provider llm.LLMProvider) bool {
	for attempt := 1; attempt <= probeAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := provider.Ping(pingCtx)
		cancel()
		if err == nil {
			slog.Info("Ollama is ready.")
			return true
		}
		slog.Debug("Ollama not ready yet", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(probeInterval):
		}
	}
	slog.Warn("Ollama is not reachable. Replies will use the fallback message until it is.")
	return false
}
