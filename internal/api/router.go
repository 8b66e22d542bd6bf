package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "sup-chat/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const requestTimeout = 60 * time.Second

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(chatHandler *ChatHandler, modelHandler *ModelHandler, socketHandler *SocketHandler, staticDir string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", socketHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// The live channel holds its connection open, so it stays outside the timeout group.
	r.Get("/socket", socketHandler.ServeWS)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))

		r.Get("/swagger/*", httpSwagger.WrapHandler)

		r.Get("/settings", chatHandler.GetSettings)
		r.Post("/settings", chatHandler.UpdateSettings)

		r.Get("/chats", chatHandler.GetChats)
		r.Post("/chats", chatHandler.CreateChat)
		r.Get("/chats/{chatID}", chatHandler.GetChat)
		r.Put("/chats/{chatID}", chatHandler.RenameChat)
		r.Delete("/chats/{chatID}", chatHandler.DeleteChat)
		r.Get("/chats/{chatID}/messages", chatHandler.GetMessages)

		r.Get("/models", modelHandler.HandleListModels)
	})

	fileServer := http.FileServer(http.Dir(staticDir))
	r.Handle("/*", fileServer)

	return r
}
