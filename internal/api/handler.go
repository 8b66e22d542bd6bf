package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sup-chat/backend/internal/interfaces"
	"sup-chat/backend/internal/service"
)

// ChatHandler serves the chat and settings REST endpoints.
type ChatHandler struct {
	chats    interfaces.ChatService
	settings interfaces.SettingsService
}

func NewChatHandler(chats interfaces.ChatService, settings interfaces.SettingsService) *ChatHandler {
	return &ChatHandler{chats: chats, settings: settings}
}

// GetChats godoc
// @Summary      List chats
// @Description  Returns all chats, most recently active first.
// @Tags         Chats
// @Produce      json
// @Success      200  {array}   model.Chat
// @Failure      500  {object}  ErrorResponse
// @Router       /chats [get]
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.chats.ListChats(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chats)
}

// CreateChat godoc
// @Summary      Create a chat
// @Description  Creates an empty chat. The body is optional; a blank name becomes "New Chat".
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        request  body      CreateChatRequest  false  "Chat name"
// @Success      201      {object}  model.Chat
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /chats [post]
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, invalidPayload(err))
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	chat, err := h.chats.CreateChat(r.Context(), req.Name)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, chat)
}

// GetChat godoc
// @Summary      Get a chat
// @Description  Returns a single chat without its messages.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  model.Chat
// @Failure      404     {object}  ErrorResponse
// @Router       /chats/{chatID} [get]
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	chat, err := h.chats.GetChat(r.Context(), chi.URLParam(r, "chatID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chat)
}

// RenameChat godoc
// @Summary      Rename a chat
// @Description  Sets a chat's name. Renaming an unknown chat succeeds with changed=false.
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chatID   path      string             true  "Chat ID"
// @Param        request  body      RenameChatRequest  true  "New name"
// @Success      200      {object}  ChangeResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /chats/{chatID} [put]
func (h *ChatHandler) RenameChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	var req RenameChatRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	changed, err := h.chats.RenameChat(r.Context(), chatID, req.Name)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ChangeResponse{Success: true, Changed: changed})
}

// DeleteChat godoc
// @Summary      Delete a chat
// @Description  Deletes a chat and all of its messages.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  ChangeResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /chats/{chatID} [delete]
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	changed, err := h.chats.DeleteChat(r.Context(), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if changed {
		slog.Info("Chat deleted", "chat_id", chatID)
	}
	respondWithJSON(w, http.StatusOK, ChangeResponse{Success: true, Changed: changed})
}

// GetMessages godoc
// @Summary      List messages
// @Description  Returns a chat's messages in chronological order. Unknown chats have no messages.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {array}   model.Message
// @Failure      500     {object}  ErrorResponse
// @Router       /chats/{chatID}/messages [get]
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chats.ListMessages(r.Context(), chi.URLParam(r, "chatID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

// GetSettings godoc
// @Summary      Get settings
// @Description  Returns the model and system prompt used for replies.
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.Settings
// @Failure      500  {object}  ErrorResponse
// @Router       /settings [get]
func (h *ChatHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Update settings
// @Description  Saves the model and system prompt. The model must be installed in Ollama.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        settings  body      service.Settings  true  "New settings"
// @Success      200       {object}  StatusResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /settings [post]
func (h *ChatHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings service.Settings
	if err := decodeJSON(r, &settings); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(settings); err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.settings.Save(r.Context(), &settings); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
