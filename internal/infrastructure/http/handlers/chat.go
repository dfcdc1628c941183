package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/ports/inbound"
)

// ChatHandlers handles assistant conversation requests
type ChatHandlers struct {
	chat   inbound.ChatService
	logger *zap.Logger
}

// NewChatHandlers creates a new chat handlers instance
func NewChatHandlers(chat inbound.ChatService, logger *zap.Logger) *ChatHandlers {
	return &ChatHandlers{chat: chat, logger: logger}
}

// List handles GET /api/v1/chat/conversations
func (h *ChatHandlers) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.chat.ListConversations(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Get handles GET /api/v1/chat/conversations/{id}
func (h *ChatHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.chat.GetConversation(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Rename handles PUT /api/v1/chat/conversations/{id}/title
func (h *ChatHandlers) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var body struct {
		Title string `json:"title"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.chat.RenameConversation(r.Context(), id, body.Title); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusNoContent, nil)
}

// TogglePin handles POST /api/v1/chat/conversations/{id}/pin
func (h *ChatHandlers) TogglePin(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	pinned, err := h.chat.TogglePin(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]bool{"pinned": pinned})
}

// Delete handles DELETE /api/v1/chat/conversations/{id}
func (h *ChatHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.chat.DeleteConversation(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusNoContent, nil)
}

// SendMessage handles POST /api/v1/chat/messages. The assistant reply
// is delivered over the websocket stream once its thinking delay has
// elapsed.
func (h *ChatHandlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.SendMessageCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.chat.SendMessage(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusAccepted, result)
}
