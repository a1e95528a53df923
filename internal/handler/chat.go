package handler

import (
	"net/http"

	"github.com/osse101/IdleRealms_Go/internal/chat"
)

type SendChatRequest struct {
	UserID  int    `json:"user_id" validate:"required,min=1,max=2147483647"`
	Message string `json:"message" validate:"required,max=500"`
}

// HandleSendChat posts a global chat message
// @Summary Send chat message
// @Tags chat
// @Accept json
// @Produce json
// @Param request body SendChatRequest true "Message"
// @Success 201 {object} domain.ChatMessage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /chat [post]
func HandleSendChat(svc chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendChatRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Send chat"); err != nil {
			return
		}
		msg, err := svc.Send(r.Context(), req.UserID, req.Message)
		if err != nil {
			respondServiceError(w, r, "Send chat", err)
			return
		}
		respondJSON(w, http.StatusCreated, msg)
	}
}

// HandleListChat returns the latest messages, newest first
// @Summary Latest chat messages
// @Tags chat
// @Produce json
// @Param limit query int false "Max messages (default 50)"
// @Success 200 {array} domain.ChatMessage
// @Router /chat [get]
func HandleListChat(svc chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryInt(w, r, "limit", chat.DefaultListLimit)
		if !ok {
			return
		}
		msgs, err := svc.List(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "List chat", err)
			return
		}
		respondJSON(w, http.StatusOK, msgs)
	}
}
