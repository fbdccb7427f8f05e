// Health assistant chat HTTP handlers.
//
//   - GET  /chat           (active session and transcript)
//   - POST /chat/messages  (send one message, get the assistant's reply)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthloop/go-health-backend/internal/domain"
	"github.com/healthloop/go-health-backend/internal/services"
)

// ChatMessageRequest is the JSON payload for one chat turn.
type ChatMessageRequest struct {
	// Message is the user's utterance (required).
	Message string `json:"message" binding:"required" example:"Is it normal to feel dizzy after standing up quickly?"`
}

// ChatTranscriptResponse wraps the active session and its messages.
type ChatTranscriptResponse struct {
	Session  *domain.ChatSession  `json:"session"`
	Messages []domain.ChatMessage `json:"messages"`
}

// GetChat godoc
// @ID          getChat
// @Summary     Active chat session
// @Description Returns the user's current session and transcript, creating the session on first visit.
// @Tags        Chat
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object}  handlers.ChatTranscriptResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /chat [get]
func (h *Handlers) GetChat(c *gin.Context) {
	sess, msgs, err := h.chatSvc.ActiveSession(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeChatFailed, err.Error())
		return
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	ok(c, http.StatusOK, ChatTranscriptResponse{Session: sess, Messages: msgs})
}

// SendChatMessage godoc
// @ID          sendChatMessage
// @Summary     Send a chat message
// @Description Submits one message to the health assistant and returns the reply. When the assistant is unreachable the reply is a fallback apology and is not persisted.
// @Tags        Chat
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.ChatMessageRequest  true  "Message payload"
//
// @Success     201  {object}  domain.ChatMessage
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /chat/messages [post]
func (h *Handlers) SendChatMessage(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	m, err := h.chatSvc.Send(c.Request.Context(), userID(c), req.Message)
	switch {
	case errors.Is(err, services.ErrEmptyMessage), errors.Is(err, services.ErrTooLong):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeChatFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, m)
}
