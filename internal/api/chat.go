package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sridevi2108/Auracare/internal/errors"
	"github.com/Sridevi2108/Auracare/internal/services"
)

type chatRequest struct {
	Email      string `json:"email"`
	SessionID  string `json:"session_id"`
	SessionID2 string `json:"sessionId"`
	Message    string `json:"message"`
}

// chatTurn proxies one user turn to the conversational responder, persisting
// the transcript and mood sample along the way. Used by the embedded widget,
// which keeps no transcript state of its own.
func (h *Handlers) chatTurn(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = req.SessionID2
	}

	replies, err := h.ChatTurns.RunTurn(c.Request.Context(), req.Email, sessionID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			apperrors.HandleError(c, apperrors.New400Error("Message text is required"))
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": replies})
}
