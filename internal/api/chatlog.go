package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/Sridevi2108/Auracare/internal/errors"
	"github.com/Sridevi2108/Auracare/internal/models"
)

// logMessageRequest accepts both snake_case and camelCase field spellings,
// the way older clients sent them.
type logMessageRequest struct {
	Email      string `json:"email"`
	UserEmail  string `json:"userEmail"`
	Sender     string `json:"sender"`
	Message    string `json:"message"`
	SessionID  string `json:"session_id"`
	SessionID2 string `json:"sessionId"`
	Timestamp  string `json:"timestamp"`
}

func (r *logMessageRequest) email() string {
	if r.Email != "" {
		return r.Email
	}
	return r.UserEmail
}

func (r *logMessageRequest) sessionID() string {
	if r.SessionID != "" {
		return r.SessionID
	}
	return r.SessionID2
}

func (h *Handlers) logMessage(c *gin.Context) {
	var req logMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}
	if req.email() == "" || req.Sender == "" || req.Message == "" || req.sessionID() == "" {
		apperrors.HandleError(c, apperrors.New400Error("Missing required fields"))
		return
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != "" {
		if parsed, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
			timestamp = parsed
		}
	}

	err := h.ChatStore.SaveMessageToDB(models.ChatMessage{
		MessageID: uuid.NewString(),
		SessionID: req.sessionID(),
		Email:     req.email(),
		Sender:    req.Sender,
		Content:   req.Message,
		Timestamp: timestamp,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message logged"})
}

type sessionMessagesRequest struct {
	Email      string `json:"email"`
	UserEmail  string `json:"userEmail"`
	SessionID  string `json:"session_id"`
	SessionID2 string `json:"sessionId"`
}

func (h *Handlers) getSessionMessages(c *gin.Context) {
	var req sessionMessagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}
	email := req.Email
	if email == "" {
		email = req.UserEmail
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = req.SessionID2
	}
	if email == "" || sessionID == "" {
		apperrors.HandleError(c, apperrors.New400Error("Missing email or session_id"))
		return
	}

	messages, err := h.ChatStore.GetMessagesBySessionFromDB(email, sessionID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messageViews(messages)})
}

func (h *Handlers) getUserSessions(c *gin.Context) {
	email := c.Param("email")

	sessions, err := h.ChatStore.GetSessionsByEmailFromDB(email)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	views := make([]gin.H, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, gin.H{
			"id":         s.SessionID,
			"created_at": s.StartedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sessions": views})
}

type messageHistoryRequest struct {
	Email string `json:"email"`
	Date  string `json:"date"` // YYYY-MM-DD
}

func (h *Handlers) getMessageHistory(c *gin.Context) {
	var req messageHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}
	if req.Email == "" || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing email or date"})
		return
	}

	dayStart, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date format"})
		return
	}

	messages, err := h.ChatStore.GetMessagesByDateFromDB(req.Email, dayStart)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messageViews(messages)})
}

func messageViews(messages []models.ChatMessage) []gin.H {
	views := make([]gin.H, 0, len(messages))
	for _, m := range messages {
		views = append(views, gin.H{
			"_id":        m.MessageID,
			"sender":     m.Sender,
			"message":    m.Content,
			"session_id": m.SessionID,
			"timestamp":  m.Timestamp.Format(time.RFC3339),
		})
	}
	return views
}
