package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sridevi2108/Auracare/internal/errors"
	"github.com/Sridevi2108/Auracare/internal/models"
)

type moodLogRequest struct {
	SessionID   string   `json:"session_id"`
	SessionID2  string   `json:"sessionId"`
	Email       string   `json:"email"`
	UserEmail   string   `json:"userEmail"`
	Mood        *int     `json:"mood"`
	Emotion     string   `json:"emotion"`
	EnergyLevel *int     `json:"energyLevel"`
	SleepHours  *float64 `json:"sleepHours"`
	Source      string   `json:"source"`
	Timestamp   string   `json:"timestamp"`
}

func (h *Handlers) logMood(c *gin.Context) {
	var req moodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = req.SessionID2
	}
	email := req.Email
	if email == "" {
		email = req.UserEmail
	}
	if sessionID == "" || email == "" || req.Mood == nil {
		apperrors.HandleError(c, apperrors.New400Error("Missing session_id, email, or mood"))
		return
	}
	if *req.Mood < 0 || *req.Mood > 10 {
		apperrors.HandleError(c, apperrors.New400Error("Mood must be between 0 and 10"))
		return
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != "" {
		if parsed, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
			timestamp = parsed
		}
	}

	if err := h.ChatStore.EnsureSession(sessionID, email, timestamp); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	err := h.MoodStore.SaveMoodToDB(models.MoodLog{
		SessionID:   sessionID,
		Email:       email,
		Mood:        *req.Mood,
		Emotion:     req.Emotion,
		EnergyLevel: req.EnergyLevel,
		SleepHours:  req.SleepHours,
		Source:      req.Source,
		Timestamp:   timestamp,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Mood logged with emotion"})
}

func (h *Handlers) getMoodsBySession(c *gin.Context) {
	logs, err := h.MoodStore.GetMoodsBySessionFromDB(c.Param("session_id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"moods": logs})
}

func (h *Handlers) getMoodsByEmail(c *gin.Context) {
	logs, err := h.MoodStore.GetMoodsByEmailFromDB(c.Param("email"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"moods": logs})
}
