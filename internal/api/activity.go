package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sridevi2108/Auracare/internal/errors"
	"github.com/Sridevi2108/Auracare/internal/models"
)

type activityLogRequest struct {
	Email    string `json:"email"`
	Activity string `json:"activity"`
	Duration int    `json:"duration"` // seconds
}

func (h *Handlers) logActivity(c *gin.Context) {
	var req activityLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}
	if req.Email == "" || req.Activity == "" || req.Duration <= 0 {
		apperrors.HandleError(c, apperrors.New400Error("Missing fields"))
		return
	}

	err := h.Activities.SaveActivityToDB(models.ActivityLog{
		Email:    req.Email,
		Activity: req.Activity,
		Duration: req.Duration,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Activity logged"})
}

func (h *Handlers) getActivitySummary(c *gin.Context) {
	summary, err := h.Activities.GetActivitySummaryFromDB(c.Param("email"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "activities": summary})
}
