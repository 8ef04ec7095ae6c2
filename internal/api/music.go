package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sridevi2108/Auracare/internal/errors"
	"github.com/Sridevi2108/Auracare/internal/models"
	"github.com/Sridevi2108/Auracare/internal/services"
)

type musicRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}

func (r musicRequest) toModel() models.MusicTrack {
	return models.MusicTrack{
		Title:       r.Title,
		Description: r.Description,
		Duration:    r.Duration,
		URL:         r.URL,
		Category:    r.Category,
	}
}

func (h *Handlers) listMusic(c *gin.Context) {
	tracks, err := h.Music.List()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "music": tracks})
}

func (h *Handlers) createMusic(c *gin.Context) {
	var req musicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}
	if req.Title == "" || req.URL == "" {
		apperrors.HandleError(c, apperrors.New400Error("Title and url are required"))
		return
	}

	track, err := h.Music.Create(req.toModel())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "music": track})
}

func (h *Handlers) updateMusic(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid id"))
		return
	}

	var req musicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}

	if err := h.Music.Update(uint(id), req.toModel()); err != nil {
		if errors.Is(err, services.ErrTrackNotFound) {
			apperrors.HandleError(c, apperrors.New404Error("Not found"))
			return
		}
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handlers) deleteMusic(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid id"))
		return
	}

	if err := h.Music.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrTrackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found"})
			return
		}
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
