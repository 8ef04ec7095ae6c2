package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sridevi2108/Auracare/internal/errors"
	"github.com/Sridevi2108/Auracare/internal/services"
)

type quizRequest struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
}

func (h *Handlers) listQuiz(c *gin.Context) {
	questions, err := h.Quiz.List()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "questions": questions})
}

func (h *Handlers) createQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}
	if req.Question == "" {
		apperrors.HandleError(c, apperrors.New400Error("Question is required"))
		return
	}

	view, err := h.Quiz.Create(req.Question, req.Options, req.Answer, req.Category, req.Difficulty)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": view.ID})
}

func (h *Handlers) updateQuiz(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid id"))
		return
	}

	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}

	if err := h.Quiz.Update(uint(id), req.Question, req.Options, req.Answer, req.Category, req.Difficulty); err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			apperrors.HandleError(c, apperrors.New404Error("Quiz question not found"))
			return
		}
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handlers) deleteQuiz(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid id"))
		return
	}

	if err := h.Quiz.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false})
			return
		}
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
