package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sridevi2108/Auracare/internal/errors"
	"github.com/Sridevi2108/Auracare/internal/services"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

func (h *Handlers) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		apperrors.HandleError(c, apperrors.New400Error("Missing required fields"))
		return
	}

	user, err := h.Users.Register(req.Name, req.Email, req.Password, req.Avatar)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			apperrors.HandleError(c, apperrors.New409Error("Email already exists"))
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		apperrors.HandleError(c, apperrors.New400Error("Missing email or password"))
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apperrors.HandleError(c, apperrors.New401Error("Invalid email or password"))
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	token, err := h.Tokens.Generate(user)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

func (h *Handlers) getProfile(c *gin.Context) {
	email := c.Param("email")

	user, err := h.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

type updateProfileRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

func (h *Handlers) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid JSON body"))
		return
	}
	if req.Email == "" {
		apperrors.HandleError(c, apperrors.New400Error("Email is required"))
		return
	}

	user, err := h.Users.UpdateProfile(req.Email, req.Name, req.DOB, req.Location, req.Bio)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully", "data": user})
}

func (h *Handlers) listUsers(c *gin.Context) {
	users, err := h.Users.ListUsers()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}
