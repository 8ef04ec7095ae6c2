package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Sridevi2108/Auracare/internal/auth"
	"github.com/Sridevi2108/Auracare/internal/services"
)

// Handlers bundles the services the route handlers close over.
type Handlers struct {
	Users      *services.UserService
	ChatStore  services.ChatStoreDB
	MoodStore  services.MoodStoreDB
	Activities services.ActivityStoreDB
	Quiz       *services.QuizService
	Music      *services.MusicService
	ChatTurns  *services.ChatTurnService
	Tokens     *auth.TokenIssuer
}

func SetupRoutes(r *gin.Engine, h *Handlers) {
	// Auth + profile keep the original unversioned paths.
	r.GET("/profile/:email", h.getProfile)
	r.POST("/update-profile", h.updateProfile)

	api := r.Group("/api")
	{
		api.POST("/signup", h.signup)
		api.POST("/login", h.login)

		api.POST("/log-message", h.logMessage)
		api.POST("/session-messages", h.getSessionMessages)
		api.GET("/sessions/:email", h.getUserSessions)
		api.GET("/user-sessions/:email", h.getUserSessions)
		api.POST("/message-history", h.getMessageHistory)

		api.POST("/mood-log", h.logMood)
		api.GET("/mood-logs/session/:session_id", h.getMoodsBySession)
		api.GET("/mood-logs/email/:email", h.getMoodsByEmail)

		api.POST("/activity-log", h.logActivity)
		api.GET("/activity-summary/:email", h.getActivitySummary)

		api.POST("/chat", h.chatTurn)

		api.GET("/quiz", h.listQuiz)
		api.GET("/music", h.listMusic)

		admin := api.Group("", auth.Middleware(h.Tokens, h.Users), auth.AdminOnly())
		{
			admin.GET("/users", h.listUsers)
			admin.POST("/quiz", h.createQuiz)
			admin.PUT("/quiz/:id", h.updateQuiz)
			admin.DELETE("/quiz/:id", h.deleteQuiz)
			admin.POST("/music", h.createMusic)
			admin.PUT("/music/:id", h.updateMusic)
			admin.DELETE("/music/:id", h.deleteMusic)
		}
	}
}
