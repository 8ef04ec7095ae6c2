package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Sridevi2108/Auracare/cmd/api/config"
	"github.com/Sridevi2108/Auracare/internal/api"
	"github.com/Sridevi2108/Auracare/internal/auth"
	"github.com/Sridevi2108/Auracare/internal/broker"
	"github.com/Sridevi2108/Auracare/internal/chatstate"
	"github.com/Sridevi2108/Auracare/internal/database"
	"github.com/Sridevi2108/Auracare/internal/sentiment"
	"github.com/Sridevi2108/Auracare/internal/services"
	"github.com/Sridevi2108/Auracare/internal/wsocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.NewConfig()

	database.InitDB()

	analyzer := sentiment.NewAnalyzer()
	bands := sentiment.DefaultBands()

	// Internal services
	chatStore := services.NewChatStoreDB(database.DB)
	moodStore := services.NewMoodStoreDB(database.DB, bands)
	activityStore := services.NewActivityStoreDB(database.DB)
	userService := services.NewUserService(database.DB)
	quizService := services.NewQuizService(database.DB)
	musicService := services.NewMusicService(database.DB)

	responder := services.NewWebhookResponder(cfg.ResponderURL, cfg.ResponderTimeout)
	tokenIssuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	messageBroker := broker.NewBroker()
	chatTurns := services.NewChatTurnService(chatStore, moodStore, responder, messageBroker, analyzer, bands)

	// The chat state manager talks to the local database by default, or to a
	// remote session store when SESSION_STORE_URL is set.
	var sessionStore chatstate.SessionStore
	var moodRecorder chatstate.MoodRecorder
	if cfg.SessionStoreURL != "" {
		remote := services.NewRESTSessionStore(cfg.SessionStoreURL, cfg.SessionStoreTimeout)
		sessionStore = remote
		moodRecorder = remote
	} else {
		sessionStore = services.NewDBSessionStore(chatStore)
		moodRecorder = services.NewDBMoodRecorder(moodStore)
	}
	stateStore := services.NewDBStateStore(database.DB)

	newManager := func() *chatstate.Manager {
		return chatstate.NewManager(chatstate.Config{
			Store:     sessionStore,
			Moods:     moodRecorder,
			Responder: responder,
			State:     stateStore,
			Analyzer:  analyzer,
			Bands:     bands,
		})
	}

	r := gin.Default()

	// CORS middleware configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// WebSocket upgrader
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true // TODO: Implement a more secure check in production
		},
	}

	wsHandler := wsocket.NewHandler(newManager, messageBroker, upgrader)

	api.SetupRoutes(r, &api.Handlers{
		Users:      userService,
		ChatStore:  chatStore,
		MoodStore:  moodStore,
		Activities: activityStore,
		Quiz:       quizService,
		Music:      musicService,
		ChatTurns:  chatTurns,
		Tokens:     tokenIssuer,
	})

	r.GET("/ws", func(c *gin.Context) {
		wsHandler.HandleWebSocket(c.Writer, c.Request)
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
