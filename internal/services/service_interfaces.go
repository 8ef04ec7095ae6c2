package services

import (
	"context"
	"time"

	"github.com/Sridevi2108/Auracare/internal/chatstate"
	"github.com/Sridevi2108/Auracare/internal/models"
)

// ChatStoreDB defines the interface for durable chat persistence.
type ChatStoreDB interface {
	EnsureSession(sessionID, email string, startedAt time.Time) error
	SaveMessageToDB(msg models.ChatMessage) error
	GetMessagesBySessionFromDB(email, sessionID string) ([]models.ChatMessage, error)
	GetSessionsByEmailFromDB(email string) ([]models.ChatSession, error)
	GetMessagesByDateFromDB(email string, dayStart time.Time) ([]models.ChatMessage, error)
}

// MoodStoreDB defines the interface for mood log persistence.
type MoodStoreDB interface {
	SaveMoodToDB(entry models.MoodLog) error
	GetMoodsBySessionFromDB(sessionID string) ([]models.MoodLog, error)
	GetMoodsByEmailFromDB(email string) ([]models.MoodLog, error)
}

// ActivityStoreDB defines the interface for activity log persistence.
type ActivityStoreDB interface {
	SaveActivityToDB(entry models.ActivityLog) error
	GetActivitySummaryFromDB(email string) ([]ActivitySummary, error)
}

// Publisher pushes chat events to live subscribers (websocket feeds).
type Publisher interface {
	Publish(topic string, msg chatstate.Message)
}

// Responder re-exports the collaborator contract for mocks and wiring.
type Responder interface {
	Exchange(ctx context.Context, sessionID, text string) ([]chatstate.Reply, error)
}
