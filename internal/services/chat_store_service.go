package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sridevi2108/Auracare/internal/models"
)

// DefaultChatStore implements ChatStoreDB on Postgres.
type DefaultChatStore struct {
	db *gorm.DB
}

func NewChatStoreDB(db *gorm.DB) ChatStoreDB {
	return &DefaultChatStore{db: db}
}

// EnsureSession upserts the session row so sessions appear lazily, the first
// time a message is logged against the client-generated id.
func (s *DefaultChatStore) EnsureSession(sessionID, email string, startedAt time.Time) error {
	session := models.ChatSession{
		SessionID: sessionID,
		Email:     email,
		StartedAt: startedAt,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoNothing: true,
	}).Create(&session).Error
}

// SaveMessageToDB appends one message, tracking its session along the way.
func (s *DefaultChatStore) SaveMessageToDB(msg models.ChatMessage) error {
	if err := s.EnsureSession(msg.SessionID, msg.Email, msg.Timestamp); err != nil {
		return err
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	return s.db.Create(&msg).Error
}

func (s *DefaultChatStore) GetMessagesBySessionFromDB(email, sessionID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	result := s.db.Where("email = ? AND session_id = ?", email, sessionID).
		Order("timestamp asc").
		Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}
	return messages, nil
}

func (s *DefaultChatStore) GetSessionsByEmailFromDB(email string) ([]models.ChatSession, error) {
	var sessions []models.ChatSession
	result := s.db.Where("email = ?", email).Order("started_at asc").Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}
	return sessions, nil
}

// GetMessagesByDateFromDB returns the user's messages inside the one-day
// window starting at dayStart.
func (s *DefaultChatStore) GetMessagesByDateFromDB(email string, dayStart time.Time) ([]models.ChatMessage, error) {
	dayEnd := dayStart.Add(24 * time.Hour)
	var messages []models.ChatMessage
	result := s.db.Where("email = ? AND timestamp >= ? AND timestamp < ?", email, dayStart, dayEnd).
		Order("timestamp asc").
		Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}
	return messages, nil
}
