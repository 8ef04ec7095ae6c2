package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/Sridevi2108/Auracare/internal/models"
	"github.com/Sridevi2108/Auracare/internal/sentiment"
)

// DefaultMoodStore implements MoodStoreDB on Postgres.
type DefaultMoodStore struct {
	db    *gorm.DB
	bands sentiment.Bands
}

func NewMoodStoreDB(db *gorm.DB, bands sentiment.Bands) MoodStoreDB {
	return &DefaultMoodStore{db: db, bands: bands}
}

// SaveMoodToDB persists one sample, banding the emotion server-side when the
// caller did not supply one.
func (s *DefaultMoodStore) SaveMoodToDB(entry models.MoodLog) error {
	if entry.Emotion == "" {
		entry.Emotion = s.bands.Emotion(entry.Mood)
	}
	if entry.Source == "" {
		entry.Source = "chat"
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	return s.db.Create(&entry).Error
}

func (s *DefaultMoodStore) GetMoodsBySessionFromDB(sessionID string) ([]models.MoodLog, error) {
	var logs []models.MoodLog
	result := s.db.Where("session_id = ?", sessionID).Order("timestamp asc").Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}

func (s *DefaultMoodStore) GetMoodsByEmailFromDB(email string) ([]models.MoodLog, error) {
	var logs []models.MoodLog
	result := s.db.Where("email = ?", email).Order("timestamp asc").Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}
