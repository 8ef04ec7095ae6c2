package models

import (
	"time"

	"gorm.io/gorm"
)

type MoodLog struct {
	gorm.Model
	SessionID   string    `gorm:"index" json:"session_id"`
	Email       string    `gorm:"index" json:"email"`
	Mood        int       `json:"mood"` // 0..10
	Emotion     string    `json:"emotion"`
	EnergyLevel *int      `json:"energyLevel,omitempty"`
	SleepHours  *float64  `json:"sleepHours,omitempty"`
	Source      string    `gorm:"default:chat" json:"source"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
}
