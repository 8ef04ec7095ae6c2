package models

import (
	"time"

	"gorm.io/gorm"
)

// ActivityLog records time spent in a wellness activity (game, music, quiz).
// Duration is in seconds; summaries convert to minutes.
type ActivityLog struct {
	gorm.Model
	Email     string    `gorm:"index" json:"email"`
	Activity  string    `gorm:"index" json:"activity"`
	Duration  int       `json:"duration"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}
