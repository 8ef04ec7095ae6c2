package models

import (
	"time"

	"gorm.io/gorm"
)

// ChatStateSnapshot is the durable mirror of a user's chat client state:
// the active session pointer and the last rendered transcript.
type ChatStateSnapshot struct {
	gorm.Model
	Email      string    `gorm:"index;unique" json:"email"`
	SessionID  string    `json:"session_id"`
	StartedAt  time.Time `json:"created_at"`
	Transcript []byte    `json:"-"` // JSON-encoded []chatstate.Message
}
