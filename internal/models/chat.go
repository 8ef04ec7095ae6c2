package models

import (
	"time"

	"gorm.io/gorm"
)

// ChatSession is tracked lazily: a row appears the first time a message is
// logged against the client-generated session id.
type ChatSession struct {
	gorm.Model
	SessionID string    `gorm:"index;unique" json:"id"`
	Email     string    `gorm:"index" json:"email"`
	StartedAt time.Time `json:"created_at"`
}

// ChatMessage is one transcript entry. Buttons and Annotations carry the
// responder's side channels as raw JSON, mirroring the webhook payload.
type ChatMessage struct {
	gorm.Model
	MessageID   string    `gorm:"index;unique" json:"_id"`
	SessionID   string    `gorm:"index" json:"session_id"`
	Email       string    `gorm:"index" json:"email"`
	Sender      string    `json:"sender"` // "user" or "bot"
	Content     string    `json:"message"`
	Buttons     []byte    `json:"-"` // JSON-encoded []chatstate.Button
	Annotations []byte    `json:"-"` // JSON-encoded chatstate.Annotations
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
}
