package chatstate

import (
	"context"
	"time"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Button is a suggested action attached to a bot message, e.g.
// {"🎮 Play a Game", "/trigger_game"}.
type Button struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// Annotations carries the responder's side-channel signals.
type Annotations struct {
	NavigateTo  string   `json:"navigate_to,omitempty"`
	Mood        *int     `json:"mood,omitempty"`
	Emotion     string   `json:"emotion,omitempty"`
	EnergyLevel *int     `json:"energyLevel,omitempty"`
	SleepHours  *float64 `json:"sleepHours,omitempty"`
}

// Message is one transcript entry, ordered by Timestamp within a session.
type Message struct {
	ID          string       `json:"id"`
	Content     string       `json:"content"`
	Sender      string       `json:"sender"`
	Timestamp   time.Time    `json:"timestamp"`
	Buttons     []Button     `json:"buttons,omitempty"`
	Annotations *Annotations `json:"custom,omitempty"`
}

// SessionRef identifies one conversation thread.
type SessionRef struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// MoodSample is the derived emotional reading of one user utterance.
type MoodSample struct {
	SessionID   string    `json:"session_id"`
	Email       string    `json:"email"`
	Score       int       `json:"mood"`
	Emotion     string    `json:"emotion"`
	EnergyLevel *int      `json:"energyLevel,omitempty"`
	SleepHours  *float64  `json:"sleepHours,omitempty"`
	Source      string    `json:"source"`
	Timestamp   time.Time `json:"timestamp"`
}

// Reply is one responder utterance before it becomes a transcript Message.
type Reply struct {
	Text        string       `json:"text"`
	Buttons     []Button     `json:"buttons,omitempty"`
	Annotations *Annotations `json:"custom,omitempty"`
}

// SessionStore is the durable message store collaborator.
type SessionStore interface {
	ListSessions(ctx context.Context, email string) ([]SessionRef, error)
	FetchMessages(ctx context.Context, email, sessionID string) ([]Message, error)
	AppendMessage(ctx context.Context, email, sessionID string, msg Message) error
}

// MoodRecorder persists derived mood samples.
type MoodRecorder interface {
	RecordMood(ctx context.Context, sample MoodSample) error
}

// Responder is the external conversational service. The session id travels
// as the correlation key.
type Responder interface {
	Exchange(ctx context.Context, sessionID, text string) ([]Reply, error)
}

// State is the snapshot mirrored to durable client storage: the active
// session pointer plus the last rendered transcript.
type State struct {
	SessionID  string    `json:"session_id"`
	CreatedAt  time.Time `json:"created_at"`
	Transcript []Message `json:"transcript"`
}

// StateStore owns all reads and writes of the durable state mirror. No other
// component touches it.
type StateStore interface {
	Load(email string) (State, bool, error)
	Save(email string, st State) error
}
