package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/Sridevi2108/Auracare/internal/chatstate"
	"github.com/Sridevi2108/Auracare/internal/models"
)

// DBSessionStore adapts ChatStoreDB to the chatstate.SessionStore contract
// for deployments where the session store is this process's own database.
type DBSessionStore struct {
	store ChatStoreDB
}

func NewDBSessionStore(store ChatStoreDB) *DBSessionStore {
	return &DBSessionStore{store: store}
}

func (a *DBSessionStore) ListSessions(_ context.Context, email string) ([]chatstate.SessionRef, error) {
	sessions, err := a.store.GetSessionsByEmailFromDB(email)
	if err != nil {
		return nil, err
	}
	refs := make([]chatstate.SessionRef, 0, len(sessions))
	for _, s := range sessions {
		refs = append(refs, chatstate.SessionRef{ID: s.SessionID, CreatedAt: s.StartedAt})
	}
	return refs, nil
}

func (a *DBSessionStore) FetchMessages(_ context.Context, email, sessionID string) ([]chatstate.Message, error) {
	rows, err := a.store.GetMessagesBySessionFromDB(email, sessionID)
	if err != nil {
		return nil, err
	}
	messages := make([]chatstate.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, toChatstateMessage(row))
	}
	return messages, nil
}

func (a *DBSessionStore) AppendMessage(_ context.Context, email, sessionID string, msg chatstate.Message) error {
	return a.store.SaveMessageToDB(toStoredMessage(email, sessionID, msg))
}

// DBMoodRecorder adapts MoodStoreDB to chatstate.MoodRecorder.
type DBMoodRecorder struct {
	store MoodStoreDB
}

func NewDBMoodRecorder(store MoodStoreDB) *DBMoodRecorder {
	return &DBMoodRecorder{store: store}
}

func (a *DBMoodRecorder) RecordMood(_ context.Context, sample chatstate.MoodSample) error {
	return a.store.SaveMoodToDB(toStoredMood(sample))
}

func toStoredMood(sample chatstate.MoodSample) models.MoodLog {
	return models.MoodLog{
		SessionID:   sample.SessionID,
		Email:       sample.Email,
		Mood:        sample.Score,
		Emotion:     sample.Emotion,
		EnergyLevel: sample.EnergyLevel,
		SleepHours:  sample.SleepHours,
		Source:      sample.Source,
		Timestamp:   sample.Timestamp,
	}
}

func toChatstateMessage(row models.ChatMessage) chatstate.Message {
	msg := chatstate.Message{
		ID:        row.MessageID,
		Content:   row.Content,
		Sender:    row.Sender,
		Timestamp: row.Timestamp,
	}
	if len(row.Buttons) > 0 {
		_ = json.Unmarshal(row.Buttons, &msg.Buttons)
	}
	if len(row.Annotations) > 0 {
		_ = json.Unmarshal(row.Annotations, &msg.Annotations)
	}
	return msg
}

func toStoredMessage(email, sessionID string, msg chatstate.Message) models.ChatMessage {
	row := models.ChatMessage{
		MessageID: msg.ID,
		SessionID: sessionID,
		Email:     email,
		Sender:    msg.Sender,
		Content:   msg.Content,
		Timestamp: msg.Timestamp,
	}
	if row.MessageID == "" {
		row.MessageID = uuid.NewString()
	}
	if len(msg.Buttons) > 0 {
		row.Buttons, _ = json.Marshal(msg.Buttons)
	}
	if msg.Annotations != nil {
		row.Annotations, _ = json.Marshal(msg.Annotations)
	}
	return row
}
