package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Sridevi2108/Auracare/internal/chatstate"
	"github.com/Sridevi2108/Auracare/internal/models"
	"github.com/Sridevi2108/Auracare/internal/services"
)

// MockChatStoreDB is a mock implementation of the ChatStoreDB interface.
type MockChatStoreDB struct {
	mock.Mock
}

func (m *MockChatStoreDB) EnsureSession(sessionID, email string, startedAt time.Time) error {
	args := m.Called(sessionID, email, startedAt)
	return args.Error(0)
}

func (m *MockChatStoreDB) SaveMessageToDB(msg models.ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockChatStoreDB) GetMessagesBySessionFromDB(email, sessionID string) ([]models.ChatMessage, error) {
	args := m.Called(email, sessionID)
	var msgs []models.ChatMessage
	if v := args.Get(0); v != nil {
		msgs = v.([]models.ChatMessage)
	}
	return msgs, args.Error(1)
}

func (m *MockChatStoreDB) GetSessionsByEmailFromDB(email string) ([]models.ChatSession, error) {
	args := m.Called(email)
	var sessions []models.ChatSession
	if v := args.Get(0); v != nil {
		sessions = v.([]models.ChatSession)
	}
	return sessions, args.Error(1)
}

func (m *MockChatStoreDB) GetMessagesByDateFromDB(email string, dayStart time.Time) ([]models.ChatMessage, error) {
	args := m.Called(email, dayStart)
	var msgs []models.ChatMessage
	if v := args.Get(0); v != nil {
		msgs = v.([]models.ChatMessage)
	}
	return msgs, args.Error(1)
}

// MockMoodStoreDB is a mock implementation of the MoodStoreDB interface.
type MockMoodStoreDB struct {
	mock.Mock
}

func (m *MockMoodStoreDB) SaveMoodToDB(entry models.MoodLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockMoodStoreDB) GetMoodsBySessionFromDB(sessionID string) ([]models.MoodLog, error) {
	args := m.Called(sessionID)
	var logs []models.MoodLog
	if v := args.Get(0); v != nil {
		logs = v.([]models.MoodLog)
	}
	return logs, args.Error(1)
}

func (m *MockMoodStoreDB) GetMoodsByEmailFromDB(email string) ([]models.MoodLog, error) {
	args := m.Called(email)
	var logs []models.MoodLog
	if v := args.Get(0); v != nil {
		logs = v.([]models.MoodLog)
	}
	return logs, args.Error(1)
}

// MockActivityStoreDB is a mock implementation of the ActivityStoreDB interface.
type MockActivityStoreDB struct {
	mock.Mock
}

func (m *MockActivityStoreDB) SaveActivityToDB(entry models.ActivityLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockActivityStoreDB) GetActivitySummaryFromDB(email string) ([]services.ActivitySummary, error) {
	args := m.Called(email)
	var summary []services.ActivitySummary
	if v := args.Get(0); v != nil {
		summary = v.([]services.ActivitySummary)
	}
	return summary, args.Error(1)
}

// MockResponder is a mock implementation of the Responder interface.
type MockResponder struct {
	mock.Mock
}

func (m *MockResponder) Exchange(ctx context.Context, sessionID, text string) ([]chatstate.Reply, error) {
	args := m.Called(ctx, sessionID, text)
	var replies []chatstate.Reply
	if v := args.Get(0); v != nil {
		replies = v.([]chatstate.Reply)
	}
	return replies, args.Error(1)
}

// MockPublisher is a mock implementation of the Publisher interface.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(topic string, msg chatstate.Message) {
	m.Called(topic, msg)
}
