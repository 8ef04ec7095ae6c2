package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Sridevi2108/Auracare/internal/chatstate"
	"github.com/Sridevi2108/Auracare/internal/models"
	"github.com/Sridevi2108/Auracare/internal/sentiment"
	"github.com/Sridevi2108/Auracare/internal/services"
)

func newTurnService(chatStore *MockChatStoreDB, moodStore *MockMoodStoreDB, responder *MockResponder, publisher *MockPublisher) *services.ChatTurnService {
	return services.NewChatTurnService(
		chatStore,
		moodStore,
		responder,
		publisher,
		sentiment.NewAnalyzer(),
		sentiment.DefaultBands(),
	)
}

func TestRunTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Message Is Rejected", func(t *testing.T) {
		svc := newTurnService(new(MockChatStoreDB), new(MockMoodStoreDB), new(MockResponder), new(MockPublisher))

		_, err := svc.RunTurn(ctx, "amy@example.com", "session-1", "   ")
		assert.ErrorIs(t, err, services.ErrEmptyMessage)
	})

	t.Run("Persists User Turn And Replies", func(t *testing.T) {
		chatStore := new(MockChatStoreDB)
		moodStore := new(MockMoodStoreDB)
		responder := new(MockResponder)
		publisher := new(MockPublisher)

		var stored []models.ChatMessage
		chatStore.On("SaveMessageToDB", mock.Anything).
			Run(func(args mock.Arguments) {
				stored = append(stored, args.Get(0).(models.ChatMessage))
			}).Return(nil).Times(3)

		var moodEntry models.MoodLog
		moodStore.On("SaveMoodToDB", mock.Anything).
			Run(func(args mock.Arguments) {
				moodEntry = args.Get(0).(models.MoodLog)
			}).Return(nil).Once()

		responder.On("Exchange", mock.Anything, "session-1", "I feel great today").
			Return([]chatstate.Reply{
				{Text: "Glad to hear it!"},
				{Text: "Want to log it?", Buttons: []chatstate.Button{{Title: "Yes", Payload: "/log_mood"}}},
			}, nil).Once()

		publisher.On("Publish", "chat_session-1", mock.Anything).Twice()

		botMessages, err := newTurnService(chatStore, moodStore, responder, publisher).
			RunTurn(ctx, "amy@example.com", "session-1", "I feel great today")
		assert.NoError(t, err)

		if assert.Len(t, botMessages, 2) {
			assert.Equal(t, "Glad to hear it!", botMessages[0].Content)
			assert.Equal(t, "Yes", botMessages[1].Buttons[0].Title)
		}

		if assert.Len(t, stored, 3) {
			assert.Equal(t, chatstate.SenderUser, stored[0].Sender)
			assert.Equal(t, "I feel great today", stored[0].Content)
			assert.Equal(t, "session-1", stored[0].SessionID)
			assert.Equal(t, chatstate.SenderBot, stored[1].Sender)
			assert.Equal(t, chatstate.SenderBot, stored[2].Sender)
		}

		assert.GreaterOrEqual(t, moodEntry.Mood, 8)
		assert.Equal(t, "Happy", moodEntry.Emotion)
		assert.Equal(t, "chat", moodEntry.Source)

		chatStore.AssertExpectations(t)
		moodStore.AssertExpectations(t)
		responder.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Generates A Session Id When Missing", func(t *testing.T) {
		chatStore := new(MockChatStoreDB)
		moodStore := new(MockMoodStoreDB)
		responder := new(MockResponder)

		var sessionID string
		chatStore.On("SaveMessageToDB", mock.Anything).
			Run(func(args mock.Arguments) {
				sessionID = args.Get(0).(models.ChatMessage).SessionID
			}).Return(nil).Once()
		moodStore.On("SaveMoodToDB", mock.Anything).Return(nil).Once()
		responder.On("Exchange", mock.Anything, mock.Anything, "hello").
			Return([]chatstate.Reply{}, nil).Once()

		_, err := newTurnService(chatStore, moodStore, responder, new(MockPublisher)).
			RunTurn(ctx, "amy@example.com", "", "hello")
		assert.NoError(t, err)
		assert.NotEmpty(t, sessionID)
	})

	t.Run("Responder Failure Yields A Synthetic Message", func(t *testing.T) {
		chatStore := new(MockChatStoreDB)
		moodStore := new(MockMoodStoreDB)
		responder := new(MockResponder)
		publisher := new(MockPublisher)

		chatStore.On("SaveMessageToDB", mock.Anything).Return(nil).Once()
		moodStore.On("SaveMoodToDB", mock.Anything).Return(nil).Once()
		responder.On("Exchange", mock.Anything, "session-1", "hello").
			Return(nil, errors.New("connection refused")).Once()
		publisher.On("Publish", "chat_session-1", mock.Anything).Once()

		botMessages, err := newTurnService(chatStore, moodStore, responder, publisher).
			RunTurn(ctx, "amy@example.com", "session-1", "hello")
		assert.NoError(t, err)

		if assert.Len(t, botMessages, 1) {
			assert.Equal(t, "⚠️ Bot unreachable.", botMessages[0].Content)
			assert.Equal(t, chatstate.SenderBot, botMessages[0].Sender)
		}
		// The synthetic message is not stored, only published.
		chatStore.AssertNumberOfCalls(t, "SaveMessageToDB", 1)
		publisher.AssertExpectations(t)
	})

	t.Run("Persistence Failures Do Not Fail The Turn", func(t *testing.T) {
		chatStore := new(MockChatStoreDB)
		moodStore := new(MockMoodStoreDB)
		responder := new(MockResponder)

		chatStore.On("SaveMessageToDB", mock.Anything).Return(errors.New("db down"))
		moodStore.On("SaveMoodToDB", mock.Anything).Return(errors.New("db down"))
		responder.On("Exchange", mock.Anything, "session-1", "hello").
			Return([]chatstate.Reply{{Text: "hi"}}, nil).Once()

		botMessages, err := newTurnService(chatStore, moodStore, responder, new(MockPublisher)).
			RunTurn(ctx, "amy@example.com", "session-1", "hello")
		assert.NoError(t, err)
		assert.Len(t, botMessages, 1)
	})
}
