package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Sridevi2108/Auracare/internal/chatstate"
	"github.com/Sridevi2108/Auracare/internal/sentiment"
)

// ChatTurnService runs one stateless chat turn for REST clients: persist the
// user message and its mood sample, exchange with the responder, persist and
// publish the replies. The stateful transcript bookkeeping lives in
// chatstate.Manager; this path serves the widget that keeps its own state.
type ChatTurnService struct {
	chatStore ChatStoreDB
	moodStore MoodStoreDB
	responder Responder
	publisher Publisher
	analyzer  *sentiment.Analyzer
	bands     sentiment.Bands
}

func NewChatTurnService(
	chatStore ChatStoreDB,
	moodStore MoodStoreDB,
	responder Responder,
	publisher Publisher,
	analyzer *sentiment.Analyzer,
	bands sentiment.Bands,
) *ChatTurnService {
	return &ChatTurnService{
		chatStore: chatStore,
		moodStore: moodStore,
		responder: responder,
		publisher: publisher,
		analyzer:  analyzer,
		bands:     bands,
	}
}

// ChatTopic is the broker topic carrying bot messages for one session.
func ChatTopic(sessionID string) string {
	return "chat_" + sessionID
}

var ErrEmptyMessage = fmt.Errorf("message text is empty")

// RunTurn executes one user turn. Persistence failures are logged, never
// fatal; a responder failure comes back as a single synthetic bot message.
func (s *ChatTurnService) RunTurn(ctx context.Context, email, sessionID, text string) ([]chatstate.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	now := time.Now().UTC()
	userMsg := chatstate.Message{
		ID:        uuid.NewString(),
		Content:   text,
		Sender:    chatstate.SenderUser,
		Timestamp: now,
	}
	if err := s.chatStore.SaveMessageToDB(toStoredMessage(email, sessionID, userMsg)); err != nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("chat turn: failed to persist user message")
	}

	mood := sentiment.MoodFromComparative(s.analyzer.Comparative(text))
	if err := s.moodStore.SaveMoodToDB(toStoredMood(chatstate.MoodSample{
		SessionID: sessionID,
		Email:     email,
		Score:     mood,
		Emotion:   s.bands.Emotion(mood),
		Source:    "chat",
		Timestamp: now,
	})); err != nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("chat turn: failed to record mood")
	}

	replies, err := s.responder.Exchange(ctx, sessionID, text)
	if err != nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("chat turn: responder exchange failed")
		failure := chatstate.Message{
			ID:        uuid.NewString(),
			Content:   "⚠️ Bot unreachable.",
			Sender:    chatstate.SenderBot,
			Timestamp: time.Now().UTC(),
		}
		s.publish(sessionID, failure)
		return []chatstate.Message{failure}, nil
	}

	botMessages := make([]chatstate.Message, 0, len(replies))
	for _, r := range replies {
		botMsg := chatstate.Message{
			ID:          uuid.NewString(),
			Content:     r.Text,
			Sender:      chatstate.SenderBot,
			Timestamp:   time.Now().UTC(),
			Buttons:     r.Buttons,
			Annotations: r.Annotations,
		}
		if err := s.chatStore.SaveMessageToDB(toStoredMessage(email, sessionID, botMsg)); err != nil {
			log.Warn().Err(err).Str("session", sessionID).Msg("chat turn: failed to persist bot message")
		}
		s.publish(sessionID, botMsg)
		botMessages = append(botMessages, botMsg)
	}
	return botMessages, nil
}

func (s *ChatTurnService) publish(sessionID string, msg chatstate.Message) {
	if s.publisher != nil {
		s.publisher.Publish(ChatTopic(sessionID), msg)
	}
}
