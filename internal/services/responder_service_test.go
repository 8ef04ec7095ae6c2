package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWebhookResponderExchange(t *testing.T) {
	ctx := context.Background()

	t.Run("Posts The Turn And Maps The Replies", func(t *testing.T) {
		var received map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"text": "Hello! How are you feeling today?"},
				{"text": "Pick one", "buttons": [{"title": "🎮 Play a Game", "payload": "/trigger_game"}]}
			]`))
		}))
		defer server.Close()

		replies, err := NewWebhookResponder(server.URL, time.Second).
			Exchange(ctx, "session-1", "hi")
		assert.NoError(t, err)

		assert.Equal(t, "session-1", received["sender"])
		assert.Equal(t, "hi", received["message"])

		if assert.Len(t, replies, 2) {
			assert.Equal(t, "Hello! How are you feeling today?", replies[0].Text)
			assert.Equal(t, "🎮 Play a Game", replies[1].Buttons[0].Title)
			assert.Equal(t, "/trigger_game", replies[1].Buttons[0].Payload)
		}
	})

	t.Run("Falls Back To The Custom Reply Text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[
				{"custom": {"reply": "Logged your mood.", "navigate_to": "/mood", "mood": 7, "emotion": "Neutral"}}
			]`))
		}))
		defer server.Close()

		replies, err := NewWebhookResponder(server.URL, time.Second).
			Exchange(ctx, "session-1", "I slept 8 hours")
		assert.NoError(t, err)

		if assert.Len(t, replies, 1) {
			assert.Equal(t, "Logged your mood.", replies[0].Text)
			if assert.NotNil(t, replies[0].Annotations) {
				assert.Equal(t, "/mood", replies[0].Annotations.NavigateTo)
				if assert.NotNil(t, replies[0].Annotations.Mood) {
					assert.Equal(t, 7, *replies[0].Annotations.Mood)
				}
				assert.Equal(t, "Neutral", replies[0].Annotations.Emotion)
			}
		}
	})

	t.Run("Non 2xx Status Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := NewWebhookResponder(server.URL, time.Second).
			Exchange(ctx, "session-1", "hi")
		assert.ErrorContains(t, err, "status 502")
	})

	t.Run("Malformed Payload Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not": "a list"}`))
		}))
		defer server.Close()

		_, err := NewWebhookResponder(server.URL, time.Second).
			Exchange(ctx, "session-1", "hi")
		assert.ErrorContains(t, err, "malformed responder payload")
	})

	t.Run("Unreachable Endpoint Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := NewWebhookResponder(server.URL, time.Second).
			Exchange(ctx, "session-1", "hi")
		assert.ErrorContains(t, err, "responder unreachable")
	})
}
