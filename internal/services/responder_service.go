package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Sridevi2108/Auracare/internal/chatstate"
)

// WebhookResponder talks to the conversational service's REST webhook
// (Rasa-compatible): one POST per user turn, zero or more reply objects
// back. The session id rides in the sender field as the correlation key.
type WebhookResponder struct {
	url    string
	client *http.Client
}

func NewWebhookResponder(url string, timeout time.Duration) *WebhookResponder {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &WebhookResponder{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type webhookRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

type webhookReply struct {
	Text    string             `json:"text"`
	Buttons []chatstate.Button `json:"buttons,omitempty"`
	Custom  *webhookCustom     `json:"custom,omitempty"`
}

// webhookCustom is the side-channel payload. Older action servers put the
// reply text in here instead of the top-level text field.
type webhookCustom struct {
	Reply       string   `json:"reply,omitempty"`
	NavigateTo  string   `json:"navigate_to,omitempty"`
	Mood        *int     `json:"mood,omitempty"`
	Emotion     string   `json:"emotion,omitempty"`
	EnergyLevel *int     `json:"energyLevel,omitempty"`
	SleepHours  *float64 `json:"sleepHours,omitempty"`
}

func (r *WebhookResponder) Exchange(ctx context.Context, sessionID, text string) ([]chatstate.Reply, error) {
	body, err := json.Marshal(webhookRequest{Sender: sessionID, Message: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("responder unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("responder returned status %d", resp.StatusCode)
	}

	var raw []webhookReply
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("malformed responder payload: %w", err)
	}

	replies := make([]chatstate.Reply, 0, len(raw))
	for _, item := range raw {
		reply := chatstate.Reply{
			Text:    item.Text,
			Buttons: item.Buttons,
		}
		if item.Custom != nil {
			if reply.Text == "" {
				reply.Text = item.Custom.Reply
			}
			reply.Annotations = &chatstate.Annotations{
				NavigateTo:  item.Custom.NavigateTo,
				Mood:        item.Custom.Mood,
				Emotion:     item.Custom.Emotion,
				EnergyLevel: item.Custom.EnergyLevel,
				SleepHours:  item.Custom.SleepHours,
			}
		}
		replies = append(replies, reply)
	}
	return replies, nil
}
