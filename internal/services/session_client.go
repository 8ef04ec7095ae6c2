package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Sridevi2108/Auracare/internal/chatstate"
)

// RESTSessionStore implements chatstate.SessionStore and
// chatstate.MoodRecorder against a remote session store speaking the
// Auracare REST contract. Used when SESSION_STORE_URL points the chat state
// manager at another instance instead of the local database.
type RESTSessionStore struct {
	baseURL string
	client  *http.Client
}

func NewRESTSessionStore(baseURL string, timeout time.Duration) *RESTSessionStore {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &RESTSessionStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type sessionListEnvelope struct {
	Success  bool              `json:"success"`
	Sessions []json.RawMessage `json:"sessions"`
}

type sessionListItem struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

// ListSessions normalizes both server response shapes at the collaborator
// boundary: a bare list of session ids (legacy) or a list of
// {id, created_at} objects. Nothing past this point branches on shape.
func (r *RESTSessionStore) ListSessions(ctx context.Context, email string) ([]chatstate.SessionRef, error) {
	endpoint := fmt.Sprintf("%s/api/sessions/%s", r.baseURL, url.PathEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var envelope sessionListEnvelope
	if err := r.doJSON(req, &envelope); err != nil {
		return nil, err
	}

	refs := make([]chatstate.SessionRef, 0, len(envelope.Sessions))
	for _, raw := range envelope.Sessions {
		var id string
		if err := json.Unmarshal(raw, &id); err == nil {
			// Legacy shape: plain session id, creation time unknown.
			refs = append(refs, chatstate.SessionRef{ID: id, CreatedAt: time.Now().UTC()})
			continue
		}
		var item sessionListItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("unrecognized session list entry: %w", err)
		}
		createdAt, _ := time.Parse(time.RFC3339, item.CreatedAt)
		refs = append(refs, chatstate.SessionRef{ID: item.ID, CreatedAt: createdAt})
	}
	return refs, nil
}

type messageListEnvelope struct {
	Success  bool `json:"success"`
	Messages []struct {
		ID        string `json:"_id"`
		Sender    string `json:"sender"`
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
		Timestamp string `json:"timestamp"`
	} `json:"messages"`
}

func (r *RESTSessionStore) FetchMessages(ctx context.Context, email, sessionID string) ([]chatstate.Message, error) {
	body, err := json.Marshal(map[string]string{
		"email":      email,
		"session_id": sessionID,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/session-messages", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var envelope messageListEnvelope
	if err := r.doJSON(req, &envelope); err != nil {
		return nil, err
	}

	messages := make([]chatstate.Message, 0, len(envelope.Messages))
	for _, m := range envelope.Messages {
		ts, _ := time.Parse(time.RFC3339, m.Timestamp)
		messages = append(messages, chatstate.Message{
			ID:        m.ID,
			Content:   m.Message,
			Sender:    m.Sender,
			Timestamp: ts,
		})
	}
	return messages, nil
}

func (r *RESTSessionStore) AppendMessage(ctx context.Context, email, sessionID string, msg chatstate.Message) error {
	body, err := json.Marshal(map[string]interface{}{
		"email":      email,
		"sender":     msg.Sender,
		"message":    msg.Content,
		"session_id": sessionID,
		"timestamp":  msg.Timestamp.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/log-message", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return r.doJSON(req, nil)
}

func (r *RESTSessionStore) RecordMood(ctx context.Context, sample chatstate.MoodSample) error {
	body, err := json.Marshal(sample)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/mood-log", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return r.doJSON(req, nil)
}

func (r *RESTSessionStore) doJSON(req *http.Request, out interface{}) error {
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("session store returned status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
