// Package chatstate owns the client-facing chat session state: the single
// active session, its transcript, the known-session list, and the durable
// state mirror. Every mutation of that state goes through the Manager.
package chatstate

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Sridevi2108/Auracare/internal/sentiment"
)

const defaultUnavailableText = "⚠️ Bot unreachable."

// Config wires the Manager's collaborators.
type Config struct {
	Store     SessionStore
	Moods     MoodRecorder
	Responder Responder
	State     StateStore
	Analyzer  *sentiment.Analyzer
	Bands     sentiment.Bands
	// UnavailableText is the synthetic bot message shown when the responder
	// fails. Defaults to defaultUnavailableText.
	UnavailableText string
	Logger          *zerolog.Logger
}

// Manager mediates every chat operation between optimistic local state and
// the external collaborators. All state is guarded by a single mutex, the
// stand-in for the UI event loop.
type Manager struct {
	mu         sync.Mutex
	email      string
	active     SessionRef
	transcript []Message
	sessions   []SessionRef

	store           SessionStore
	moods           MoodRecorder
	responder       Responder
	state           StateStore
	analyzer        *sentiment.Analyzer
	bands           sentiment.Bands
	unavailableText string
	logger          zerolog.Logger
}

func NewManager(cfg Config) *Manager {
	unavailable := cfg.UnavailableText
	if unavailable == "" {
		unavailable = defaultUnavailableText
	}
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	analyzer := cfg.Analyzer
	if analyzer == nil {
		analyzer = sentiment.NewAnalyzer()
	}
	bands := cfg.Bands
	if bands == (sentiment.Bands{}) {
		bands = sentiment.DefaultBands()
	}

	return &Manager{
		store:           cfg.Store,
		moods:           cfg.Moods,
		responder:       cfg.Responder,
		state:           cfg.State,
		analyzer:        analyzer,
		bands:           bands,
		unavailableText: unavailable,
		logger:          logger,
	}
}

// Initialize resolves the active session from durable storage (synthesizing
// one if absent) and fetches the known-session list. A missing user identity
// is a guard, not an error: the manager comes up with an empty session list.
func (m *Manager) Initialize(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.email = email

	if email == "" {
		m.logger.Warn().Msg("chatstate: no user identity, starting with empty session list")
		m.sessions = nil
		m.newSessionLocked()
		return nil
	}

	if m.state == nil {
		m.newSessionLocked()
	} else if st, ok, err := m.state.Load(email); err != nil {
		m.logger.Warn().Err(err).Str("email", email).Msg("chatstate: failed to load saved state")
		m.newSessionLocked()
	} else if ok && st.SessionID != "" {
		m.active = SessionRef{ID: st.SessionID, CreatedAt: st.CreatedAt}
		m.transcript = st.Transcript
	} else {
		m.newSessionLocked()
	}

	list, err := m.store.ListSessions(ctx, email)
	if err != nil {
		m.logger.Warn().Err(err).Str("email", email).Msg("chatstate: failed to list sessions")
		return nil
	}
	m.sessions = list
	return nil
}

// SwitchSession installs the full fetched history of sessionID as the active
// transcript. On fetch failure nothing changes: no partial transcript is
// ever shown.
func (m *Manager) SwitchSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	msgs, err := m.store.FetchMessages(ctx, m.email, sessionID)
	if err != nil {
		return err
	}

	m.active = m.sessionRefLocked(sessionID)
	m.transcript = msgs
	m.persistStateLocked()
	return nil
}

// CreateSession starts a fresh local session. The Session Store is not
// contacted: the session becomes durable when its first message is logged.
func (m *Manager) CreateSession() SessionRef {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.newSessionLocked()
}

// DeleteSession drops sessionID from the known-session list. Deleting the
// active session activates the first remaining one, or synthesizes a fresh
// session when none remain. The active pointer never dangles.
func (m *Manager) DeleteSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filtered := m.sessions[:0:0]
	for _, s := range m.sessions {
		if s.ID != sessionID {
			filtered = append(filtered, s)
		}
	}
	m.sessions = filtered

	if sessionID != m.active.ID {
		return nil
	}

	if len(m.sessions) > 0 {
		next := m.sessions[0]
		msgs, err := m.store.FetchMessages(ctx, m.email, next.ID)
		if err != nil {
			// The old transcript belongs to a deleted session, so falling
			// back to a fresh one beats keeping a dangling pointer.
			m.logger.Warn().Err(err).Str("session", next.ID).Msg("chatstate: failed to load next session after delete")
			m.newSessionLocked()
			return nil
		}
		m.active = next
		m.transcript = msgs
		m.persistStateLocked()
		return nil
	}

	ref := m.newSessionLocked()
	m.sessions = []SessionRef{ref}
	return nil
}

// SendUserMessage appends the user message optimistically, records a mood
// sample derived from the text, then exchanges with the responder and
// appends its replies in arrival order. Persistence failures are logged and
// never surface; a responder failure yields exactly one synthetic bot
// message. Replies arriving after a session switch are discarded.
//
// The returned messages are the bot entries actually appended.
func (m *Manager) SendUserMessage(ctx context.Context, text string) ([]Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	now := time.Now().UTC()
	userMsg := Message{
		ID:        uuid.NewString(),
		Content:   text,
		Sender:    SenderUser,
		Timestamp: now,
	}

	m.mu.Lock()
	sessionID := m.active.ID
	email := m.email
	m.transcript = append(m.transcript, userMsg)
	m.persistStateLocked()
	m.mu.Unlock()

	if err := m.store.AppendMessage(ctx, email, sessionID, userMsg); err != nil {
		m.logger.Warn().Err(err).Str("session", sessionID).Msg("chatstate: failed to persist user message")
	}

	mood := sentiment.MoodFromComparative(m.analyzer.Comparative(text))
	sample := MoodSample{
		SessionID: sessionID,
		Email:     email,
		Score:     mood,
		Emotion:   m.bands.Emotion(mood),
		Source:    "chat",
		Timestamp: now,
	}
	if err := m.moods.RecordMood(ctx, sample); err != nil {
		m.logger.Warn().Err(err).Str("session", sessionID).Msg("chatstate: failed to record mood sample")
	}

	replies, err := m.responder.Exchange(ctx, sessionID, text)
	if err != nil {
		m.logger.Warn().Err(err).Str("session", sessionID).Msg("chatstate: responder exchange failed")
		failure := Message{
			ID:        uuid.NewString(),
			Content:   m.unavailableText,
			Sender:    SenderBot,
			Timestamp: time.Now().UTC(),
		}
		if m.appendBot(sessionID, failure) {
			return []Message{failure}, nil
		}
		return nil, nil
	}

	appended := make([]Message, 0, len(replies))
	for _, r := range replies {
		botMsg := Message{
			ID:          uuid.NewString(),
			Content:     r.Text,
			Sender:      SenderBot,
			Timestamp:   time.Now().UTC(),
			Buttons:     r.Buttons,
			Annotations: r.Annotations,
		}
		if !m.appendBot(sessionID, botMsg) {
			// Session changed mid-flight: the whole batch belongs to the
			// old transcript.
			break
		}
		if err := m.store.AppendMessage(ctx, email, sessionID, botMsg); err != nil {
			m.logger.Warn().Err(err).Str("session", sessionID).Msg("chatstate: failed to persist bot message")
		}
		appended = append(appended, botMsg)
	}
	return appended, nil
}

// ActiveSession returns the current session reference.
func (m *Manager) ActiveSession() SessionRef {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Transcript returns a copy of the active transcript.
func (m *Manager) Transcript() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.transcript))
	copy(out, m.transcript)
	return out
}

// Sessions returns a copy of the known-session list.
func (m *Manager) Sessions() []SessionRef {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SessionRef, len(m.sessions))
	copy(out, m.sessions)
	return out
}

func (m *Manager) appendBot(sessionID string, msg Message) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active.ID != sessionID {
		m.logger.Debug().Str("session", sessionID).Str("active", m.active.ID).Msg("chatstate: discarding stale responder result")
		return false
	}
	m.transcript = append(m.transcript, msg)
	m.persistStateLocked()
	return true
}

func (m *Manager) newSessionLocked() SessionRef {
	ref := SessionRef{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
	m.active = ref
	m.transcript = nil
	m.persistStateLocked()
	return ref
}

func (m *Manager) sessionRefLocked(sessionID string) SessionRef {
	for _, s := range m.sessions {
		if s.ID == sessionID {
			return s
		}
	}
	return SessionRef{ID: sessionID, CreatedAt: time.Now().UTC()}
}

func (m *Manager) persistStateLocked() {
	if m.email == "" || m.state == nil {
		return
	}
	snapshot := State{
		SessionID:  m.active.ID,
		CreatedAt:  m.active.CreatedAt,
		Transcript: append([]Message(nil), m.transcript...),
	}
	if err := m.state.Save(m.email, snapshot); err != nil {
		m.logger.Warn().Err(err).Str("email", m.email).Msg("chatstate: failed to mirror state")
	}
}
