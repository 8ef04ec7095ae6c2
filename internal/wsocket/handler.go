package wsocket

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Sridevi2108/Auracare/internal/broker"
	"github.com/Sridevi2108/Auracare/internal/chatstate"
	"github.com/Sridevi2108/Auracare/internal/services"
)

// Handler hosts one chatstate.Manager per websocket connection. The
// connection is the chat client's event loop: commands come in, transcript
// updates go out. Bot messages logged through the REST chat path are relayed
// from the broker so every live view of a session stays in sync.
type Handler struct {
	newManager    func() *chatstate.Manager
	messageBroker *broker.Broker
	upgrader      websocket.Upgrader
}

func NewHandler(newManager func() *chatstate.Manager, messageBroker *broker.Broker, upgrader websocket.Upgrader) *Handler {
	return &Handler{
		newManager:    newManager,
		messageBroker: messageBroker,
		upgrader:      upgrader,
	}
}

// Command is one inbound client action.
type Command struct {
	Type      string `json:"type"` // "send", "switch", "new", "delete"
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// Event is one outbound frame.
type Event struct {
	Type       string                 `json:"type"` // "init", "session", "message", "typing", "error"
	SessionID  string                 `json:"sessionId,omitempty"`
	Message    *chatstate.Message     `json:"message,omitempty"`
	Sessions   []chatstate.SessionRef `json:"sessions,omitempty"`
	Transcript []chatstate.Message    `json:"transcript,omitempty"`
	Content    string                 `json:"content,omitempty"`
}

type connection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *connection) send(ev Event) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(ev)
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("wsocket: upgrade failed")
		return
	}
	defer ws.Close()

	conn := &connection{conn: ws}
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	manager := h.newManager()
	if err := manager.Initialize(ctx, email); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("wsocket: manager initialization failed")
	}

	relay := newSessionRelay(h.messageBroker, conn)
	defer relay.stop()
	relay.follow(ctx, manager.ActiveSession().ID)

	if err := conn.send(Event{
		Type:       "init",
		SessionID:  manager.ActiveSession().ID,
		Sessions:   manager.Sessions(),
		Transcript: manager.Transcript(),
	}); err != nil {
		return
	}

	for {
		var cmd Command
		if err := ws.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("wsocket: read error")
			}
			return
		}

		switch cmd.Type {
		case "send":
			h.handleSend(ctx, manager, conn, cmd.Content)
		case "switch":
			if err := manager.SwitchSession(ctx, cmd.SessionID); err != nil {
				_ = conn.send(Event{Type: "error", Content: "Could not load session"})
				continue
			}
			relay.follow(ctx, manager.ActiveSession().ID)
			h.sendSessionState(manager, conn)
		case "new":
			manager.CreateSession()
			relay.follow(ctx, manager.ActiveSession().ID)
			h.sendSessionState(manager, conn)
		case "delete":
			if err := manager.DeleteSession(ctx, cmd.SessionID); err != nil {
				_ = conn.send(Event{Type: "error", Content: "Could not delete session"})
				continue
			}
			relay.follow(ctx, manager.ActiveSession().ID)
			h.sendSessionState(manager, conn)
		default:
			_ = conn.send(Event{Type: "error", Content: "Unknown command type"})
		}
	}
}

func (h *Handler) handleSend(ctx context.Context, manager *chatstate.Manager, conn *connection, content string) {
	sessionID := manager.ActiveSession().ID
	_ = conn.send(Event{Type: "typing", SessionID: sessionID})

	botMessages, err := manager.SendUserMessage(ctx, content)
	if err != nil {
		_ = conn.send(Event{Type: "error", Content: err.Error()})
		return
	}
	for i := range botMessages {
		_ = conn.send(Event{Type: "message", SessionID: sessionID, Message: &botMessages[i]})
	}
}

func (h *Handler) sendSessionState(manager *chatstate.Manager, conn *connection) {
	_ = conn.send(Event{
		Type:       "session",
		SessionID:  manager.ActiveSession().ID,
		Sessions:   manager.Sessions(),
		Transcript: manager.Transcript(),
	})
}

// sessionRelay forwards broker messages for the active session to the
// websocket, re-pointing itself on every session switch.
type sessionRelay struct {
	messageBroker *broker.Broker
	conn          *connection

	mu      sync.Mutex
	topic   string
	ch      <-chan chatstate.Message
	cancel  context.CancelFunc
	stopped bool
}

func newSessionRelay(messageBroker *broker.Broker, conn *connection) *sessionRelay {
	return &sessionRelay{messageBroker: messageBroker, conn: conn}
}

func (r *sessionRelay) follow(parent context.Context, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || r.messageBroker == nil {
		return
	}

	r.unfollowLocked()

	topic := services.ChatTopic(sessionID)
	ch := r.messageBroker.Subscribe(topic)
	ctx, cancel := context.WithCancel(parent)
	r.topic = topic
	r.ch = ch
	r.cancel = cancel

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if err := r.conn.send(Event{Type: "message", SessionID: sessionID, Message: &msg}); err != nil {
					return
				}
			}
		}
	}()
}

func (r *sessionRelay) stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unfollowLocked()
	r.stopped = true
}

func (r *sessionRelay) unfollowLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if r.ch != nil {
		r.messageBroker.Unsubscribe(r.topic, r.ch)
		r.ch = nil
	}
}
