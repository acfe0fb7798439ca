package support

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hallbook/internal/logging"
	"hallbook/internal/models"
)

// Options configures the sessions created by a Hub. Sessions untouched for
// IdleTimeout are closed when the next session opens; past MaxSessions the
// least recently active session is closed.
type Options struct {
	ReplyDelay  time.Duration
	IdleTimeout time.Duration
	MaxSessions int
	Answers     *Answers
	Relay       Relay
	Now         func() time.Time
	Log         zerolog.Logger
}

// Hub owns the open support sessions
type Hub struct {
	opts Options
	log  zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewHub creates a new session hub
func NewHub(opts Options) *Hub {
	if opts.ReplyDelay <= 0 {
		opts.ReplyDelay = DefaultReplyDelay
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.Answers == nil {
		opts.Answers = NewAnswers(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.Log = logging.Component(opts.Log, "support")

	return &Hub{
		opts:     opts,
		log:      opts.Log,
		sessions: make(map[string]*Session),
	}
}

// Open starts a new session greeted by the welcome message
func (h *Hub) Open() *Session {
	s := newSession(uuid.NewString(), h.opts)

	h.mu.Lock()
	evicted := h.evictLocked()
	h.sessions[s.id] = s
	h.mu.Unlock()

	for _, old := range evicted {
		old.Close()
	}
	if len(evicted) > 0 {
		h.log.Debug().Int("sessions", len(evicted)).Msg("Expired idle support sessions")
	}
	h.log.Debug().Str("session_id", s.id).Msg("Support session opened")
	return s
}

// evictLocked removes idle sessions and, if the hub is still full, the least
// recently active one. The caller closes the returned sessions.
func (h *Hub) evictLocked() []*Session {
	var evicted []*Session
	cutoff := h.opts.Now().Add(-h.opts.IdleTimeout)

	var oldest *Session
	for id, s := range h.sessions {
		last := s.LastActive()
		if last.Before(cutoff) {
			delete(h.sessions, id)
			evicted = append(evicted, s)
			continue
		}
		if oldest == nil || last.Before(oldest.LastActive()) {
			oldest = s
		}
	}
	if oldest != nil && len(h.sessions) >= h.opts.MaxSessions {
		delete(h.sessions, oldest.id)
		evicted = append(evicted, oldest)
	}
	return evicted
}

// Len returns the number of open sessions
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Get returns the open session with the given id and marks it active
func (h *Hub) Get(id string) (*Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch()
	return s, nil
}

// Messages returns the conversation of the session with the given id
func (h *Hub) Messages(id string) ([]models.ChatMessage, error) {
	s, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	return s.Messages(), nil
}

// Close closes and forgets the session with the given id
func (h *Hub) Close(id string) error {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	h.log.Debug().Str("session_id", id).Msg("Support session closed")
	return nil
}

// CloseAll closes every session
func (h *Hub) CloseAll() {
	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[string]*Session)
	h.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	if len(sessions) > 0 {
		h.log.Info().Int("sessions", len(sessions)).Msg("Closed support sessions")
	}
}
