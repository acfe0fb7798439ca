// Package support implements the scripted support chat and the external
// contact channels.
package support

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"hallbook/internal/models"
)

var (
	ErrSessionNotFound = errors.New("support session not found")
	ErrSessionClosed   = errors.New("support session closed")
	ErrEmptyMessage    = errors.New("empty message")
)

const (
	DefaultReplyDelay  = time.Second
	DefaultIdleTimeout = 30 * time.Minute
	DefaultMaxSessions = 1000

	WelcomeMessage = "Hello! Welcome to Hyderabad HallBook support. How can I help you today?"
	CannedReply    = "Thank you for your message. Our support team will assist you shortly. " +
		"Is there anything specific you need help with regarding venue booking?"
)

// Relay forwards user messages to a human support channel
type Relay interface {
	Forward(ctx context.Context, sessionID, text string) error
}

// Session is one support conversation. Every user message schedules one
// delayed bot reply; Close cancels pending replies and any reply that fires
// afterwards is dropped.
type Session struct {
	id      string
	delay   time.Duration
	answers *Answers
	relay   Relay
	now     func() time.Time
	log     zerolog.Logger

	mu         sync.Mutex
	messages   []models.ChatMessage
	pending    map[int]*time.Timer
	nextKey    int
	closed     bool
	lastActive time.Time
}

func newSession(id string, opts Options) *Session {
	s := &Session{
		id:      id,
		delay:   opts.ReplyDelay,
		answers: opts.Answers,
		relay:   opts.Relay,
		now:     opts.Now,
		log:     opts.Log.With().Str("session_id", id).Logger(),
		pending: make(map[int]*time.Timer),
	}
	s.appendLocked(models.SenderBot, WelcomeMessage)
	s.lastActive = s.now()
	return s
}

func (s *Session) ID() string { return s.id }

// Send records a user message and schedules the bot reply
func (s *Session) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return models.ChatMessage{}, ErrSessionClosed
	}
	msg := s.appendLocked(models.SenderUser, text)
	s.lastActive = msg.Timestamp
	reply := s.answers.Reply(text)

	s.nextKey++
	key := s.nextKey
	s.pending[key] = time.AfterFunc(s.delay, func() { s.deliver(key, reply) })
	s.mu.Unlock()

	if s.relay != nil {
		if err := s.relay.Forward(ctx, s.id, text); err != nil {
			s.log.Warn().Err(err).Msg("Failed to relay support message")
		}
	}
	return msg, nil
}

// Messages returns a copy of the conversation so far
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

// Pending reports how many replies are still scheduled
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = s.now()
	s.mu.Unlock()
}

// LastActive returns when the session was opened, last read or last written
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Close stops every pending reply. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, t := range s.pending {
		t.Stop()
	}
	clear(s.pending)
}

func (s *Session) deliver(key int, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	delete(s.pending, key)
	s.appendLocked(models.SenderBot, reply)
}

func (s *Session) appendLocked(sender models.Sender, text string) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        len(s.messages) + 1,
		Type:      sender,
		Message:   text,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}
