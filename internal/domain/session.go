package domain

import (
	"sync"
	"time"
)

// ChatSession holds the in-memory state of one chat: the append-only message
// log, the number of in-flight resolutions, and the active response mode.
// Nothing is persisted; a reset or process restart drops everything.
//
// Handlers and resolution goroutines touch the same session concurrently, so
// all state is guarded by a mutex. The log is strictly append-only: assistant
// messages land in resolution-completion order, not submission order.
type ChatSession struct {
	mu        sync.Mutex
	messages  []Message
	inFlight  int
	mode      Mode
	createdAt time.Time
}

// NewChatSession creates a session seeded with the greeting message.
func NewChatSession(greeting Message, mode Mode) *ChatSession {
	return &ChatSession{
		messages:  []Message{greeting},
		mode:      mode,
		createdAt: time.Now(),
	}
}

// Append adds a message to the end of the log.
func (s *ChatSession) Append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a snapshot of the log in append order.
func (s *ChatSession) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the log.
func (s *ChatSession) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// BeginResolution marks one response resolution as in flight.
func (s *ChatSession) BeginResolution() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight++
}

// EndResolution marks one response resolution as settled.
func (s *ChatSession) EndResolution() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight > 0 {
		s.inFlight--
	}
}

// IsTyping reports whether at least one resolution is in flight.
func (s *ChatSession) IsTyping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Mode returns the active response mode.
func (s *ChatSession) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches the response mode for future submits. Resolutions already
// in flight keep the mode they were submitted with.
func (s *ChatSession) SetMode(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

// CreatedAt returns when the session was seeded.
func (s *ChatSession) CreatedAt() time.Time {
	return s.createdAt
}
