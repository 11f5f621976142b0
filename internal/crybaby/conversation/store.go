// Package conversation holds the in-memory, append-only message log of a session.
package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/longkey1/crybaby/internal/crybaby"
)

// Store is the ordered, append-only log of one session
type Store struct {
	mu        sync.RWMutex
	id        string
	createdAt time.Time
	messages  []crybaby.Message

	now   func() time.Time
	newID func() string
}

// New creates a store seeded with an assistant greeting (skipped when empty)
func New(greeting string) *Store {
	s := &Store{
		id:       uuid.New().String(),
		messages: []crybaby.Message{},
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	s.createdAt = s.now()

	if greeting != "" {
		s.Append(crybaby.Message{
			Role: crybaby.RoleAssistant,
			Text: greeting,
		})
	}
	return s
}

// Append adds a message at the end of the log and returns its assigned ID.
// Content is not validated; callers decide what may be sent.
func (s *Store) Append(m crybaby.Message) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := m.Clone()
	msg.ID = s.newID()
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.now()
	}
	s.messages = append(s.messages, msg)
	return msg.ID
}

// Snapshot returns a copy of all messages in append order
func (s *Store) Snapshot() []crybaby.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]crybaby.Message, len(s.messages))
	for i, m := range s.messages {
		out[i] = m.Clone()
	}
	return out
}

// HistoryView projects the log to role and text, dropping attachments and sources
func (s *Store) HistoryView() []crybaby.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]crybaby.HistoryEntry, len(s.messages))
	for i, m := range s.messages {
		out[i] = crybaby.HistoryEntry{Role: m.Role, Text: m.Text}
	}
	return out
}

// Len returns the number of messages in the log
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// ID returns the session ID
func (s *Store) ID() string {
	return s.id
}

// ShortID returns the shortened session ID (first 8 characters)
func (s *Store) ShortID() string {
	if len(s.id) >= 8 {
		return s.id[:8]
	}
	return s.id
}

// CreatedAt returns the session start time
func (s *Store) CreatedAt() time.Time {
	return s.createdAt
}
