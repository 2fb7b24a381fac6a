package session

import "sync"

// Store is a process-wide mapping from chat ID to its Session. The map is
// guarded for concurrent access; events for one chat are expected to arrive
// in order from the transport.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewStore constructs an empty in-memory Store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the session for a chat, creating an idle one on first contact.
func (s *Store) Get(chatID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[chatID]; ok {
		return sess
	}
	sess := newSession()
	s.sessions[chatID] = sess
	return sess
}

// Reset replaces the chat's session with a fresh idle one and returns it.
func (s *Store) Reset(chatID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := newSession()
	s.sessions[chatID] = sess
	return sess
}

// Remove deletes the chat's session entirely. The next event behaves as
// first contact.
func (s *Store) Remove(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
