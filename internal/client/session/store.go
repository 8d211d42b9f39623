// Package session owns the in-memory authenticated-session state.
//
// The store holds exactly one Session snapshot. Login and Logout are the only
// transitions; both are pure with respect to storage — durable persistence and
// user notification are attached as subscribers, so the transition logic is
// testable without either.
package session

import (
	"sync"

	"github.com/alans123s/billtrackery/internal/client/models"
)

// Store is the single source of truth for the current session. All methods
// are safe for concurrent use. The zero-value-equivalent initial state is the
// unauthenticated empty session.
type Store struct {
	mu      sync.RWMutex
	current models.Session
	subs    map[int]func(models.Session)
	nextSub int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(models.Session))}
}

// Read returns the current session snapshot.
func (s *Store) Read() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Login replaces the whole session with the one derived from a successful
// login payload and notifies subscribers. Returns the new snapshot.
func (s *Store) Login(res *models.LoginResult) models.Session {
	return s.transition(models.SessionFromLogin(res))
}

// Logout resets the session to the empty unauthenticated state and notifies
// subscribers. Idempotent: a second call produces the same state again.
func (s *Store) Logout() models.Session {
	return s.transition(models.Session{})
}

// Restore hydrates the store from a persisted snapshot at startup.
// Subscribers are NOT notified: restoring is not a state transition, and the
// persistence subscriber must not re-write what was just read.
func (s *Store) Restore(sess models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sess
}

// Subscribe registers a post-transition hook called with each new snapshot.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func(models.Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) transition(next models.Session) models.Session {
	s.mu.Lock()
	s.current = next
	subs := make([]func(models.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	// Hooks run outside the lock so a subscriber may call Read.
	for _, fn := range subs {
		fn(next)
	}
	return next
}
