package sessions

import (
	"Playroom/services/games"
	"sync"
)

// Session is one active game between exactly two participants. It is owned
// by the Store; engines and the tick loop receive a reference and mutate
// State in place while holding mu.
type Session struct {
	ID      string
	Variant string
	Players [2]string
	State   games.State

	mu       sync.Mutex
	stop     chan struct{}
	stopOnce sync.Once
}

// Room is the broadcast group carrying this session's events.
func (s *Session) Room() string {
	return s.ID
}

// HasPlayer reports whether username is one of the two participants.
func (s *Session) HasPlayer(username string) bool {
	return s.Players[0] == username || s.Players[1] == username
}

// stopLoop cancels the tick loop, if any. Safe to call more than once.
func (s *Session) stopLoop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// Store maps session ids to live sessions. It is the single source of truth:
// a session removed from the store is terminated, and any operation that
// re-checks membership and misses treats the session as already over.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (st *Store) add(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

// take removes and returns a session. The caller is expected to hold the
// session's own mutex, which is why this only touches the map.
func (st *Store) take(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if ok {
		delete(st.sessions, id)
	}
	return s, ok
}

// Get returns the live session for id, if any.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Len reports how many sessions are active.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// SessionsWith lists the ids of every session a participant is part of.
func (st *Store) SessionsWith(username string) []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	var ids []string
	for id, s := range st.sessions {
		if s.HasPlayer(username) {
			ids = append(ids, id)
		}
	}
	return ids
}

// With runs fn while holding the session's mutex, serializing it against
// every other move and tick on the same session. It reports false when the
// session no longer exists, in which case fn never runs; a stale move or a
// late tick is therefore a no-op.
func (st *Store) With(id string, fn func(s *Session)) bool {
	s, ok := st.Get(id)
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// The session may have been terminated while we waited for the lock.
	if current, ok := st.Get(id); !ok || current != s {
		return false
	}
	fn(s)
	return true
}
