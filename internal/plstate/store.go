package plstate

import "sync"

// Store holds the current PLState snapshot. It is constructed explicitly at
// application start and handed to consumers; there is no package-level
// instance. Dispatch swaps whole snapshots, so a reader never observes a mix
// of stale and fresh aggregation.
type Store struct {
	mu    sync.RWMutex
	state PLState
}

// NewStore creates a Store holding the empty initial state.
func NewStore() *Store {
	return &Store{state: Empty()}
}

// State returns the current snapshot.
func (s *Store) State() PLState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies an action through the reducer and publishes the resulting
// snapshot.
func (s *Store) Dispatch(a Action) PLState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}
