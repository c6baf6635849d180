package store

import "sync"

// Store is the synchronized handle to the shared State. All mutations go
// through Update, which runs against a deep copy and commits only when the
// whole operation succeeds, so a multi-step effect (stock adjustment + ledger
// posting + status write) is never observable partially applied.
type Store struct {
	mu       sync.RWMutex
	state    *State
	onCommit func(*State)
}

// New creates a store around the given initial state
func New(initial *State) *Store {
	if initial == nil {
		initial = NewState()
	}
	return &Store{state: initial}
}

// SetOnCommit registers a hook invoked with a copy of the state after every
// successful Update. The hosting application uses it to re-serialize the
// whole state to the snapshot gateway on each change.
func (s *Store) SetOnCommit(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onCommit = fn
}

// Update runs fn against a clone of the current state and commits the clone
// if fn returns nil. On error the state is untouched.
func (s *Store) Update(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.state = next

	if s.onCommit != nil {
		s.onCommit(s.state.Clone())
	}
	return nil
}

// View runs fn with read access to the current state. fn must not mutate the
// state or retain references past the call.
func (s *Store) View(fn func(*State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}
