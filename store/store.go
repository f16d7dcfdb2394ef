package store

import "sync"

// Store owns the current State and notifies subscribers after every
// dispatched action.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers []func(State)
}

// New returns a store seeded with initial.
func New(initial State) *Store {
	return &Store{state: initial}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies actions in order and returns the resulting state.
func (s *Store) Dispatch(actions ...Action) State {
	s.mu.Lock()
	for _, a := range actions {
		if a == nil {
			continue
		}
		s.state = Reduce(s.state, a)
	}
	st := s.state
	subs := append([]func(State){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
	return st
}

// Subscribe registers fn to be called with the new state after each dispatch.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
