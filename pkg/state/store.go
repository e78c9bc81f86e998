package state

import "go.uber.org/zap"

// Store owns the UIState. It is not safe for concurrent use; it is meant to be
// driven from the single goroutine that dispatches UI events.
type Store struct {
	current   UIState
	listeners []func()
	log       *zap.SugaredLogger
}

// NewStore creates a store seeded with initial. A nil logger disables logging.
func NewStore(initial UIState, log *zap.SugaredLogger) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{current: initial, log: log}
}

// State returns the current value.
func (s *Store) State() UIState {
	return s.current
}

// Subscribe registers fn to run after every SetState, in registration order.
func (s *Store) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// SetState merges p over the current state and re-renders unconditionally,
// even when nothing changed.
func (s *Store) SetState(p Patch) {
	if p.Empty() {
		s.log.Debugw("re-render requested without changes")
	} else {
		prev := s.current
		s.current = p.Apply(prev)
		s.log.Debugw("state updated",
			"authenticated", s.current.Authenticated,
			"screen", s.current.Screen,
			"view", s.current.View,
			"changed", prev != s.current,
		)
	}

	for _, fn := range s.listeners {
		fn()
	}
}
