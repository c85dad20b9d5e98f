// Package state is the shared application state with change subscriptions
package state

import (
	"sync"
)

// Key names one field of the application state
type Key uint8

const (
	KeyCurrentSection Key = iota
	KeyExpanded
	KeySoundEnabled
	KeyDragging
	KeyTheme
	KeyAutoPlaying
	keyCount
)

// Theme values
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// State is a value snapshot of the application state
type State struct {
	CurrentSection string // Empty until a needle drop
	Expanded       bool
	SoundEnabled   bool
	Dragging       bool
	Theme          string
	AutoPlaying    bool
}

// Default returns the initial application state
func Default() State {
	return State{Theme: ThemeDark}
}

// Change sets one key to a value
type Change struct {
	Key   Key
	Value any
}

// Set builds a Change
func Set(key Key, value any) Change {
	return Change{Key: key, Value: value}
}

// Listener receives the new and previous value of a changed key
type Listener func(value, prev any)

// Store holds the state and notifies subscribers on actual changes
type Store struct {
	mu        sync.Mutex
	state     State
	listeners [keyCount][]Listener
}

// NewStore creates a store seeded with initial
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for changes to key
func (s *Store) Subscribe(key Key, fn Listener) {
	if key >= keyCount || fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners[key] = append(s.listeners[key], fn)
	s.mu.Unlock()
}

type notification struct {
	key         Key
	value, prev any
}

// Write applies changes and notifies listeners for every value that differs
// Changes with an unknown key or a mistyped value are ignored
func (s *Store) Write(changes ...Change) {
	s.mu.Lock()
	var pending []notification
	for _, c := range changes {
		prev, ok := s.get(c.Key)
		if !ok || prev == c.Value {
			continue
		}
		if !s.set(c.Key, c.Value) {
			continue
		}
		pending = append(pending, notification{key: c.Key, value: c.Value, prev: prev})
	}
	listeners := s.listeners
	s.mu.Unlock()

	// Outside the lock so listeners may write back
	for _, n := range pending {
		for _, fn := range listeners[n.key] {
			fn(n.value, n.prev)
		}
	}
}

func (s *Store) get(key Key) (any, bool) {
	switch key {
	case KeyCurrentSection:
		return s.state.CurrentSection, true
	case KeyExpanded:
		return s.state.Expanded, true
	case KeySoundEnabled:
		return s.state.SoundEnabled, true
	case KeyDragging:
		return s.state.Dragging, true
	case KeyTheme:
		return s.state.Theme, true
	case KeyAutoPlaying:
		return s.state.AutoPlaying, true
	}
	return nil, false
}

func (s *Store) set(key Key, value any) bool {
	switch key {
	case KeyCurrentSection, KeyTheme:
		v, ok := value.(string)
		if !ok {
			return false
		}
		if key == KeyTheme {
			s.state.Theme = v
		} else {
			s.state.CurrentSection = v
		}
	case KeyExpanded, KeySoundEnabled, KeyDragging, KeyAutoPlaying:
		v, ok := value.(bool)
		if !ok {
			return false
		}
		switch key {
		case KeyExpanded:
			s.state.Expanded = v
		case KeySoundEnabled:
			s.state.SoundEnabled = v
		case KeyDragging:
			s.state.Dragging = v
		case KeyAutoPlaying:
			s.state.AutoPlaying = v
		}
	default:
		return false
	}
	return true
}
