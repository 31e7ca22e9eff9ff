package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps opaque session IDs (issued as browser cookies) to their
// State. States never outlive the process; there is no persistence
// across restarts.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[string]*State
	defaultPair LanguagePair
}

// NewRegistry creates an empty registry. New states start with the
// given default language pair.
func NewRegistry(defaultPair LanguagePair) *Registry {
	return &Registry{
		sessions:    make(map[string]*State),
		defaultPair: defaultPair,
	}
}

// Create issues a new session ID and its fresh unauthenticated State.
func (r *Registry) Create() (string, *State) {
	id := uuid.NewString()
	state := NewState(r.defaultPair)

	r.mu.Lock()
	r.sessions[id] = state
	r.mu.Unlock()

	return id, state
}

// Get returns the State for id, or nil if the session is unknown.
func (r *Registry) Get(id string) *State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// Drop removes the session entirely. Used when a session ends rather
// than merely logging out.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
