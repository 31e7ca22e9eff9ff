// Package session holds the per-browser-session state: the
// authentication flag, the account record, the chat transcript and the
// selected language pair.
package session

import (
	"sync"

	"github.com/mohitbakre/polyglot/auth"
)

// Role identifies who produced a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Greeting is the assistant turn seeding a fresh transcript.
const Greeting = "Hello! I'm your AI translator. Select languages and type to translate."

// ClearedGreeting replaces the transcript after Clear Chat.
const ClearedGreeting = "Chat cleared! How can I help you now?"

// ChatTurn is one entry in the transcript. SourceLang and TargetLang
// are set only on user turns.
type ChatTurn struct {
	Role       Role   `json:"role"`
	Content    string `json:"content"`
	SourceLang string `json:"sourceLang,omitempty"`
	TargetLang string `json:"targetLang,omitempty"`
}

// LanguagePair is the selection applied to the next submission.
type LanguagePair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// State is the mutable state of one browser session. Each session owns
// its State exclusively; the mutex only guards against the HTTP
// server's goroutine-per-request model, not cross-session sharing.
type State struct {
	mu            sync.Mutex
	authenticated bool
	account       auth.UserAccount
	transcript    []ChatTurn
	languages     LanguagePair
	defaultPair   LanguagePair
}

// NewState creates an unauthenticated state with an empty transcript
// and the given default language pair.
func NewState(defaultPair LanguagePair) *State {
	return &State{
		languages:   defaultPair,
		defaultPair: defaultPair,
	}
}

// Authenticated reports whether the session has logged in.
func (s *State) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Account returns the logged-in account. The zero value is returned
// while unauthenticated.
func (s *State) Account() auth.UserAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

// OnAuthSuccess marks the session authenticated and seeds the greeting
// turn if the transcript is empty.
func (s *State) OnAuthSuccess(account auth.UserAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = true
	s.account = account
	if len(s.transcript) == 0 {
		s.transcript = []ChatTurn{{Role: RoleAssistant, Content: Greeting}}
	}
}

// OnLogout resets the session to its initial state: account, flag,
// transcript and language selection are all cleared. Idempotent.
func (s *State) OnLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = false
	s.account = auth.UserAccount{}
	s.transcript = nil
	s.languages = s.defaultPair
}

// AppendTurn pushes a turn onto the end of the transcript. The
// transcript is append-only and uncapped; it grows for the lifetime of
// the session.
func (s *State) AppendTurn(turn ChatTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, turn)
}

// ClearChat replaces the transcript with a single fresh greeting turn.
func (s *State) ClearChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = []ChatTurn{{Role: RoleAssistant, Content: ClearedGreeting}}
}

// Transcript returns a copy of the transcript, oldest first.
func (s *State) Transcript() []ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ChatTurn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// TranscriptLen returns the number of turns without copying.
func (s *State) TranscriptLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transcript)
}

// Languages returns the current language pair.
func (s *State) Languages() LanguagePair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.languages
}

// SetLanguages updates the language pair. Source and target may be
// equal; no distinctness constraint is imposed.
func (s *State) SetLanguages(pair LanguagePair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.languages = pair
}
