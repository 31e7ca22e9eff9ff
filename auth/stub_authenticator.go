package auth

import (
	"context"
	"fmt"
	"sync"
)

// StubAuthenticator is a test implementation backed by an in-memory
// account registry. Tokens and local IDs are deterministic.
type StubAuthenticator struct {
	mu       sync.Mutex
	accounts map[string]string // email -> password
	nextID   int

	// SignUpCalls and LogInCalls count provider-call attempts, letting
	// tests assert that local validation short-circuited.
	SignUpCalls int
	LogInCalls  int

	// FailWith, when non-nil, makes every call fail with this error.
	FailWith error
}

// NewStubAuthenticator creates an empty in-memory authenticator.
func NewStubAuthenticator() *StubAuthenticator {
	return &StubAuthenticator{accounts: make(map[string]string)}
}

// SignUp registers the account in memory. Rejects duplicate emails and
// short passwords the way the real provider does.
func (s *StubAuthenticator) SignUp(ctx context.Context, email, password string) (UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SignUpCalls++

	if s.FailWith != nil {
		return UserAccount{}, s.FailWith
	}
	if _, exists := s.accounts[email]; exists {
		return UserAccount{}, &AuthError{Kind: ProviderRejected, Message: "EMAIL_EXISTS"}
	}
	if len(password) < MinPasswordLength {
		return UserAccount{}, &AuthError{Kind: ProviderRejected, Message: "WEAK_PASSWORD : Password should be at least 6 characters"}
	}

	s.accounts[email] = password
	s.nextID++

	return UserAccount{
		Email:   email,
		IDToken: fmt.Sprintf("stub-token-%d", s.nextID),
		LocalID: fmt.Sprintf("stub-user-%d", s.nextID),
	}, nil
}

// LogIn verifies credentials against the in-memory registry.
func (s *StubAuthenticator) LogIn(ctx context.Context, email, password string) (UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.LogInCalls++

	if s.FailWith != nil {
		return UserAccount{}, s.FailWith
	}
	stored, exists := s.accounts[email]
	if !exists {
		return UserAccount{}, &AuthError{Kind: ProviderRejected, Message: "EMAIL_NOT_FOUND"}
	}
	if stored != password {
		return UserAccount{}, &AuthError{Kind: ProviderRejected, Message: "INVALID_PASSWORD"}
	}

	s.nextID++

	return UserAccount{
		Email:   email,
		IDToken: fmt.Sprintf("stub-token-%d", s.nextID),
		LocalID: fmt.Sprintf("stub-user-%d", s.nextID),
	}, nil
}
