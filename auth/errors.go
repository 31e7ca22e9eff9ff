package auth

import "fmt"

// AuthErrorKind classifies failures from the identity provider.
type AuthErrorKind string

const (
	// ProviderRejected means the provider returned a 4xx with an error
	// body (invalid credentials, email already in use, weak password —
	// provider-defined codes, not enumerated here).
	ProviderRejected AuthErrorKind = "provider_rejected"
	// NetworkFailure means the request never produced a provider
	// response.
	NetworkFailure AuthErrorKind = "network_failure"
)

// AuthError is returned when a provider call fails.
type AuthError struct {
	Kind    AuthErrorKind
	Message string
}

func (e *AuthError) Error() string {
	if e.Kind == NetworkFailure {
		return fmt.Sprintf("auth request failed: %s", e.Message)
	}
	return fmt.Sprintf("auth rejected: %s", e.Message)
}

// ValidationError is returned by local input checks before any network
// call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
