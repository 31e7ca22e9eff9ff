// Package auth wraps the identity provider's email/password endpoints
// behind a narrow Authenticator interface so handlers can be tested
// against an in-memory double.
package auth

import "context"

// UserAccount is the provider-issued identity returned on a successful
// sign-up or sign-in.
type UserAccount struct {
	// Email is the account email as echoed by the provider.
	Email string `json:"email"`
	// IDToken is the provider-issued bearer token.
	IDToken string `json:"idToken"`
	// LocalID is the provider-issued account identifier.
	LocalID string `json:"localId"`
}

// Authenticator creates and verifies accounts against the identity
// provider. Implementations do not mutate any session state; callers
// apply the returned account themselves.
type Authenticator interface {
	// SignUp registers a new account. Provider-defined rejections
	// (email in use, weak password) surface as *AuthError with kind
	// ProviderRejected.
	SignUp(ctx context.Context, email, password string) (UserAccount, error)

	// LogIn verifies credentials against an existing account. Invalid
	// credentials surface as *AuthError with kind ProviderRejected.
	LogIn(ctx context.Context, email, password string) (UserAccount, error)
}
