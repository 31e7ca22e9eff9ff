package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultAuthBaseURL = "https://identitytoolkit.googleapis.com/v1/accounts:"

// IdentityConfig configures the identity-toolkit client.
type IdentityConfig struct {
	// APIKey authenticates against the identity provider. Required.
	APIKey string
	// BaseURL is the accounts endpoint prefix, ending with "accounts:".
	// Defaults to the Google identity-toolkit endpoint.
	BaseURL string
	// HTTPClient overrides the transport. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// IdentityClient speaks the identity provider's signUp and
// signInWithPassword REST endpoints.
type IdentityClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewIdentityClient creates a client for the configured provider.
func NewIdentityClient(cfg IdentityConfig) (*IdentityClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("identity client: api key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAuthBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &IdentityClient{apiKey: cfg.APIKey, baseURL: baseURL, client: client}, nil
}

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type providerErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignUp registers a new account with the provider.
func (c *IdentityClient) SignUp(ctx context.Context, email, password string) (UserAccount, error) {
	return c.post(ctx, "signUp", email, password)
}

// LogIn verifies credentials against the provider.
func (c *IdentityClient) LogIn(ctx context.Context, email, password string) (UserAccount, error) {
	return c.post(ctx, "signInWithPassword", email, password)
}

func (c *IdentityClient) post(ctx context.Context, operation, email, password string) (UserAccount, error) {
	payload, err := json.Marshal(credentialsRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return UserAccount{}, &AuthError{Kind: NetworkFailure, Message: fmt.Sprintf("encode request: %v", err)}
	}

	endpoint := c.baseURL + operation + "?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return UserAccount{}, &AuthError{Kind: NetworkFailure, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return UserAccount{}, &AuthError{Kind: NetworkFailure, Message: fmt.Sprintf("call provider: %v", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return UserAccount{}, &AuthError{Kind: NetworkFailure, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		message := fmt.Sprintf("provider returned status %d", resp.StatusCode)
		var providerErr providerErrorResponse
		if err := json.Unmarshal(body, &providerErr); err == nil && providerErr.Error.Message != "" {
			message = providerErr.Error.Message
		}
		return UserAccount{}, &AuthError{Kind: ProviderRejected, Message: message}
	}

	var account UserAccount
	if err := json.Unmarshal(body, &account); err != nil {
		return UserAccount{}, &AuthError{Kind: NetworkFailure, Message: fmt.Sprintf("decode response: %v", err)}
	}
	if account.Email == "" {
		account.Email = email
	}

	return account, nil
}
