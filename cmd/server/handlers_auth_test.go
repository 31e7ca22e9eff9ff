package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/mohitbakre/polyglot/auth"
	"github.com/mohitbakre/polyglot/session"
)

// postForm builds a form POST carrying the given session's cookie.
func postForm(t *testing.T, path, sessionID string, form url.Values) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionID})
	}
	return req
}

func newSession(t *testing.T, app *application) (string, *session.State) {
	t.Helper()
	return app.sessions.Create()
}

func seedAccount(t *testing.T, app *application, email, password string) {
	t.Helper()

	stub := app.container.Authenticator.(*auth.StubAuthenticator)
	if _, err := stub.SignUp(context.Background(), email, password); err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	stub.SignUpCalls = 0
}

func TestLoginHandler_Success(t *testing.T) {
	app := newTestApplication()
	seedAccount(t, app, "user@example.com", "secret1")
	id, state := newSession(t, app)

	form := url.Values{"email": {"user@example.com"}, "password": {"secret1"}}
	rr := httptest.NewRecorder()
	loginHandler(app).ServeHTTP(rr, postForm(t, "/login", id, form))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !state.Authenticated() {
		t.Fatal("expected session to be authenticated")
	}
	if got := state.Account().Email; got != "user@example.com" {
		t.Fatalf("expected account email to be set, got %q", got)
	}
	if !strings.Contains(rr.Body.String(), "Welcome, user@example.com") {
		t.Error("expected translator view to greet the user")
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	app := newTestApplication()
	seedAccount(t, app, "user@example.com", "secret1")
	id, state := newSession(t, app)

	form := url.Values{"email": {"user@example.com"}, "password": {"wrong-pass"}}
	rr := httptest.NewRecorder()
	loginHandler(app).ServeHTTP(rr, postForm(t, "/login", id, form))

	if state.Authenticated() {
		t.Fatal("expected session to remain unauthenticated")
	}
	if !strings.Contains(rr.Body.String(), "INVALID_PASSWORD") {
		t.Errorf("expected inline provider error, got body %q", rr.Body.String())
	}
}

func TestLoginHandler_EmptyFields(t *testing.T) {
	app := newTestApplication()
	id, state := newSession(t, app)

	rr := httptest.NewRecorder()
	loginHandler(app).ServeHTTP(rr, postForm(t, "/login", id, url.Values{}))

	if state.Authenticated() {
		t.Fatal("expected session to remain unauthenticated")
	}
	stub := app.container.Authenticator.(*auth.StubAuthenticator)
	if stub.LogInCalls != 0 {
		t.Fatalf("expected no provider calls, got %d", stub.LogInCalls)
	}
	if !strings.Contains(rr.Body.String(), "please enter both email and password") {
		t.Error("expected validation message in response")
	}
}

func TestRegisterHandler_SuccessDoesNotAutoLogin(t *testing.T) {
	app := newTestApplication()
	id, state := newSession(t, app)

	form := url.Values{
		"email":    {"new@example.com"},
		"password": {"secret1"},
		"confirm":  {"secret1"},
	}
	rr := httptest.NewRecorder()
	registerHandler(app).ServeHTTP(rr, postForm(t, "/register", id, form))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if state.Authenticated() {
		t.Fatal("registration must not auto-login")
	}
	if !strings.Contains(rr.Body.String(), "Registration successful! You can now log in.") {
		t.Error("expected success notice on auth view")
	}

	// The new account works for a subsequent login.
	rr = httptest.NewRecorder()
	loginForm := url.Values{"email": {"new@example.com"}, "password": {"secret1"}}
	loginHandler(app).ServeHTTP(rr, postForm(t, "/login", id, loginForm))
	if !state.Authenticated() {
		t.Fatal("expected login after registration to succeed")
	}
}

func TestRegisterHandler_MismatchNeverCallsProvider(t *testing.T) {
	app := newTestApplication()
	id, _ := newSession(t, app)

	form := url.Values{
		"email":    {"new@example.com"},
		"password": {"secret1"},
		"confirm":  {"secret2"},
	}
	rr := httptest.NewRecorder()
	registerHandler(app).ServeHTTP(rr, postForm(t, "/register", id, form))

	stub := app.container.Authenticator.(*auth.StubAuthenticator)
	if stub.SignUpCalls != 0 {
		t.Fatalf("expected 0 provider calls, got %d", stub.SignUpCalls)
	}
	if !strings.Contains(rr.Body.String(), "passwords do not match") {
		t.Error("expected validation message in response")
	}
}

func TestRegisterHandler_ShortPasswordNeverCallsProvider(t *testing.T) {
	app := newTestApplication()
	id, _ := newSession(t, app)

	form := url.Values{
		"email":    {"new@example.com"},
		"password": {"abc"},
		"confirm":  {"abc"},
	}
	rr := httptest.NewRecorder()
	registerHandler(app).ServeHTTP(rr, postForm(t, "/register", id, form))

	stub := app.container.Authenticator.(*auth.StubAuthenticator)
	if stub.SignUpCalls != 0 {
		t.Fatalf("expected 0 provider calls, got %d", stub.SignUpCalls)
	}
	if !strings.Contains(rr.Body.String(), "password must be at least 6 characters long") {
		t.Error("expected validation message in response")
	}
}

func TestLogoutHandler_ClearsSession(t *testing.T) {
	app := newTestApplication()
	id, state := newSession(t, app)
	state.OnAuthSuccess(auth.UserAccount{Email: "user@example.com", IDToken: "tok"})
	state.AppendTurn(session.ChatTurn{Role: session.RoleUser, Content: "hello"})

	rr := httptest.NewRecorder()
	logoutHandler(app).ServeHTTP(rr, postForm(t, "/logout", id, url.Values{}))

	if state.Authenticated() {
		t.Fatal("expected session to be unauthenticated after logout")
	}
	if state.TranscriptLen() != 0 {
		t.Fatalf("expected empty transcript after logout, got %d turns", state.TranscriptLen())
	}
	if state.Account() != (auth.UserAccount{}) {
		t.Fatal("expected account to be cleared")
	}
	if !strings.Contains(rr.Body.String(), "Please Login or Register to continue.") {
		t.Error("expected auth view after logout")
	}

	// Logout is idempotent.
	rr = httptest.NewRecorder()
	logoutHandler(app).ServeHTTP(rr, postForm(t, "/logout", id, url.Values{}))
	if state.Authenticated() || state.TranscriptLen() != 0 {
		t.Fatal("expected second logout to leave the same empty state")
	}
}
