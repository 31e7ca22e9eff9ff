package main

import (
	"errors"
	"net/http"

	"github.com/mohitbakre/polyglot/auth"
)

// loginHandler verifies credentials with the identity provider and, on
// success, flips the session to authenticated and renders the
// translator view. Failures render the auth view with an inline error
// and leave the session untouched.
func loginHandler(app *application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := app.currentSession(w, r)

		email := r.PostFormValue("email")
		password := r.PostFormValue("password")

		if err := auth.ValidateLogin(email, password); err != nil {
			app.views.renderAuth(w, app.logger, authView{LoginEmail: email, LoginError: err.Error()})
			return
		}

		account, err := app.container.Authenticator.LogIn(r.Context(), email, password)
		if err != nil {
			app.logger.Infow("login rejected", "email", email, "error", err)
			app.views.renderAuth(w, app.logger, authView{LoginEmail: email, LoginError: loginErrorMessage(err)})
			return
		}

		state.OnAuthSuccess(account)
		app.logger.Infow("user logged in", "email", account.Email)
		renderTranslatorView(app, w, state)
	}
}

// registerHandler creates an account with the identity provider.
// Successful registration renders a notice on the auth view; the user
// logs in separately (no auto-login).
func registerHandler(app *application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.currentSession(w, r)

		email := r.PostFormValue("email")
		password := r.PostFormValue("password")
		confirm := r.PostFormValue("confirm")

		// Local checks short-circuit before any provider call.
		if err := auth.ValidateRegistration(email, password, confirm); err != nil {
			app.views.renderAuth(w, app.logger, authView{RegisterEmail: email, RegisterError: err.Error()})
			return
		}

		if _, err := app.container.Authenticator.SignUp(r.Context(), email, password); err != nil {
			app.logger.Infow("registration rejected", "email", email, "error", err)
			app.views.renderAuth(w, app.logger, authView{RegisterEmail: email, RegisterError: registerErrorMessage(err)})
			return
		}

		app.logger.Infow("user registered", "email", email)
		app.views.renderAuth(w, app.logger, authView{
			LoginEmail: email,
			Notice:     "Registration successful! You can now log in.",
		})
	}
}

// logoutHandler resets the session to its initial unauthenticated
// state: account, transcript and language selection are all cleared.
func logoutHandler(app *application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := app.currentSession(w, r)
		state.OnLogout()
		app.views.renderAuth(w, app.logger, authView{})
	}
}

func loginErrorMessage(err error) string {
	var authErr *auth.AuthError
	if errors.As(err, &authErr) {
		if authErr.Kind == auth.NetworkFailure {
			return "Login failed: " + authErr.Message
		}
		return "Error: " + authErr.Message
	}
	return "Login failed: " + err.Error()
}

func registerErrorMessage(err error) string {
	var authErr *auth.AuthError
	if errors.As(err, &authErr) {
		if authErr.Kind == auth.NetworkFailure {
			return "Signup failed: " + authErr.Message
		}
		return "Error: " + authErr.Message
	}
	return "Signup failed: " + err.Error()
}
