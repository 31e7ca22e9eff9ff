package main

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mohitbakre/polyglot/session"
)

const sessionCookieName = "polyglot_session"

// currentSession resolves the browser session from the request cookie,
// creating a fresh unauthenticated session (and setting the cookie)
// when the cookie is absent or references an unknown session.
func (app *application) currentSession(w http.ResponseWriter, r *http.Request) *session.State {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if state := app.sessions.Get(cookie.Value); state != nil {
			return state
		}
	}

	id, state := app.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return state
}

func loggingMiddleware(logger *zap.SugaredLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r)
		logger.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", lrw.statusCode,
			"duration", time.Since(start),
		)
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(statusCode int) {
	lrw.statusCode = statusCode
	lrw.ResponseWriter.WriteHeader(statusCode)
}
