package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mohitbakre/polyglot/di"
	"github.com/mohitbakre/polyglot/session"
	"github.com/mohitbakre/polyglot/translation"
)

// application bundles the dependencies shared by all handlers: the
// external-service container, the per-browser session registry, the
// parsed view templates and the logger.
type application struct {
	container *di.Container
	sessions  *session.Registry
	views     *viewRenderer
	logger    *zap.SugaredLogger
}

func newApplication(container *di.Container, logger *zap.SugaredLogger) *application {
	defaultPair := session.LanguagePair{
		Source: translation.Languages[0],
		Target: translation.Languages[1],
	}
	return &application{
		container: container,
		sessions:  session.NewRegistry(defaultPair),
		views:     newViewRenderer(),
		logger:    logger,
	}
}

func newRouter(app *application) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", indexHandler(app)).Methods(http.MethodGet)
	r.HandleFunc("/login", loginHandler(app)).Methods(http.MethodPost)
	r.HandleFunc("/register", registerHandler(app)).Methods(http.MethodPost)
	r.HandleFunc("/translate", translateHandler(app)).Methods(http.MethodPost)
	r.HandleFunc("/clear", clearChatHandler(app)).Methods(http.MethodPost)
	r.HandleFunc("/logout", logoutHandler(app)).Methods(http.MethodPost)
	r.HandleFunc("/healthz", healthHandler(app)).Methods(http.MethodGet)

	return loggingMiddleware(app.logger, r)
}
