package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mohitbakre/polyglot/session"
	"github.com/mohitbakre/polyglot/translation"
)

// indexHandler re-derives the view from current session state: the
// auth view until logged in, the translator view after.
func indexHandler(app *application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := app.currentSession(w, r)
		if !state.Authenticated() {
			app.views.renderAuth(w, app.logger, authView{})
			return
		}
		renderTranslatorView(app, w, state)
	}
}

// translateHandler appends the user turn with the selected language
// pair, calls the translator, and appends the result as an assistant
// turn. Translation failures are recorded in the transcript as an
// assistant turn rather than shown as a transient notice; the user
// turn is not rolled back.
func translateHandler(app *application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := app.currentSession(w, r)
		if !state.Authenticated() {
			app.views.renderAuth(w, app.logger, authView{})
			return
		}

		pair := state.Languages()
		if source := r.PostFormValue("source"); translation.IsSupportedLanguage(source) {
			pair.Source = source
		}
		if target := r.PostFormValue("target"); translation.IsSupportedLanguage(target) {
			pair.Target = target
		}
		state.SetLanguages(pair)

		text := strings.TrimSpace(r.PostFormValue("text"))
		if text == "" {
			renderTranslatorView(app, w, state)
			return
		}

		// Transcript grows without a cap for the life of the session.
		state.AppendTurn(session.ChatTurn{
			Role:       session.RoleUser,
			Content:    text,
			SourceLang: pair.Source,
			TargetLang: pair.Target,
		})

		result, err := app.container.Translator.Translate(r.Context(), text, pair.Source, pair.Target)
		if err != nil {
			app.logger.Errorw("translation failed",
				"error", err,
				"source", pair.Source,
				"target", pair.Target,
			)
			state.AppendTurn(session.ChatTurn{
				Role:    session.RoleAssistant,
				Content: fmt.Sprintf("Error: An error occurred during translation: %v", err),
			})
			renderTranslatorView(app, w, state)
			return
		}

		state.AppendTurn(session.ChatTurn{
			Role:    session.RoleAssistant,
			Content: result.TranslatedText,
		})
		renderTranslatorView(app, w, state)
	}
}

// clearChatHandler replaces the transcript with a single fresh
// assistant greeting turn.
func clearChatHandler(app *application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := app.currentSession(w, r)
		if !state.Authenticated() {
			app.views.renderAuth(w, app.logger, authView{})
			return
		}
		state.ClearChat()
		renderTranslatorView(app, w, state)
	}
}

// healthHandler reports liveness plus the translator's health.
func healthHandler(app *application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"status":     "ok",
			"translator": app.container.Translator.Health(),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			app.logger.Errorw("failed to write health response", "error", err)
		}
	}
}

func renderTranslatorView(app *application, w http.ResponseWriter, state *session.State) {
	pair := state.Languages()
	app.views.renderTranslator(w, app.logger, translatorView{
		Email:      state.Account().Email,
		Languages:  app.container.Translator.SupportedLanguages(),
		Source:     pair.Source,
		Target:     pair.Target,
		Transcript: state.Transcript(),
	})
}
