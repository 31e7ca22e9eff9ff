package translation

import (
	"context"
	"time"
)

// StubTranslatorConfig configures the stub translator behavior.
type StubTranslatorConfig struct {
	// ProcessingDelay simulates translation processing time.
	ProcessingDelay time.Duration
	// Dictionary maps source text to translated text.
	// If nil, returns "[Lang] " prefix + original text.
	Dictionary map[string]map[string]string // [targetLang][sourceText]translatedText
	// FailWith, when non-nil, makes every Translate call fail with this
	// error. Used to exercise failure paths.
	FailWith error
}

// DefaultStubTranslatorConfig returns sensible defaults for testing.
func DefaultStubTranslatorConfig() *StubTranslatorConfig {
	return &StubTranslatorConfig{
		Dictionary: map[string]map[string]string{
			"Spanish": {
				"Hello":            "Hola",
				"Good morning":     "Buenos días",
				"Thank you":        "Gracias",
				"How are you?":     "¿Cómo estás?",
				"See you tomorrow": "Hasta mañana",
			},
			"French": {
				"Hello":            "Bonjour",
				"Good morning":     "Bonjour",
				"Thank you":        "Merci",
				"How are you?":     "Comment ça va ?",
				"See you tomorrow": "À demain",
			},
		},
	}
}

// StubTranslator is a test implementation that returns deterministic
// translations without calling any external model.
type StubTranslator struct {
	config *StubTranslatorConfig

	// Calls counts Translate invocations.
	Calls int
}

// NewStubTranslator creates a new stub translator with the given config.
func NewStubTranslator(config *StubTranslatorConfig) *StubTranslator {
	if config == nil {
		config = DefaultStubTranslatorConfig()
	}
	return &StubTranslator{config: config}
}

// Translate converts a single piece of text.
func (s *StubTranslator) Translate(ctx context.Context, text string, sourceLang, targetLang string) (Translation, error) {
	s.Calls++

	if s.config.ProcessingDelay > 0 {
		select {
		case <-time.After(s.config.ProcessingDelay):
		case <-ctx.Done():
			return Translation{}, ctx.Err()
		}
	}

	if s.config.FailWith != nil {
		return Translation{}, s.config.FailWith
	}

	return Translation{
		SourceText:     text,
		TranslatedText: s.lookupTranslation(text, targetLang),
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
	}, nil
}

// lookupTranslation finds a translation in the dictionary or generates a default.
func (s *StubTranslator) lookupTranslation(text, targetLang string) string {
	if langDict, ok := s.config.Dictionary[targetLang]; ok {
		if translated, ok := langDict[text]; ok {
			return translated
		}
	}
	// Default: prefix with language name
	return "[" + targetLang + "] " + text
}

// SupportedLanguages returns the fixed language list.
func (s *StubTranslator) SupportedLanguages() []string {
	return Languages
}

// Health returns the health status of the stub translator.
func (s *StubTranslator) Health() HealthStatus {
	return HealthStatus{
		Healthy: true,
		Message: "stub translator ready",
	}
}
