package translation

import "context"

// Translation represents a completed translation exchange.
type Translation struct {
	// SourceText is the original text that was translated.
	SourceText string `json:"sourceText"`
	// TranslatedText is the translated result, verbatim from the model.
	TranslatedText string `json:"translatedText"`
	// SourceLang is the source language name.
	SourceLang string `json:"sourceLang"`
	// TargetLang is the target language name.
	TargetLang string `json:"targetLang"`
}

// HealthStatus represents the health of a component.
type HealthStatus struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
}

// Translator converts text between languages.
type Translator interface {
	// Translate converts a single piece of text to the target language.
	// The returned text is the model's output with no post-processing;
	// correctness of the translation is delegated to the model.
	Translate(ctx context.Context, text string, sourceLang, targetLang string) (Translation, error)

	// SupportedLanguages returns the names of the supported languages.
	SupportedLanguages() []string

	// Health returns the current health status of the translator.
	Health() HealthStatus
}

// Languages is the fixed set of supported language names. Selector
// defaults are the first two entries, so order matters.
var Languages = []string{
	"English",
	"Hindi",
	"Spanish",
	"French",
	"German",
	"Japanese",
	"Chinese (Simplified)",
	"Telugu",
	"Tamil",
	"Kannada",
	"Malayalam",
	"Bengali",
	"Gujarati",
	"Punjabi",
}

// IsSupportedLanguage reports whether name is one of the supported languages.
func IsSupportedLanguage(name string) bool {
	for _, l := range Languages {
		if l == name {
			return true
		}
	}
	return false
}
