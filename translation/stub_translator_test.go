package translation

import (
	"context"
	"errors"
	"testing"
)

func TestStubTranslator_Translate(t *testing.T) {
	t.Parallel()

	translator := NewStubTranslator(nil)
	ctx := context.Background()

	result, err := translator.Translate(ctx, "Hello", "English", "Spanish")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if result.TranslatedText != "Hola" {
		t.Errorf("expected 'Hola', got %q", result.TranslatedText)
	}
	if result.SourceLang != "English" {
		t.Errorf("expected source lang 'English', got %q", result.SourceLang)
	}
	if result.TargetLang != "Spanish" {
		t.Errorf("expected target lang 'Spanish', got %q", result.TargetLang)
	}
}

func TestStubTranslator_TranslateUnknown(t *testing.T) {
	t.Parallel()

	translator := NewStubTranslator(nil)
	ctx := context.Background()

	result, err := translator.Translate(ctx, "Unknown text.", "English", "German")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	expected := "[German] Unknown text."
	if result.TranslatedText != expected {
		t.Errorf("expected %q, got %q", expected, result.TranslatedText)
	}
}

func TestStubTranslator_FailureInjection(t *testing.T) {
	t.Parallel()

	failure := &ModelError{Kind: ModelFailure, Message: "quota exceeded"}
	translator := NewStubTranslator(&StubTranslatorConfig{FailWith: failure})

	_, err := translator.Translate(context.Background(), "Hello", "English", "Spanish")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var modelErr *ModelError
	if !errors.As(err, &modelErr) {
		t.Fatalf("expected *ModelError, got %T", err)
	}
	if modelErr.Message != "quota exceeded" {
		t.Errorf("expected 'quota exceeded', got %q", modelErr.Message)
	}
	if translator.Calls != 1 {
		t.Errorf("expected 1 call, got %d", translator.Calls)
	}
}

func TestIsSupportedLanguage(t *testing.T) {
	t.Parallel()

	if !IsSupportedLanguage("English") {
		t.Error("expected English to be supported")
	}
	if !IsSupportedLanguage("Chinese (Simplified)") {
		t.Error("expected Chinese (Simplified) to be supported")
	}
	if IsSupportedLanguage("Klingon") {
		t.Error("expected Klingon to be unsupported")
	}
}
