package translation

import "fmt"

// ModelErrorKind classifies translation failures.
type ModelErrorKind string

const (
	// ModelFailure covers every transport or provider-side error,
	// including quota and rate-limit rejections. The system does not
	// distinguish between them.
	ModelFailure ModelErrorKind = "model_failure"
)

// ModelError is returned when the generative model call fails.
type ModelError struct {
	Kind    ModelErrorKind
	Message string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("translation failed: %s", e.Message)
}
