package questiongen

import (
	"fmt"
	"strings"

	"github.com/shlvgit07/basmach/internal/quiz"
)

// Validator checks a normalized question. Implementations should be
// stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages.
	Name() string

	// Validate returns nil if q is usable.
	Validate(q *quiz.Question) *ValidationError
}

// ValidationError describes why a question was dropped.
type ValidationError struct {
	Validator string
	Index     int // position in the provider's batch
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("item %d: validator %q: %s", e.Index, e.Validator, e.Message)
}

// OptionsValidator rejects questions whose options repeat or mix text with
// SVG markup.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *quiz.Question) *ValidationError {
	seen := make(map[string]bool, len(q.Options))
	svg := 0
	for _, o := range q.Options {
		key := strings.ToLower(strings.Join(strings.Fields(o), " "))
		if seen[key] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate option %q", o)}
		}
		seen[key] = true
		if isSVG(o) {
			svg++
		}
	}
	if svg != 0 && svg != len(q.Options) {
		return &ValidationError{Validator: v.Name(), Message: "options mix text and svg"}
	}
	return nil
}

// ExplanationValidator bounds the explanation length.
type ExplanationValidator struct {
	MaxLen int // in runes; zero disables the check
}

func (v *ExplanationValidator) Name() string { return "explanation" }

func (v *ExplanationValidator) Validate(q *quiz.Question) *ValidationError {
	if v.MaxLen > 0 && len([]rune(q.Explanation)) > v.MaxLen {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("explanation exceeds %d characters", v.MaxLen)}
	}
	return nil
}
