package questiongen

import "github.com/shlvgit07/basmach/internal/quiz"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Count is the batch size used when a request does not name one.
	Count int

	// MaxCount caps any single request.
	MaxCount int

	// MaxTokens is the token budget for the LLM response. A batch of
	// questions with step-by-step explanations is long.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Validators run in order on every normalized question. A question
	// failing any of them is dropped from the batch.
	Validators []Validator
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Count:       quiz.DefaultCount,
		MaxCount:    10,
		MaxTokens:   8192,
		Temperature: 0.8,
		Validators: []Validator{
			&OptionsValidator{},
			&ExplanationValidator{MaxLen: 4000},
		},
	}
}

// count resolves a requested count against the defaults and cap.
func (c Config) count(n int) int {
	if n <= 0 {
		n = c.Count
	}
	if n <= 0 {
		n = quiz.DefaultCount
	}
	if c.MaxCount > 0 && n > c.MaxCount {
		n = c.MaxCount
	}
	return n
}
