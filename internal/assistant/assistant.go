// Package assistant answers free-text questions about the app and the exam.
// Each reply is a single stateless provider call.
package assistant

import (
	"context"
	"strings"

	"github.com/shlvgit07/basmach/internal/llm"
)

// FallbackReply replaces the reply whenever the provider call fails.
const FallbackReply = "מצטער, נתקלתי בבעיה. נסה שוב מאוחר יותר."

// WelcomeMessage opens every transcript.
const WelcomeMessage = "היי! אני העוזר האישי שלך באתר. אפשר לשאול אותי על האתר, או להציע רעיונות לשיפור!"

const systemPrompt = `You are the assistant of "Basmach AI", a study app that prepares students for the IDF Basmach (Mamram) programming course entrance exams.

About the app:
- Practice quizzes on six topics: computer instructions (pseudo-code execution), logic and shape series, algorithmic thinking, object-oriented programming, technical English and SQL.
- Every quiz is a short batch of generated multiple-choice questions with step-by-step explanations, an optional difficulty filter, and a score summary at the end.
- A dictionary of key terms (loops, arrays, recursion, sorting, classes, inheritance and more) with worked examples; any term can be turned into a focused practice quiz.

Rules:
- Answer in Hebrew, briefly and kindly. Technical terms may stay in English.
- You can explain exam concepts, give study tips, and collect suggestions for improving the app.
- You have no memory of earlier messages; if a question depends on context the user did not give, ask for it.`

// Config controls reply generation.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxMessageRunes truncates overly long user messages. Zero disables.
	MaxMessageRunes int
}

// DefaultConfig returns the standard chat settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       1024,
		Temperature:     0.7,
		MaxMessageRunes: 2000,
	}
}

// Service produces chat replies. A Service with a nil provider always
// answers with FallbackReply.
type Service struct {
	provider llm.Provider
	config   Config
}

// New creates a Service. provider may be nil when no LLM is configured.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// Reply returns the assistant's answer to message. Blank messages return ""
// without calling the provider. Failures never surface as errors: the
// caller gets FallbackReply and can show it like any other reply.
func (s *Service) Reply(ctx context.Context, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return ""
	}
	if s == nil || s.provider == nil {
		return FallbackReply
	}
	if n := s.config.MaxMessageRunes; n > 0 {
		if r := []rune(message); len(r) > n {
			message = string(r[:n])
		}
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeChat)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: message}},
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return FallbackReply
	}

	reply := resp.Text()
	if reply == "" {
		return FallbackReply
	}
	return reply
}
