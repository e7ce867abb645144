// Package questiongen turns LLM output into quiz questions. It owns the
// prompts, the response schema and the normalization that makes loosely
// typed provider JSON safe to hand to a quiz session.
package questiongen

import (
	"context"
	"errors"
	"fmt"

	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/quiz"
)

// ErrNoQuestions is returned when the provider answered but no usable
// question survived normalization.
var ErrNoQuestions = errors.New("no usable questions generated")

// Generator produces batches of multiple-choice questions.
type Generator interface {
	// Generate returns up to in.Count questions for a topic, in provider
	// order.
	Generate(ctx context.Context, in Input) ([]quiz.Question, error)

	// GenerateForTerm returns up to count questions that exercise a single
	// glossary concept.
	GenerateForTerm(ctx context.Context, term glossary.Term, count int) ([]quiz.Question, error)
}

// Input describes one topic-level generation request.
type Input struct {
	Topic quiz.Topic

	// Count is the number of questions requested. Zero means Config.Count.
	Count int

	// Difficulty narrows generation to one tier. DifficultyAny mixes tiers.
	Difficulty quiz.Difficulty
}

// ErrNoGenerator is returned by Fulfill when no generator is configured.
var ErrNoGenerator = errors.New("question generation is not configured")

// Fulfill runs the generation request of a loading session against g and
// returns the action that completes it. The result always carries
// req.Token, so a late answer is discarded by the session.
func Fulfill(ctx context.Context, g Generator, req quiz.Request) quiz.Action {
	qs, err := fulfill(ctx, g, req)
	if err != nil {
		return quiz.LoadFailed{Token: req.Token, Err: err}
	}
	return quiz.Loaded{Token: req.Token, Questions: qs}
}

func fulfill(ctx context.Context, g Generator, req quiz.Request) ([]quiz.Question, error) {
	if g == nil {
		return nil, ErrNoGenerator
	}
	if req.TermID == "" {
		return g.Generate(ctx, Input{Topic: req.Topic, Count: req.Count, Difficulty: req.Difficulty})
	}
	term, ok := glossary.Lookup(req.TermID)
	if !ok {
		return nil, fmt.Errorf("unknown glossary term %q", req.TermID)
	}
	return g.GenerateForTerm(ctx, term, req.Count)
}
