package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/llm"
	"github.com/shlvgit07/basmach/internal/quiz"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	newBatch func() string
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		config:   cfg,
		newBatch: func() string { return uuid.NewString()[:8] },
	}
}

// Generate produces a batch of questions for a topic.
func (g *LLMGenerator) Generate(ctx context.Context, in Input) ([]quiz.Question, error) {
	if _, ok := topicPrompts[in.Topic]; !ok {
		return nil, fmt.Errorf("unknown topic %q", in.Topic)
	}
	if !in.Difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", in.Difficulty)
	}
	count := g.config.count(in.Count)

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)
	return g.run(ctx, buildTopicMessage(in.Topic, count, in.Difficulty), batch{
		topic:      in.Topic,
		difficulty: in.Difficulty,
		limit:      count,
	})
}

// GenerateForTerm produces questions scoped to a single glossary term.
// Questions are tagged with the quiz topic of the term's category.
func (g *LLMGenerator) GenerateForTerm(ctx context.Context, term glossary.Term, count int) ([]quiz.Question, error) {
	if term.ID == "" || term.Title == "" {
		return nil, fmt.Errorf("term is required")
	}
	count = g.config.count(count)

	ctx = llm.WithPurpose(ctx, llm.PurposeTermPractice)
	return g.run(ctx, buildTermMessage(term, count), batch{
		topic: term.Category.Topic(),
		limit: count,
	})
}

func (g *LLMGenerator) run(ctx context.Context, userMsg string, b batch) ([]quiz.Question, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw rawBatch
	if err := json.Unmarshal(llm.StripFences(resp.Content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	b.id = g.newBatch()
	b.validators = g.config.Validators
	questions, dropped := b.normalize(raw.Questions)
	if len(questions) == 0 {
		if len(dropped) > 0 {
			return nil, fmt.Errorf("%w: %d of %d items rejected, first: %v", ErrNoQuestions, len(dropped), len(raw.Questions), dropped[0])
		}
		return nil, ErrNoQuestions
	}
	return questions, nil
}
