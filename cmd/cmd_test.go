package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/questiongen"
	"github.com/shlvgit07/basmach/internal/quiz"
)

type stubGenerator struct {
	err error
}

func (g stubGenerator) Generate(_ context.Context, in questiongen.Input) ([]quiz.Question, error) {
	if g.err != nil {
		return nil, g.err
	}
	return []quiz.Question{
		{ID: "a", Topic: in.Topic, Prompt: "2+2?", Options: []string{"3", "4", "5", "6"}, CorrectIndex: 1, Explanation: "four"},
		{ID: "b", Topic: in.Topic, Prompt: "3+3?", Options: []string{"5", "6", "7", "8"}, CorrectIndex: 1, Explanation: "six"},
	}, nil
}

func (g stubGenerator) GenerateForTerm(ctx context.Context, term glossary.Term, n int) ([]quiz.Question, error) {
	return g.Generate(ctx, questiongen.Input{Topic: term.Category.Topic(), Count: n})
}

func TestPlaySession(t *testing.T) {
	// "x" and "9" are rejected before a valid answer is read.
	in := strings.NewReader("x\n9\n2\n1\n")
	var out bytes.Buffer

	err := playSession(context.Background(), stubGenerator{}, quiz.Start{Topic: quiz.TopicAlgorithms, Count: 2}, in, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Question 1/2")
	assert.Contains(t, text, "Please enter a number between 1 and 4.")
	assert.Contains(t, text, "✓ Correct!")
	assert.Contains(t, text, "Answer: 2")
	assert.Contains(t, text, "Summary: 1/2 correct (50%)")
}

func TestPlaySessionInputClosed(t *testing.T) {
	var out bytes.Buffer
	err := playSession(context.Background(), stubGenerator{}, quiz.Start{Topic: quiz.TopicSQL}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(input closed)")
	assert.Contains(t, out.String(), "Summary: 0/2 correct")
}

func TestPlaySessionGenerationFailure(t *testing.T) {
	var out bytes.Buffer
	err := playSession(context.Background(), stubGenerator{err: errors.New("down")}, quiz.Start{Topic: quiz.TopicSQL}, strings.NewReader(""), &out)
	require.Error(t, err)
	assert.Equal(t, quiz.GenerationFailedMessage, err.Error())
}

func TestGlossaryCommand(t *testing.T) {
	var out bytes.Buffer
	glossaryCmd.SetOut(&out)
	require.NoError(t, glossaryCmd.Flags().Set("category", "oop"))
	t.Cleanup(func() { _ = glossaryCmd.Flags().Set("category", "") })

	require.NoError(t, runGlossary(glossaryCmd, nil))

	for _, term := range glossary.Filter(glossary.Terms(), "", glossary.CategoryOOP) {
		assert.Contains(t, out.String(), term.Title)
	}
	for _, term := range glossary.Filter(glossary.Terms(), "", glossary.CategoryPseudo) {
		assert.NotContains(t, out.String(), term.ID+"  "+term.Title)
	}
}

func TestGlossaryCommandNoMatch(t *testing.T) {
	var out bytes.Buffer
	glossaryCmd.SetOut(&out)
	require.NoError(t, runGlossary(glossaryCmd, []string{"zzzzzz"}))
	assert.Contains(t, out.String(), "No terms found.")
}
