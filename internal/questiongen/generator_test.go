package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/llm"
	"github.com/shlvgit07/basmach/internal/quiz"
)

const twoQuestions = `{"questions":[
 {"question":"כמה פעמים תרוץ הלולאה?","code":"1. Move 0 to I\n2. Add 1 to I\n3. Jump to line 2 if I < 3","illustration":"",
  "options":["1","2","3","4"],"options_kind":"text","correct_index":2,"explanation":"I גדל מ-0 עד 3, שלוש איטרציות.","difficulty":"Medium"},
 {"question":"מה ערכו של A?","code":"Move 2 to A\nAdd A to A","illustration":"",
  "options":["2","4","6","8"],"options_kind":"text","correct_index":1,"explanation":"2+2=4","difficulty":"Easy"}
]}`

func newTestGenerator(responses ...llm.MockResponse) (*LLMGenerator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	g := New(mock, DefaultConfig())
	g.newBatch = func() string { return "batch" }
	return g, mock
}

func TestGenerate_HappyPath(t *testing.T) {
	g, mock := newTestGenerator(llm.MockResponse{Content: json.RawMessage(twoQuestions)})

	got, err := g.Generate(context.Background(), Input{Topic: quiz.TopicPseudoCode, Count: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "pseudo_code-batch-0", got[0].ID)
	assert.Equal(t, "pseudo_code-batch-1", got[1].ID)
	assert.Equal(t, 2, got[0].CorrectIndex)
	assert.Equal(t, quiz.DifficultyEasy, got[1].Difficulty)

	req, ok := mock.LastCall()
	require.True(t, ok)
	assert.Equal(t, QuestionsSchema, req.Schema)
	assert.Equal(t, systemPrompt, req.System)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "Generate 2 multiple-choice questions")
	assert.Contains(t, req.Messages[0].Content, "Machvon Krav")
}

func TestGenerate_DefaultsAndCapsCount(t *testing.T) {
	g, mock := newTestGenerator(
		llm.MockResponse{Content: json.RawMessage(twoQuestions)},
		llm.MockResponse{Content: json.RawMessage(twoQuestions)},
	)

	_, err := g.Generate(context.Background(), Input{Topic: quiz.TopicSQL})
	require.NoError(t, err)
	req, _ := mock.LastCall()
	assert.Contains(t, req.Messages[0].Content, "Generate 5 multiple-choice questions")

	_, err = g.Generate(context.Background(), Input{Topic: quiz.TopicSQL, Count: 50})
	require.NoError(t, err)
	req, _ = mock.LastCall()
	assert.Contains(t, req.Messages[0].Content, "Generate 10 multiple-choice questions")
}

func TestGenerate_TruncatesToRequestedCount(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(twoQuestions)})

	got, err := g.Generate(context.Background(), Input{Topic: quiz.TopicPseudoCode, Count: 1})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGenerate_DifficultyFilter(t *testing.T) {
	g, mock := newTestGenerator(llm.MockResponse{Content: json.RawMessage(
		`{"questions":[{"question":"2, 4, 8, ?","code":"","illustration":"","options":["10","12","16","32"],"options_kind":"text","correct_index":2,"explanation":"כל איבר כפול מקודמו.","difficulty":"??"}]}`,
	)})

	got, err := g.Generate(context.Background(), Input{Topic: quiz.TopicLogicSeries, Difficulty: quiz.DifficultyHard})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, quiz.DifficultyHard, got[0].Difficulty)

	req, _ := mock.LastCall()
	assert.Contains(t, req.Messages[0].Content, "All questions must be Hard")
}

func TestGenerate_DifficultyFilterDropsOtherTiers(t *testing.T) {
	// twoQuestions is tagged Medium and Easy.
	g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(twoQuestions)})
	_, err := g.Generate(context.Background(), Input{Topic: quiz.TopicPseudoCode, Count: 2, Difficulty: quiz.DifficultyHard})
	assert.ErrorIs(t, err, ErrNoQuestions)

	mixed := strings.Replace(twoQuestions, `"difficulty":"Easy"`, `"difficulty":"Hard"`, 1)
	g, _ = newTestGenerator(llm.MockResponse{Content: json.RawMessage(mixed)})
	got, err := g.Generate(context.Background(), Input{Topic: quiz.TopicPseudoCode, Count: 2, Difficulty: quiz.DifficultyHard})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "מה ערכו של A?", got[0].Prompt)
	assert.Equal(t, quiz.DifficultyHard, got[0].Difficulty)
}

func TestGenerate_RejectsUnknownInput(t *testing.T) {
	g, mock := newTestGenerator()

	_, err := g.Generate(context.Background(), Input{Topic: "history"})
	assert.Error(t, err)
	_, err = g.Generate(context.Background(), Input{Topic: quiz.TopicOOP, Difficulty: "Insane"})
	assert.Error(t, err)
	assert.Zero(t, mock.CallCount())
}

func TestGenerate_NoUsableQuestions(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty batch", `{"questions":[]}`},
		{"all malformed", `{"questions":[{"question":"","code":"","illustration":"","options":["a"],"options_kind":"text","correct_index":9,"explanation":"","difficulty":""}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(tt.content)})
			_, err := g.Generate(context.Background(), Input{Topic: quiz.TopicAlgorithms})
			assert.ErrorIs(t, err, ErrNoQuestions)
		})
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	_, err := g.Generate(context.Background(), Input{Topic: quiz.TopicEnglish})
	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestGenerate_Unparseable(t *testing.T) {
	g, _ := newTestGenerator(llm.TextResponse("sorry, I cannot help with that"))

	_, err := g.Generate(context.Background(), Input{Topic: quiz.TopicEnglish})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoQuestions)
}

func TestGenerateForTerm(t *testing.T) {
	term, ok := glossary.Lookup("o1")
	require.True(t, ok)

	g, mock := newTestGenerator(llm.MockResponse{Content: json.RawMessage(twoQuestions)})
	got, err := g.GenerateForTerm(context.Background(), term, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, q := range got {
		assert.Equal(t, quiz.TopicOOP, q.Topic)
		assert.True(t, strings.HasPrefix(q.ID, "oop-batch-"))
	}

	req, _ := mock.LastCall()
	assert.Contains(t, req.Messages[0].Content, "Concept: "+term.Title)
	assert.Contains(t, req.Messages[0].Content, term.Description)
}

func TestGenerateForTerm_RequiresTerm(t *testing.T) {
	g, mock := newTestGenerator()
	_, err := g.GenerateForTerm(context.Background(), glossary.Term{}, 3)
	assert.Error(t, err)
	assert.Zero(t, mock.CallCount())
}

func TestPurposeLabels(t *testing.T) {
	rec := &purposeRecorder{inner: llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(twoQuestions)},
		llm.MockResponse{Content: json.RawMessage(twoQuestions)},
	)}
	g := New(rec, DefaultConfig())

	term, _ := glossary.Lookup("p3")
	_, err := g.Generate(context.Background(), Input{Topic: quiz.TopicPseudoCode})
	require.NoError(t, err)
	_, err = g.GenerateForTerm(context.Background(), term, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{llm.PurposeQuestionGen, llm.PurposeTermPractice}, rec.purposes)
}

type purposeRecorder struct {
	inner    llm.Provider
	purposes []string
}

func (p *purposeRecorder) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	p.purposes = append(p.purposes, llm.PurposeFrom(ctx))
	return p.inner.Generate(ctx, req)
}

func (p *purposeRecorder) ModelID() string { return p.inner.ModelID() }

func TestFulfill(t *testing.T) {
	t.Run("topic request", func(t *testing.T) {
		g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(twoQuestions)})
		a := Fulfill(context.Background(), g, quiz.Request{Token: 7, Topic: quiz.TopicPseudoCode, Count: 2})

		loaded, ok := a.(quiz.Loaded)
		require.True(t, ok, "expected Loaded, got %T", a)
		assert.Equal(t, uint64(7), loaded.Token)
		assert.Len(t, loaded.Questions, 2)
	})

	t.Run("term request", func(t *testing.T) {
		g, mock := newTestGenerator(llm.MockResponse{Content: json.RawMessage(twoQuestions)})
		a := Fulfill(context.Background(), g, quiz.Request{Token: 3, Topic: quiz.TopicPseudoCode, TermID: "p3", Count: 2})

		_, ok := a.(quiz.Loaded)
		require.True(t, ok, "expected Loaded, got %T", a)
		term, _ := glossary.Lookup("p3")
		req, _ := mock.LastCall()
		assert.Contains(t, req.Messages[0].Content, term.Title)
	})

	t.Run("unknown term", func(t *testing.T) {
		g, mock := newTestGenerator()
		a := Fulfill(context.Background(), g, quiz.Request{Token: 4, TermID: "nope"})

		failed, ok := a.(quiz.LoadFailed)
		require.True(t, ok, "expected LoadFailed, got %T", a)
		assert.Equal(t, uint64(4), failed.Token)
		assert.Zero(t, mock.CallCount())
	})

	t.Run("no generator", func(t *testing.T) {
		a := Fulfill(context.Background(), nil, quiz.Request{Token: 5, Topic: quiz.TopicSQL})

		failed, ok := a.(quiz.LoadFailed)
		require.True(t, ok, "expected LoadFailed, got %T", a)
		assert.ErrorIs(t, failed.Err, ErrNoGenerator)
	})
}
