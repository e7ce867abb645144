package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shlvgit07/basmach/internal/assistant"
	"github.com/shlvgit07/basmach/internal/coach"
	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/llm"
	"github.com/shlvgit07/basmach/internal/navigator"
	"github.com/shlvgit07/basmach/internal/questiongen"
	"github.com/shlvgit07/basmach/internal/quiz"
)

// fakeGenerator returns a fixed two-question batch, or err when set.
type fakeGenerator struct {
	mu    sync.Mutex
	calls int
	terms []string
	err   error
}

func (f *fakeGenerator) batch(topic quiz.Topic) []quiz.Question {
	return []quiz.Question{
		{ID: "q0", Topic: topic, Prompt: "ראשונה", Options: []string{"a", "b", "c", "d"}, OptionsKind: quiz.OptionsText, CorrectIndex: 0, Explanation: "a"},
		{ID: "q1", Topic: topic, Prompt: "שנייה", Options: []string{"a", "b", "c", "d"}, OptionsKind: quiz.OptionsText, CorrectIndex: 3, Explanation: "d"},
	}
}

func (f *fakeGenerator) Generate(_ context.Context, in questiongen.Input) ([]quiz.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.batch(in.Topic), nil
}

func (f *fakeGenerator) GenerateForTerm(_ context.Context, term glossary.Term, _ int) ([]quiz.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terms = append(f.terms, term.ID)
	return f.batch(term.Category.Topic()), nil
}

func newTestServer(gen questiongen.Generator, asst *assistant.Service) *Server {
	cfg := DefaultConfig()
	cfg.AccessLog = false
	return New(cfg, gen, asst)
}

// call performs a request and returns the status and raw body. Generation
// started by the request is awaited so the next call sees its result.
func call(t *testing.T, s *Server, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	s.wg.Wait()
	return resp.StatusCode, data
}

func post(t *testing.T, s *Server, path, body string) stateView {
	t.Helper()
	code, data := call(t, s, http.MethodPost, path, body)
	require.Equal(t, http.StatusOK, code, string(data))
	var v stateView
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func state(t *testing.T, s *Server) stateView {
	t.Helper()
	code, data := call(t, s, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, code)
	var v stateView
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(nil, nil)
	code, data := call(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, string(data))
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(nil, nil)
	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Len(t, resp.Header.Get("X-Request-ID"), 36)
}

func TestInitialState(t *testing.T) {
	v := state(t, newTestServer(nil, nil))
	assert.Equal(t, navigator.ModeOnboarding, v.Mode)
	assert.Equal(t, "idle", v.Session.Phase)
	assert.ElementsMatch(t, []navigator.Event{navigator.ChooseTopic, navigator.OpenDictionary}, v.Allowed)
	assert.Nil(t, v.Summary)
}

func TestTwoQuestionScenario(t *testing.T) {
	gen := &fakeGenerator{}
	s := newTestServer(gen, nil)

	v := post(t, s, "/api/topics/algorithms/start", "")
	assert.Equal(t, navigator.ModeQuiz, v.Mode)

	v = state(t, s)
	require.Equal(t, "ready", v.Session.Phase)
	require.NotNil(t, v.Session.Question)
	assert.Equal(t, 2, v.Session.Total)
	assert.Equal(t, "ראשונה", v.Session.Question.Prompt)
	assert.Nil(t, v.Session.Question.CorrectIndex, "correct index must be hidden before answering")
	assert.Empty(t, v.Session.Question.Explanation)

	// Question 1: correct.
	post(t, s, "/api/quiz/select", `{"index": 0}`)
	v = post(t, s, "/api/quiz/submit", "")
	assert.True(t, v.Session.Answered)
	require.NotNil(t, v.Session.Question.CorrectIndex)
	assert.Equal(t, 0, *v.Session.Question.CorrectIndex)
	assert.Equal(t, 1, v.Session.Score)
	post(t, s, "/api/quiz/next", "")

	// Question 2: wrong.
	post(t, s, "/api/quiz/select", `{"index": 1}`)
	v = post(t, s, "/api/quiz/submit", "")
	assert.Equal(t, 1, v.Session.Score)

	// Going back shows the stored answer.
	v = post(t, s, "/api/quiz/previous", "")
	assert.Equal(t, 0, v.Session.Position)
	assert.Equal(t, 0, v.Session.Selection)
	post(t, s, "/api/quiz/next", "")

	v = post(t, s, "/api/quiz/next", "")
	assert.Equal(t, navigator.ModeSummary, v.Mode)
	require.NotNil(t, v.Summary)
	assert.Equal(t, 1, v.Summary.Score)
	assert.Equal(t, 2, v.Summary.Total)
	assert.Equal(t, 50, v.Summary.Percentage)

	// Retry regenerates the same topic.
	v = post(t, s, "/api/summary/retry", "")
	assert.Equal(t, navigator.ModeQuiz, v.Mode)
	v = state(t, s)
	assert.Equal(t, "ready", v.Session.Phase)
	assert.Equal(t, 0, v.Session.Score)
	assert.Equal(t, 2, gen.calls)

	v = post(t, s, "/api/quiz/abandon", "")
	assert.Equal(t, navigator.ModeOnboarding, v.Mode)
	assert.Equal(t, "idle", v.Session.Phase)
}

func TestStartWithDifficulty(t *testing.T) {
	s := newTestServer(&fakeGenerator{}, nil)
	v := post(t, s, "/api/topics/sql/start", `{"difficulty": "Hard"}`)
	assert.Equal(t, quiz.DifficultyHard, v.Difficulty)
	assert.Equal(t, quiz.DifficultyHard, v.Session.Difficulty)
}

func TestStartRejectsBadInput(t *testing.T) {
	s := newTestServer(&fakeGenerator{}, nil)

	code, _ := call(t, s, http.MethodPost, "/api/topics/chemistry/start", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, data := call(t, s, http.MethodPost, "/api/topics/sql/start", `{"difficulty": "Insane"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(data), "oneof")

	assert.Equal(t, navigator.ModeOnboarding, state(t, s).Mode)
}

func TestRejectedTransitionReturnsConflict(t *testing.T) {
	s := newTestServer(&fakeGenerator{}, nil)

	code, data := call(t, s, http.MethodPost, "/api/summary/retry", "")
	require.Equal(t, http.StatusConflict, code)

	var body struct {
		Error string    `json:"error"`
		State stateView `json:"state"`
	}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.NotEmpty(t, body.Error)
	assert.Equal(t, navigator.ModeOnboarding, body.State.Mode)

	// Quiz actions outside a quiz are rejected too.
	code, _ = call(t, s, http.MethodPost, "/api/quiz/submit", "")
	assert.Equal(t, http.StatusConflict, code)
}

func TestSelectValidation(t *testing.T) {
	s := newTestServer(&fakeGenerator{}, nil)
	post(t, s, "/api/topics/oop/start", "")

	for _, body := range []string{`{}`, `{"index": 4}`, `{"index": -1}`, `not json`} {
		code, _ := call(t, s, http.MethodPost, "/api/quiz/select", body)
		assert.Equal(t, http.StatusBadRequest, code, body)
	}
}

func TestGenerationFailureAndRetry(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	s := newTestServer(gen, nil)

	post(t, s, "/api/topics/english/start", "")
	v := state(t, s)
	assert.Equal(t, "failed", v.Session.Phase)
	assert.Equal(t, quiz.GenerationFailedMessage, v.Session.Error)

	gen.err = nil
	post(t, s, "/api/quiz/retry", "")
	v = state(t, s)
	assert.Equal(t, "ready", v.Session.Phase)
	assert.Equal(t, 2, gen.calls)
}

func TestNilGeneratorFails(t *testing.T) {
	s := newTestServer(nil, nil)
	post(t, s, "/api/topics/sql/start", "")
	assert.Equal(t, "failed", state(t, s).Session.Phase)
}

func TestDictionaryPractice(t *testing.T) {
	gen := &fakeGenerator{}
	s := newTestServer(gen, nil)

	code, _ := call(t, s, http.MethodPost, "/api/dictionary/terms/p3/practice", "")
	assert.Equal(t, http.StatusConflict, code, "practice requires the dictionary")

	v := post(t, s, "/api/dictionary/open", "")
	assert.Equal(t, navigator.ModeDictionary, v.Mode)

	code, _ = call(t, s, http.MethodPost, "/api/dictionary/terms/nope/practice", "")
	assert.Equal(t, http.StatusNotFound, code)

	v = post(t, s, "/api/dictionary/terms/p3/practice", "")
	assert.Equal(t, navigator.ModeQuiz, v.Mode)
	assert.Equal(t, "p3", v.Session.TermID)
	assert.Equal(t, []string{"p3"}, gen.terms)
	assert.Equal(t, "ready", state(t, s).Session.Phase)
}

func TestGlossary(t *testing.T) {
	s := newTestServer(nil, nil)

	code, data := call(t, s, http.MethodGet, "/api/glossary", "")
	require.Equal(t, http.StatusOK, code)
	var all []glossary.Term
	require.NoError(t, json.Unmarshal(data, &all))
	assert.Len(t, all, len(glossary.Terms()))

	code, data = call(t, s, http.MethodGet, "/api/glossary?category=oop", "")
	require.Equal(t, http.StatusOK, code)
	var oop []glossary.Term
	require.NoError(t, json.Unmarshal(data, &oop))
	assert.Equal(t, len(glossary.Filter(glossary.Terms(), "", glossary.CategoryOOP)), len(oop))
	for _, term := range oop {
		assert.Equal(t, glossary.CategoryOOP, term.Category)
	}

	code, _ = call(t, s, http.MethodGet, "/api/glossary?category=music", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, data = call(t, s, http.MethodGet, "/api/glossary/p3", "")
	require.Equal(t, http.StatusOK, code)
	var term glossary.Term
	require.NoError(t, json.Unmarshal(data, &term))
	assert.Equal(t, "p3", term.ID)

	code, _ = call(t, s, http.MethodGet, "/api/glossary/missing", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestTopics(t *testing.T) {
	code, data := call(t, newTestServer(nil, nil), http.MethodGet, "/api/topics", "")
	require.Equal(t, http.StatusOK, code)
	var topics []topicView
	require.NoError(t, json.Unmarshal(data, &topics))
	require.Len(t, topics, len(quiz.AllTopics()))
	assert.Equal(t, quiz.TopicPseudoCode, topics[0].ID)
	assert.NotEmpty(t, topics[0].Label)
}

func TestChat(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("בהצלחה במבחן!"))
	s := newTestServer(nil, assistant.New(mock, assistant.DefaultConfig()))

	code, data := call(t, s, http.MethodPost, "/api/chat", `{"message": "טיפים?"}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"reply":"בהצלחה במבחן!"}`, string(data))

	code, _ = call(t, s, http.MethodPost, "/api/chat", `{"message": ""}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestChatFallback(t *testing.T) {
	s := newTestServer(nil, nil)
	code, data := call(t, s, http.MethodPost, "/api/chat", `{"message": "hi"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(data), assistant.FallbackReply)
}

func TestChatRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AccessLog = false
	cfg.ChatPerMinute = 2
	s := New(cfg, nil, nil)

	for i := 0; i < 2; i++ {
		code, _ := call(t, s, http.MethodPost, "/api/chat", `{"message": "hi"}`)
		require.Equal(t, http.StatusOK, code)
	}
	code, _ := call(t, s, http.MethodPost, "/api/chat", `{"message": "hi"}`)
	assert.Equal(t, http.StatusTooManyRequests, code)

	// Other routes are not limited.
	code, _ = call(t, s, http.MethodGet, "/api/state", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestShutdownCancelsGeneration(t *testing.T) {
	block := &blockingGenerator{started: make(chan struct{})}
	s := newTestServer(block, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/topics/sql/start", nil)
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	<-block.started

	_ = s.Shutdown(context.Background())
	assert.Equal(t, "failed", s.snapshot().Session.Phase)
}

func TestNoGenerationAfterShutdown(t *testing.T) {
	gen := &fakeGenerator{}
	s := newTestServer(gen, nil)
	_ = s.Shutdown(context.Background())

	v, ok := s.apply(coach.ChooseTopic{Topic: quiz.TopicSQL})
	require.True(t, ok)
	assert.Equal(t, "loading", v.Session.Phase)
	s.wg.Wait()
	assert.Zero(t, gen.calls)
}

// blockingGenerator waits for its context to end.
type blockingGenerator struct {
	started chan struct{}
}

func (b *blockingGenerator) Generate(ctx context.Context, _ questiongen.Input) ([]quiz.Question, error) {
	close(b.started)
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b *blockingGenerator) GenerateForTerm(ctx context.Context, _ glossary.Term, _ int) ([]quiz.Question, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
