package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shlvgit07/basmach/internal/llm"
)

func TestReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("רקורסיה היא פונקציה שקוראת לעצמה."))
	s := New(mock, DefaultConfig())

	got := s.Reply(context.Background(), "  מה זו רקורסיה?  ")
	assert.Equal(t, "רקורסיה היא פונקציה שקוראת לעצמה.", got)

	req, ok := mock.LastCall()
	require.True(t, ok)
	assert.Equal(t, systemPrompt, req.System)
	assert.Nil(t, req.Schema)
	require.Len(t, req.Messages, 1, "no memory across calls")
	assert.Equal(t, "מה זו רקורסיה?", req.Messages[0].Content)
}

func TestReply_IsStateless(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("א"), llm.TextResponse("ב"))
	s := New(mock, DefaultConfig())

	s.Reply(context.Background(), "first")
	s.Reply(context.Background(), "second")

	req, _ := mock.LastCall()
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "second", req.Messages[0].Content)
}

func TestReply_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		provider llm.Provider
	}{
		{"provider error", llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})},
		{"empty reply", llm.NewMockProvider(llm.TextResponse("   "))},
		{"no provider", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.provider, DefaultConfig())
			assert.Equal(t, FallbackReply, s.Reply(context.Background(), "שלום"))
		})
	}
}

func TestReply_BlankMessageMakesNoCall(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("unused"))
	s := New(mock, DefaultConfig())

	assert.Equal(t, "", s.Reply(context.Background(), " \n\t"))
	assert.Zero(t, mock.CallCount())
}

func TestReply_TruncatesLongMessages(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("ok"))
	s := New(mock, Config{MaxMessageRunes: 5})

	s.Reply(context.Background(), strings.Repeat("אב", 10))

	req, _ := mock.LastCall()
	assert.Equal(t, "אבאבא", req.Messages[0].Content)
}

func TestReply_PurposeLabel(t *testing.T) {
	var purpose string
	p := providerFunc(func(ctx context.Context, _ llm.Request) (*llm.Response, error) {
		purpose = llm.PurposeFrom(ctx)
		return &llm.Response{Content: []byte("ok")}, nil
	})

	New(p, DefaultConfig()).Reply(context.Background(), "hi")
	assert.Equal(t, llm.PurposeChat, purpose)
}

type providerFunc func(context.Context, llm.Request) (*llm.Response, error)

func (f providerFunc) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "func" }

func TestTranscript(t *testing.T) {
	tr := NewTranscript()
	require.Len(t, tr.Messages, 1)
	assert.Equal(t, WelcomeMessage, tr.Messages[0].Text)
	assert.Equal(t, RoleAssistant, tr.Messages[0].Role)

	_, ok := tr.Ask("   ")
	assert.False(t, ok)
	assert.Len(t, tr.Messages, 1)

	text, ok := tr.Ask(" שאלה ")
	require.True(t, ok)
	assert.Equal(t, "שאלה", text)
	require.Len(t, tr.Messages, 2)
	assert.Equal(t, RoleUser, tr.Messages[1].Role)
	assert.Equal(t, "שאלה", tr.Messages[1].Text)

	reply := tr.Add(RoleAssistant, "תשובה")
	require.Len(t, tr.Messages, 3)
	assert.NotEqual(t, tr.Messages[1].ID, reply.ID)
}
