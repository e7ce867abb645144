package chat

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/shlvgit07/basmach/internal/assistant"
	"github.com/shlvgit07/basmach/internal/llm"
	"github.com/shlvgit07/basmach/internal/router"
)

func typeText(c *ChatScreen, s string) {
	for _, r := range s {
		c.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestOpensWithWelcome(t *testing.T) {
	c := New(nil, 200)
	if len(c.transcript.Messages) != 1 || c.transcript.Messages[0].Text != assistant.WelcomeMessage {
		t.Fatalf("expected welcome message, got %+v", c.transcript.Messages)
	}
}

func TestSendAndReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("אפשר לתרגל SQL מהתפריט."))
	c := New(assistant.New(mock, assistant.DefaultConfig()), 200)

	typeText(c, "hello")
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected reply command")
	}
	if !c.waiting {
		t.Error("expected waiting state while the reply is pending")
	}
	if c.input.Value() != "" {
		t.Error("expected input cleared after send")
	}
	if n := len(c.transcript.Messages); n != 2 {
		t.Fatalf("expected the user message shown before the reply, got %d messages", n)
	}

	// A second enter while waiting is ignored.
	typeText(c, "again")
	if _, again := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); again != nil {
		t.Error("expected no second request while waiting")
	}

	c.Update(cmd())
	msgs := c.transcript.Messages
	if len(msgs) != 3 {
		t.Fatalf("expected welcome + user + reply, got %d", len(msgs))
	}
	if msgs[1].Role != assistant.RoleUser || msgs[1].Text != "hello" {
		t.Errorf("unexpected user message %+v", msgs[1])
	}
	if msgs[2].Text != "אפשר לתרגל SQL מהתפריט." {
		t.Errorf("unexpected reply %q", msgs[2].Text)
	}
	if c.waiting {
		t.Error("expected waiting cleared after reply")
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestProviderFailureShowsFallback(t *testing.T) {
	c := New(nil, 200)
	typeText(c, "hi")
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	c.Update(cmd())

	last := c.transcript.Messages[len(c.transcript.Messages)-1]
	if last.Text != assistant.FallbackReply {
		t.Errorf("expected fallback reply, got %q", last.Text)
	}
	if !strings.Contains(c.View(100, 30), "hi") {
		t.Error("expected user message in view")
	}
}

func TestBlankMessageNotSent(t *testing.T) {
	c := New(nil, 200)
	typeText(c, "   ")
	if _, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("blank message should not be sent")
	}
}

func TestEscPops(t *testing.T) {
	_, cmd := New(nil, 200).Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
