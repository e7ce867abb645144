// Package chat is the assistant window. It is pushed over the menu and keeps
// its transcript only for as long as it is open.
package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/assistant"
	"github.com/shlvgit07/basmach/internal/router"
	"github.com/shlvgit07/basmach/internal/screen"
	"github.com/shlvgit07/basmach/internal/ui/components"
	"github.com/shlvgit07/basmach/internal/ui/layout"
	"github.com/shlvgit07/basmach/internal/ui/theme"
)

// replyTimeout bounds a single assistant call from the UI.
const replyTimeout = 90 * time.Second

// replyMsg carries the assistant's answer back to the screen.
type replyMsg struct {
	Text string
}

// ChatScreen shows the transcript and an input line.
type ChatScreen struct {
	service    *assistant.Service
	transcript *assistant.Transcript
	input      components.TextInput
	waiting    bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen backed by service. A nil service answers every
// message with the fallback reply.
func New(service *assistant.Service, maxRunes int) *ChatScreen {
	return &ChatScreen{
		service:    service,
		transcript: assistant.NewTranscript(),
		input:      components.NewTextInput("כתבו הודעה...", maxRunes),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "עוזר אישי"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "שליחה"},
		{Key: "Esc", Description: "סגירה"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.waiting = false
		c.transcript.Add(assistant.RoleAssistant, msg.Text)
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return c, c.send()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send records the typed message and asks the assistant for a reply. One
// message is in flight at a time.
func (c *ChatScreen) send() tea.Cmd {
	if c.waiting {
		return nil
	}
	text, ok := c.transcript.Ask(c.input.Value())
	if !ok {
		return nil
	}
	c.input.Reset()
	c.waiting = true

	service := c.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		return replyMsg{Text: service.Reply(ctx, text)}
	}
}

func (c *ChatScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var lines []string
	for _, m := range c.transcript.Messages {
		lines = append(lines, renderMessage(m, cw))
	}
	if c.waiting {
		lines = append(lines, theme.Hint.Render("העוזר מקליד..."))
	}

	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Render(c.input.View())

	// Keep the newest messages visible above the input box.
	history := strings.Join(lines, "\n\n")
	avail := height - lipgloss.Height(input) - 1
	if avail < 0 {
		avail = 0
	}
	if hl := strings.Split(history, "\n"); len(hl) > avail {
		history = strings.Join(hl[len(hl)-avail:], "\n")
	}

	body := lipgloss.NewStyle().Height(avail).Render(history)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body+"\n"+input)
}

// renderMessage draws one transcript entry: user messages on the right,
// assistant messages on the left.
func renderMessage(m assistant.Message, cw int) string {
	maxW := cw * 3 / 4
	if m.Role == assistant.RoleUser {
		bubble := theme.UserBubble.MaxWidth(maxW).Render(m.Text)
		return lipgloss.PlaceHorizontal(cw, lipgloss.Right, bubble)
	}
	bubble := theme.AssistantBubble.MaxWidth(maxW).Render(m.Text)
	return lipgloss.PlaceHorizontal(cw, lipgloss.Left, bubble)
}
