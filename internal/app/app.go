// Package app is the terminal front end: one Bubble Tea model that owns the
// coach state and swaps screens as the mode changes.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/assistant"
	"github.com/shlvgit07/basmach/internal/coach"
	"github.com/shlvgit07/basmach/internal/navigator"
	"github.com/shlvgit07/basmach/internal/questiongen"
	"github.com/shlvgit07/basmach/internal/quiz"
	"github.com/shlvgit07/basmach/internal/router"
	"github.com/shlvgit07/basmach/internal/screen"
	"github.com/shlvgit07/basmach/internal/screens/chat"
	"github.com/shlvgit07/basmach/internal/screens/dictionary"
	"github.com/shlvgit07/basmach/internal/screens/onboarding"
	quizscreen "github.com/shlvgit07/basmach/internal/screens/quiz"
	"github.com/shlvgit07/basmach/internal/screens/summary"
	"github.com/shlvgit07/basmach/internal/screens/welcome"
	"github.com/shlvgit07/basmach/internal/ui/layout"
)

// Options holds the dependencies of the terminal UI.
type Options struct {
	// Generator produces questions. Nil disables the quiz topics.
	Generator questiongen.Generator

	// Assistant answers chat messages. Nil hides the chat entry.
	Assistant *assistant.Service

	// ChatLimit caps the length of a chat message in runes.
	ChatLimit int

	// GenerateTimeout bounds one generation request.
	GenerateTimeout time.Duration

	// Count is the number of questions per session; zero means the default.
	Count int

	// LatestVersion, when set, is announced on the menu.
	LatestVersion string

	// SkipWelcome starts directly on the menu.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	state  coach.State
	opts   Options

	// requested is the token of the last generation request sent out.
	requested uint64

	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.GenerateTimeout <= 0 {
		opts.GenerateTimeout = 2 * time.Minute
	}
	m := AppModel{state: coach.New(), opts: opts}
	m.state.Count = opts.Count

	first := m.screenFor(m.state)
	if !opts.SkipWelcome {
		state, o := m.state, m.opts
		first = welcome.New(func() screen.Screen { return newOnboarding(state, o) })
	}
	m.router = router.New(first)
	return m
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}

	case coach.Event:
		return m.dispatch(msg)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// dispatch applies ev to the coach state, refreshes or replaces the active
// screen, and starts generation when the session is waiting for questions.
func (m AppModel) dispatch(ev coach.Event) (tea.Model, tea.Cmd) {
	next, ok := coach.Reduce(m.state, ev)
	if !ok {
		return m, nil
	}
	prev := m.state
	m.state = next

	var cmds []tea.Cmd
	if next.Mode != prev.Mode {
		cmds = append(cmds, m.router.Reset(m.screenFor(next)))
	} else {
		cmds = append(cmds, m.router.Update(screen.StateMsg{State: next}))
	}

	if req, ok := next.Pending(); ok && req.Token != m.requested {
		m.requested = req.Token
		cmds = append(cmds, m.generate(req))
	}
	return m, tea.Batch(cmds...)
}

// generate runs req in the background and reports back as a coach event.
func (m AppModel) generate(req quiz.Request) tea.Cmd {
	gen := m.opts.Generator
	timeout := m.opts.GenerateTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return coach.Quiz{Action: questiongen.Fulfill(ctx, gen, req)}
	}
}

// screenFor builds the screen that renders state.Mode.
func (m AppModel) screenFor(state coach.State) screen.Screen {
	switch state.Mode {
	case navigator.ModeQuiz:
		return quizscreen.New(state)
	case navigator.ModeSummary:
		return summary.New(state)
	case navigator.ModeDictionary:
		return dictionary.New()
	default:
		return newOnboarding(state, m.opts)
	}
}

func newOnboarding(state coach.State, opts Options) screen.Screen {
	o := onboarding.Options{
		LLMReady:      opts.Generator != nil,
		LatestVersion: opts.LatestVersion,
	}
	if opts.Assistant != nil {
		svc, limit := opts.Assistant, opts.ChatLimit
		o.Chat = func() screen.Screen { return chat.New(svc, limit) }
	}
	return onboarding.New(state, o)
}

// status is the right-hand header text: progress while a quiz is running.
func (m AppModel) status() string {
	s := m.state.Session
	if m.state.Mode != navigator.ModeQuiz || s.Phase != quiz.PhaseReady {
		return ""
	}
	return fmt.Sprintf("✓ %d  ·  %d/%d", s.Score, s.Position+1, len(s.Questions))
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "חזרה"},
			{Key: "Ctrl+C", Description: "יציאה"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "ניווט"},
			{Key: "Enter", Description: "בחירה"},
			{Key: "Ctrl+C", Description: "יציאה"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
