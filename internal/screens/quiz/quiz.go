// Package quiz is the question screen. It renders the session held by the
// application state and turns key presses into coach events; it never
// changes the session itself.
package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/shlvgit07/basmach/internal/coach"
	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/quiz"
	"github.com/shlvgit07/basmach/internal/screen"
	"github.com/shlvgit07/basmach/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time

// QuizScreen shows the current question of the session.
type QuizScreen struct {
	session quiz.Session
	term    *glossary.Term

	spinnerFrame   int
	spinning       bool
	confirmingQuit bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen for state.
func New(state coach.State) *QuizScreen {
	s := &QuizScreen{}
	s.apply(state)
	return s
}

func (s *QuizScreen) apply(state coach.State) {
	s.session = state.Session
	s.term = nil
	if t, ok := state.Term(); ok {
		s.term = &t
	}
	if s.session.Phase != quiz.PhaseReady {
		s.confirmingQuit = false
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.startSpinner()
}

func (s *QuizScreen) startSpinner() tea.Cmd {
	if s.spinning || s.session.Phase != quiz.PhaseLoading {
		return nil
	}
	s.spinning = true
	return spinnerTick()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateMsg:
		s.apply(msg.State)
		return s, s.startSpinner()

	case spinnerTickMsg:
		if s.session.Phase != quiz.PhaseLoading {
			s.spinning = false
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		return s, s.handleKey(msg.String())
	}
	return s, nil
}

func (s *QuizScreen) handleKey(key string) tea.Cmd {
	if s.confirmingQuit {
		switch key {
		case "y", "enter":
			s.confirmingQuit = false
			return screen.Emit(coach.Abandon{})
		case "n", "esc":
			s.confirmingQuit = false
		}
		return nil
	}

	switch s.session.Phase {
	case quiz.PhaseLoading:
		if key == "esc" {
			return screen.Emit(coach.Abandon{})
		}

	case quiz.PhaseFailed:
		switch key {
		case "r", "enter":
			return screen.Emit(coach.RetryGeneration{})
		case "esc":
			return screen.Emit(coach.Abandon{})
		}

	case quiz.PhaseReady:
		return s.handleQuestionKey(key)
	}
	return nil
}

func (s *QuizScreen) handleQuestionKey(key string) tea.Cmd {
	answered := s.session.Answered()

	switch key {
	case "1", "2", "3", "4":
		return act(quiz.Select{Index: int(key[0] - '1')})
	case "up", "k":
		if !answered {
			return act(quiz.Select{Index: s.moveSelection(-1)})
		}
	case "down", "j":
		if !answered {
			return act(quiz.Select{Index: s.moveSelection(1)})
		}
	case "enter", "space":
		if answered {
			return act(quiz.Next{})
		}
		return act(quiz.Submit{})
	case "n":
		return act(quiz.Next{})
	case "p", "b":
		return act(quiz.Previous{})
	case "esc":
		s.confirmingQuit = true
	}
	return nil
}

// moveSelection returns the option index delta steps away from the current
// selection, wrapping around.
func (s *QuizScreen) moveSelection(delta int) int {
	q, ok := s.session.Current()
	if !ok || len(q.Options) == 0 {
		return quiz.NoSelection
	}
	n := len(q.Options)
	if !s.session.HasSelection() {
		if delta > 0 {
			return 0
		}
		return n - 1
	}
	return ((s.session.Selection+delta)%n + n) % n
}

func act(a quiz.Action) tea.Cmd {
	return screen.Emit(coach.Quiz{Action: a})
}

func (s *QuizScreen) Title() string {
	if s.term != nil {
		return "תרגול: " + s.term.Title
	}
	return s.session.Topic.Label()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "יציאה"},
			{Key: "N", Description: "המשך"},
		}
	}
	switch s.session.Phase {
	case quiz.PhaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "נסה שוב"},
			{Key: "Esc", Description: "חזרה לתפריט"},
		}
	case quiz.PhaseReady:
		if s.session.Answered() {
			return []layout.KeyHint{
				{Key: "Enter", Description: "הבא"},
				{Key: "P", Description: "הקודם"},
				{Key: "Esc", Description: "יציאה"},
			}
		}
		return []layout.KeyHint{
			{Key: "1-4", Description: "בחירה"},
			{Key: "Enter", Description: "בדיקה"},
			{Key: "P", Description: "הקודם"},
			{Key: "Esc", Description: "יציאה"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "ביטול"},
	}
}
