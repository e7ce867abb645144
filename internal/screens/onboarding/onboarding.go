// Package onboarding is the topic menu: the first screen after the splash
// and the one every finished or abandoned quiz returns to.
package onboarding

import (
	tea "charm.land/bubbletea/v2"

	"github.com/shlvgit07/basmach/internal/coach"
	"github.com/shlvgit07/basmach/internal/quiz"
	"github.com/shlvgit07/basmach/internal/router"
	"github.com/shlvgit07/basmach/internal/screen"
	"github.com/shlvgit07/basmach/internal/ui/components"
	"github.com/shlvgit07/basmach/internal/ui/layout"
)

// Options configures the onboarding screen.
type Options struct {
	// LLMReady is false when no provider is configured; topics are then
	// disabled.
	LLMReady bool

	// Chat builds the assistant screen. The menu entry is hidden when nil.
	Chat func() screen.Screen

	// LatestVersion, when set, is announced as an available update.
	LatestVersion string
}

// OnboardingScreen lists the quiz topics plus the dictionary and chat entries.
type OnboardingScreen struct {
	menu       components.Menu
	difficulty quiz.Difficulty
	opts       Options
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates the onboarding screen for state.
func New(state coach.State, opts Options) *OnboardingScreen {
	var items []components.MenuItem
	for _, t := range quiz.AllTopics() {
		topic := t
		items = append(items, components.MenuItem{
			Label:    topic.Label(),
			Detail:   topic.Description(),
			Disabled: !opts.LLMReady,
			Action: func() tea.Cmd {
				return screen.Emit(coach.ChooseTopic{Topic: topic})
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:  "מילון מושגים",
		Detail: "מושגי יסוד לפי נושא",
		Action: func() tea.Cmd {
			return screen.Emit(coach.OpenDictionary{})
		},
	})

	if opts.Chat != nil {
		items = append(items, components.MenuItem{
			Label:  "עוזר אישי",
			Detail: "שאלות על האתר והצעות לשיפור",
			Action: func() tea.Cmd {
				chat := opts.Chat()
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: chat}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:  "יציאה",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &OnboardingScreen{
		menu:       components.NewMenu(items),
		difficulty: state.Difficulty,
		opts:       opts,
	}
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return nil
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateMsg:
		o.difficulty = msg.State.Difficulty
		return o, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "d", "tab":
			return o, screen.Emit(coach.SetDifficulty{Difficulty: nextDifficulty(o.difficulty)})
		case "/":
			return o, screen.Emit(coach.OpenDictionary{})
		}
	}

	var cmd tea.Cmd
	o.menu, cmd = o.menu.Update(msg)
	return o, cmd
}

func (o *OnboardingScreen) Title() string {
	return "בחירת נושא"
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "ניווט"},
		{Key: "Enter", Description: "בחירה"},
		{Key: "D", Description: "רמת קושי"},
		{Key: "/", Description: "מילון"},
		{Key: "Ctrl+C", Description: "יציאה"},
	}
}

// nextDifficulty cycles any → easy → medium → hard → any.
func nextDifficulty(d quiz.Difficulty) quiz.Difficulty {
	switch d {
	case quiz.DifficultyAny:
		return quiz.DifficultyEasy
	case quiz.DifficultyEasy:
		return quiz.DifficultyMedium
	case quiz.DifficultyMedium:
		return quiz.DifficultyHard
	default:
		return quiz.DifficultyAny
	}
}

// difficultyLabel is the label of the current filter.
func difficultyLabel(d quiz.Difficulty) string {
	if d == quiz.DifficultyAny {
		return "כל הרמות"
	}
	return d.Label()
}
