package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/coach"
	"github.com/shlvgit07/basmach/internal/quiz"
	"github.com/shlvgit07/basmach/internal/screen"
	"github.com/shlvgit07/basmach/internal/ui/components"
	"github.com/shlvgit07/basmach/internal/ui/layout"
	"github.com/shlvgit07/basmach/internal/ui/theme"
)

// SummaryScreen displays the result of a completed session.
type SummaryScreen struct {
	session quiz.Session
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for state.
func New(state coach.State) *SummaryScreen {
	return &SummaryScreen{
		session: state.Session,
		menu: components.NewMenu([]components.MenuItem{
			{Label: "תרגול נוסף באותו נושא", Action: func() tea.Cmd {
				return screen.Emit(coach.RetryTopic{})
			}},
			{Label: "חזרה לתפריט", Action: func() tea.Cmd {
				return screen.Emit(coach.ReturnToMenu{})
			}},
		}),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "סיכום תרגול"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "ניווט"},
		{Key: "Enter", Description: "בחירה"},
		{Key: "R", Description: "שוב"},
		{Key: "Esc", Description: "תפריט"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateMsg:
		s.session = msg.State.Session
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, screen.Emit(coach.RetryTopic{})
		case "esc":
			return s, screen.Emit(coach.ReturnToMenu{})
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.session.Summary()
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("סיימת את התרגול!"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(sum.Topic.Label()))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().
		Foreground(feedbackColor(sum.Percentage)).
		Bold(true).
		Render(fmt.Sprintf("%d / %d  (%d%%)", sum.Score, sum.Total, sum.Percentage))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, score))
	b.WriteString("\n")
	bar := components.NewProgressBar(float64(sum.Percentage)/100, cw)
	bar.Fill = feedbackColor(sum.Percentage)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Text).Render(sum.Feedback))
	b.WriteString("\n\n")

	// Per-question results.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")
	for i, q := range s.session.Questions {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderResult(i, q, cw)))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}

// renderResult renders one line of the per-question list.
func (s *SummaryScreen) renderResult(i int, q quiz.Question, cw int) string {
	icon, style := "○", theme.Muted
	if a, ok := s.session.AnswerFor(q.ID); ok {
		if a.Correct {
			icon, style = "✓", lipgloss.NewStyle().Foreground(theme.Success)
		} else {
			icon, style = "✗", lipgloss.NewStyle().Foreground(theme.Error)
		}
	}

	prompt := strings.Join(strings.Fields(q.Prompt), " ")
	limit := cw - 8
	if r := []rune(prompt); limit > 0 && len(r) > limit {
		prompt = string(r[:limit-1]) + "…"
	}
	line := fmt.Sprintf("%s %d. %s", icon, i+1, prompt)
	return style.Width(cw).Render(line)
}

// feedbackColor matches the color of the score to its feedback tier.
func feedbackColor(pct int) color.Color {
	switch {
	case pct >= 90:
		return theme.Success
	case pct >= 70:
		return theme.Accent
	default:
		return theme.Error
	}
}
