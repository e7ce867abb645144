package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/quiz"
	"github.com/shlvgit07/basmach/internal/ui/components"
	"github.com/shlvgit07/basmach/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch s.session.Phase {
	case quiz.PhaseLoading:
		return s.renderLoading(width, height)
	case quiz.PhaseFailed:
		return renderFailed(width, height, s.session.Err)
	case quiz.PhaseReady:
		if s.confirmingQuit {
			return renderQuitConfirm(width, height)
		}
		return s.renderQuestion(width, height)
	}
	return ""
}

func (s *QuizScreen) renderLoading(width, height int) string {
	subject := s.session.Topic.Label()
	if s.term != nil {
		subject = s.term.Title
	}
	spinner := lipgloss.NewStyle().Foreground(theme.Accent).Render(spinnerFrames[s.spinnerFrame])
	text := fmt.Sprintf("%s מכין שאלות על %s...", spinner, subject)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(text))
}

// renderFailed shows the fixed generation-failure message; the cause is
// never displayed.
func renderFailed(width, height int, msg string) string {
	if msg == "" {
		msg = quiz.GenerationFailedMessage
	}
	content := theme.ErrorText.Render(msg) + "\n\n" + components.Button("R", "נסה שוב", true)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("לצאת מהתרגול?"))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render("ההתקדמות בתרגול הזה לא תישמר."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("[Y] כן, צא"))
	b.WriteString("    ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("[N] המשך לתרגל"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderQuestion renders the current question, its options and, once it is
// answered, the verdict and explanation.
func (s *QuizScreen) renderQuestion(width, height int) string {
	q, ok := s.session.Current()
	if !ok {
		return ""
	}
	cw := components.ContentWidth(width)
	answer, answered := s.session.AnswerFor(q.ID)

	var b strings.Builder

	// Info line: position, score, difficulty.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  שאלה %d מתוך %d", s.session.Position+1, len(s.session.Questions)))
	infoRight := theme.Muted.Render(fmt.Sprintf("%s  %s %d",
		q.Difficulty.Label(),
		lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
		s.session.Score,
	))
	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar(s.session.Progress(), width-4).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	if q.Code != "" {
		b.WriteString(components.CodeBlock(q.Code, cw))
		b.WriteString("\n\n")
	}
	if q.Illustration != "" {
		b.WriteString(theme.Hint.Render("(לשאלה מצורף איור שמוצג בגרסת הדפדפן)"))
		b.WriteString("\n\n")
	}

	selected := s.session.Selection
	if answered {
		selected = answer.Selected
	}
	b.WriteString(components.NewOptions(q, selected, answered).View())

	if answered {
		b.WriteString("\n")
		if answer.Correct {
			b.WriteString(theme.Correct.Render("נכון!"))
		} else {
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("לא נכון. התשובה הנכונה: %d", q.CorrectIndex+1)))
		}
		b.WriteString("\n\n")
		if q.Explanation != "" {
			b.WriteString(theme.Explanation.Width(cw).Render(q.Explanation))
			b.WriteString("\n")
		}
		if s.session.IsLast() {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("Enter לסיום וצפייה בתוצאות"))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}
