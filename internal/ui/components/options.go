package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/quiz"
	"github.com/shlvgit07/basmach/internal/ui/theme"
)

// Options renders the answer choices of one question. It holds no state of
// its own; the session decides what is selected and revealed.
type Options struct {
	Items []string
	Kind  quiz.OptionsKind

	// Selected is the pending or committed choice, quiz.NoSelection if none.
	Selected int
	Correct  int

	// Revealed marks the question as answered: the correct option turns
	// green and a wrong choice red.
	Revealed bool
}

// NewOptions builds the option list for q at the session's current state.
func NewOptions(q quiz.Question, selected int, revealed bool) Options {
	return Options{
		Items:    q.Options,
		Kind:     q.OptionsKind,
		Selected: selected,
		Correct:  q.CorrectIndex,
		Revealed: revealed,
	}
}

// View renders the options, one per line.
func (o Options) View() string {
	var b strings.Builder
	for i, opt := range o.Items {
		prefix := "  "
		if i == o.Selected && !o.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, o.label(i, opt))

		var style lipgloss.Style
		switch {
		case o.Revealed && i == o.Correct:
			style = theme.Correct
			line += "  ✓"
		case o.Revealed && i == o.Selected:
			style = theme.Incorrect
			line += "  ✗"
		case o.Revealed:
			style = theme.Muted
		case i == o.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// label returns the printable text of option i. SVG options cannot be drawn
// in a terminal and get a placeholder.
func (o Options) label(i int, opt string) string {
	if o.Kind == quiz.OptionsSVG {
		return fmt.Sprintf("[איור %d]", i+1)
	}
	return strings.Join(strings.Fields(opt), " ")
}
