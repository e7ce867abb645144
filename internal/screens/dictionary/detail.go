package dictionary

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/coach"
	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/screen"
	"github.com/shlvgit07/basmach/internal/ui/components"
	"github.com/shlvgit07/basmach/internal/ui/layout"
	"github.com/shlvgit07/basmach/internal/ui/theme"
)

// TermDetailScreen shows one glossary term in full.
type TermDetailScreen struct {
	term glossary.Term
}

var _ screen.Screen = (*TermDetailScreen)(nil)
var _ screen.KeyHintProvider = (*TermDetailScreen)(nil)

func newTermDetail(term glossary.Term) *TermDetailScreen {
	return &TermDetailScreen{term: term}
}

func (d *TermDetailScreen) Init() tea.Cmd { return nil }
func (d *TermDetailScreen) Title() string { return d.term.Title }

func (d *TermDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "p", "ctrl+p", "enter":
			return d, screen.Emit(coach.PracticeTerm{TermID: d.term.ID})
		}
	}
	return d, nil
}

func (d *TermDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "P", Description: "תרגול המושג"},
		{Key: "Esc", Description: "חזרה"},
	}
}

func (d *TermDetailScreen) View(width, height int) string {
	t := d.term
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(t.Title))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(t.Category.Label()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Render(t.Description))
	b.WriteString("\n\n")

	if t.Code != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("דוגמה"))
		b.WriteString("\n")
		b.WriteString(components.CodeBlock(t.Code, cw))
		b.WriteString("\n\n")
	}

	if t.Explanation != "" {
		b.WriteString(theme.Explanation.Width(cw).Render(t.Explanation))
		b.WriteString("\n")
	}

	if t.Illustration != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("(למושג מצורף איור שמוצג בגרסת הדפדפן)"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "\n"+b.String())
}
