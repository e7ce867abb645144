// Package dictionary is the glossary browser: a search box, category tabs
// and the list of matching terms grouped by category.
package dictionary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/coach"
	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/router"
	"github.com/shlvgit07/basmach/internal/screen"
	"github.com/shlvgit07/basmach/internal/ui/components"
	"github.com/shlvgit07/basmach/internal/ui/layout"
	"github.com/shlvgit07/basmach/internal/ui/theme"
)

type rowKind int

const (
	rowCategoryHeader rowKind = iota
	rowTerm
)

type row struct {
	kind     rowKind
	category glossary.Category
	term     *glossary.Term
}

// DictionaryScreen lists glossary terms filtered by a query and a category.
type DictionaryScreen struct {
	search   components.TextInput
	category glossary.Category
	query    string

	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*DictionaryScreen)(nil)
var _ screen.KeyHintProvider = (*DictionaryScreen)(nil)

// New creates a new DictionaryScreen showing every term.
func New() *DictionaryScreen {
	d := &DictionaryScreen{
		search:   components.NewTextInput("חיפוש מושג...", 40),
		category: glossary.CategoryAll,
	}
	d.refilter()
	return d
}

// refilter rebuilds the rows from the current query and category.
func (d *DictionaryScreen) refilter() {
	terms := glossary.Filter(glossary.Terms(), d.query, d.category)

	d.rows = d.rows[:0]
	for _, c := range glossary.Categories() {
		if c == glossary.CategoryAll {
			continue
		}
		header := false
		for i := range terms {
			if terms[i].Category != c {
				continue
			}
			if !header {
				d.rows = append(d.rows, row{kind: rowCategoryHeader, category: c})
				header = true
			}
			d.rows = append(d.rows, row{kind: rowTerm, category: c, term: &terms[i]})
		}
	}

	d.cursor = -1
	d.scrollOffset = 0
	d.moveCursor(1)
}

func (d *DictionaryScreen) Init() tea.Cmd {
	return d.search.Init()
}

func (d *DictionaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up":
			d.moveCursor(-1)
			return d, nil
		case "down":
			d.moveCursor(1)
			return d, nil
		case "tab":
			d.cycleCategory(1)
			return d, nil
		case "shift+tab":
			d.cycleCategory(-1)
			return d, nil
		case "enter":
			return d, d.openTerm()
		case "ctrl+p":
			if t := d.selected(); t != nil {
				return d, screen.Emit(coach.PracticeTerm{TermID: t.ID})
			}
			return d, nil
		case "esc":
			return d, screen.Emit(coach.CloseDictionary{})
		}
	}

	var cmd tea.Cmd
	d.search, cmd = d.search.Update(msg)
	if q := d.search.Value(); q != d.query {
		d.query = q
		d.refilter()
	}
	return d, cmd
}

func (d *DictionaryScreen) Title() string {
	return "מילון מושגים"
}

// KeyHints returns the key binding hints for the footer.
func (d *DictionaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "ניווט"},
		{Key: "Tab", Description: "קטגוריה"},
		{Key: "Enter", Description: "פרטים"},
		{Key: "Ctrl+P", Description: "תרגול"},
		{Key: "Esc", Description: "חזרה"},
	}
}

// cycleCategory moves the category tab by delta, wrapping around.
func (d *DictionaryScreen) cycleCategory(delta int) {
	cats := glossary.Categories()
	idx := 0
	for i, c := range cats {
		if c == d.category {
			idx = i
		}
	}
	d.category = cats[((idx+delta)%len(cats)+len(cats))%len(cats)]
	d.refilter()
}

// moveCursor moves the cursor by delta, skipping category headers.
func (d *DictionaryScreen) moveCursor(delta int) {
	next := d.cursor + delta
	for next >= 0 && next < len(d.rows) {
		if d.rows[next].kind == rowTerm {
			d.cursor = next
			return
		}
		next += delta
	}
}

func (d *DictionaryScreen) selected() *glossary.Term {
	if d.cursor < 0 || d.cursor >= len(d.rows) {
		return nil
	}
	return d.rows[d.cursor].term
}

// openTerm pushes the detail screen of the selected term.
func (d *DictionaryScreen) openTerm() tea.Cmd {
	t := d.selected()
	if t == nil {
		return nil
	}
	detail := newTermDetail(*t)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (d *DictionaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(d.search.View())
	b.WriteString("\n")
	b.WriteString(d.renderTabs())
	b.WriteString("\n\n")

	listHeight := height - 3
	if len(d.rows) == 0 {
		b.WriteString(theme.Hint.Render("  לא נמצאו מושגים"))
		return b.String()
	}

	d.adjustScroll(listHeight)

	var lines []string
	for i := d.scrollOffset; i < len(d.rows) && len(lines) < listHeight; i++ {
		r := d.rows[i]
		switch r.kind {
		case rowCategoryHeader:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("  "+r.category.Label()))
		case rowTerm:
			lines = append(lines, renderTermRow(*r.term, i == d.cursor, width))
		}
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// renderTabs renders the category selector with the active tab highlighted.
func (d *DictionaryScreen) renderTabs() string {
	var parts []string
	for _, c := range glossary.Categories() {
		if c == d.category {
			parts = append(parts, theme.ButtonActive.Render(c.Label()))
		} else {
			parts = append(parts, theme.Muted.Render(" "+c.Label()+" "))
		}
	}
	return "  " + strings.Join(parts, " ")
}

// adjustScroll ensures the cursor is visible within the list window.
func (d *DictionaryScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the category header above the cursor if possible
	headerRow := d.cursor
	for headerRow > 0 && d.rows[headerRow-1].kind == rowCategoryHeader {
		headerRow--
	}

	if headerRow < d.scrollOffset {
		d.scrollOffset = headerRow
	}
	if d.cursor >= d.scrollOffset+height {
		d.scrollOffset = d.cursor - height + 1
	}
}

// renderTermRow renders a single term: title and a truncated description.
func renderTermRow(t glossary.Term, selected bool, width int) string {
	cursor := "  "
	titleStyle := theme.Unselected
	if selected {
		cursor = "▸ "
		titleStyle = theme.Selected
	}

	descWidth := width - 8 - len([]rune(t.Title))
	desc := []rune(strings.Join(strings.Fields(t.Description), " "))
	if descWidth < 10 {
		desc = nil
	} else if len(desc) > descWidth {
		desc = append(desc[:descWidth-1], '…')
	}

	return fmt.Sprintf("  %s%s  %s", cursor, titleStyle.Render(t.Title), theme.Muted.Render(string(desc)))
}
