package dictionary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/shlvgit07/basmach/internal/coach"
	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/router"
)

func termCount(d *DictionaryScreen) int {
	n := 0
	for _, r := range d.rows {
		if r.kind == rowTerm {
			n++
		}
	}
	return n
}

func TestNewShowsEveryTerm(t *testing.T) {
	d := New()
	if got, want := termCount(d), len(glossary.Terms()); got != want {
		t.Errorf("expected %d terms, got %d", want, got)
	}
	if d.rows[0].kind != rowCategoryHeader {
		t.Error("expected list to open with a category header")
	}
	if d.selected() == nil {
		t.Fatal("expected cursor on the first term")
	}
}

func TestTabFiltersByCategory(t *testing.T) {
	d := New()
	d.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	if d.category != glossary.Categories()[1] {
		t.Fatalf("expected second category, got %q", d.category)
	}
	want := len(glossary.Filter(glossary.Terms(), "", d.category))
	if got := termCount(d); got != want {
		t.Errorf("expected %d terms, got %d", want, got)
	}
	for _, r := range d.rows {
		if r.category != d.category {
			t.Errorf("row from category %q leaked into %q", r.category, d.category)
		}
	}

	d.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if d.category != glossary.CategoryAll {
		t.Errorf("expected shift+tab back to all, got %q", d.category)
	}
}

func TestTypingFilters(t *testing.T) {
	d := New()
	for _, r := range "zzzz" {
		d.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if d.query != "zzzz" {
		t.Fatalf("expected query to follow input, got %q", d.query)
	}
	if len(d.rows) != 0 {
		t.Errorf("expected no rows, got %d", len(d.rows))
	}
	if !strings.Contains(d.View(100, 30), "לא נמצאו מושגים") {
		t.Error("expected empty-state message")
	}
	if _, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("enter with nothing selected should do nothing")
	}
}

func TestCursorSkipsHeaders(t *testing.T) {
	d := New()
	start := d.cursor
	d.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if d.cursor != start {
		t.Errorf("cursor should stay on the first term, got %d", d.cursor)
	}

	for i := 0; i < len(d.rows); i++ {
		d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		if d.rows[d.cursor].kind != rowTerm {
			t.Fatalf("cursor landed on a header at %d", d.cursor)
		}
	}
}

func TestEnterPushesDetail(t *testing.T) {
	d := New()
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	detail := push.Screen.(*TermDetailScreen)
	if detail.Title() != d.selected().Title {
		t.Errorf("expected detail for %q, got %q", d.selected().Title, detail.Title())
	}

	_, cmd = detail.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	if ev, ok := cmd().(coach.PracticeTerm); !ok || ev.TermID != d.selected().ID {
		t.Errorf("expected PracticeTerm for %q, got %#v", d.selected().ID, cmd())
	}
}

func TestCtrlPPracticesSelected(t *testing.T) {
	d := New()
	_, cmd := d.Update(tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected practice command")
	}
	if ev, ok := cmd().(coach.PracticeTerm); !ok || ev.TermID != d.selected().ID {
		t.Errorf("expected PracticeTerm, got %#v", cmd())
	}
}

func TestEscClosesDictionary(t *testing.T) {
	_, cmd := New().Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected close command")
	}
	if _, ok := cmd().(coach.CloseDictionary); !ok {
		t.Errorf("expected CloseDictionary, got %T", cmd())
	}
}

func TestDetailView(t *testing.T) {
	term, ok := glossary.Lookup("p3")
	if !ok {
		t.Fatal("missing bundled term p3")
	}
	view := newTermDetail(term).View(100, 40)
	if !strings.Contains(view, term.Title) {
		t.Error("expected title in detail view")
	}
	if !strings.Contains(view, term.Category.Label()) {
		t.Error("expected category label in detail view")
	}
}
