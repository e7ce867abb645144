// Package welcome shows the splash screen in front of the topic menu.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/router"
	"github.com/shlvgit07/basmach/internal/screen"
	"github.com/shlvgit07/basmach/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const terminalArt = `  ╭─────────────╮
  │ ┌─────────┐ │
  │ │  </>_   │ │
  │ │ if x>0  │ │
  │ │   ...   │ │
  │ └─────────┘ │
  ╰──────┬──────╯
     ────┴────`

// Tagline is shown under the banner.
const Tagline = "מתכוננים למבחני הקבלה לבסמ״ח"

var cursorFrames = []string{"▌", " "}

type tickMsg time.Time

// WelcomeScreen shows a short splash animation and hands over to the menu
// produced by next on the first key press.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will be replaced by the screen next builds.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	menu := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: menu}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	art := lipgloss.NewStyle().Foreground(theme.Secondary).Render(terminalArt)

	// Blinking cursor next to the screen once the first phase is over.
	if w.elapsed >= phase1End {
		cursor := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(cursorFrames[w.tickCount%len(cursorFrames)])
		lines := strings.Split(art, "\n")
		if len(lines) > 2 {
			lines[2] += " " + cursor
		}
		art = strings.Join(lines, "\n")
	}

	sections := []string{art}

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			"",
			theme.Hint.Render("הקש על מקש כלשהו להמשך"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
