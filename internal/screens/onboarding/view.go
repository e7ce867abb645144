package onboarding

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/ui/components"
	"github.com/shlvgit07/basmach/internal/ui/layout"
	"github.com/shlvgit07/basmach/internal/ui/theme"
)

func (o *OnboardingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string

	sections = append(sections, center.Render(theme.Title.Render(layout.AppName)))
	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		sections = append(sections, center.Render(theme.Subtitle.Render("בחרו נושא לתרגול, הבינה המלאכותית תכין לכם שאלות")))
	}

	if !o.opts.LLMReady {
		sections = append(sections, renderLLMBanner(cw))
	}

	sections = append(sections, center.Render(renderDifficulty(difficultyLabel(o.difficulty))))
	sections = append(sections, components.Card(o.menu.View(), cw))

	if o.opts.LatestVersion != "" {
		sections = append(sections, renderUpdateNote(o.opts.LatestVersion, cw))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderDifficulty(label string) string {
	return theme.Muted.Render("רמת קושי: ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(label)
}

// renderLLMBanner renders a warning banner when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set GEMINI_API_KEY to generate questions (see basmach --help)")
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("New version %s available, run basmach update", latestVersion))
}
