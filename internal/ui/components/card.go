package components

import (
	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for centered content.
func ContentWidth(frameWidth int) int {
	// Leave room for a border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// CodeBlock renders source code left-aligned in a dark box, whatever the
// direction of the surrounding text.
func CodeBlock(code string, cw int) string {
	return theme.Code.
		Width(cw - 2).
		Align(lipgloss.Left).
		Render(code)
}
