package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/ui/theme"
)

// ProgressBar is a one-line bar filled to Fraction of Width.
type ProgressBar struct {
	Fraction float64
	Width    int
	Fill     color.Color
}

// NewProgressBar returns a bar in the secondary color. fraction is clamped
// to [0,1].
func NewProgressBar(fraction float64, width int) ProgressBar {
	return ProgressBar{Fraction: fraction, Width: width, Fill: theme.Secondary}
}

func (p ProgressBar) View() string {
	w := max(p.Width, 4)
	filled := int(float64(w) * min(max(p.Fraction, 0), 1))

	return lipgloss.NewStyle().Foreground(p.Fill).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", w-filled))
}
