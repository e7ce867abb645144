package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/ui/theme"
)

const bannerArt = `
 ██████╗  █████╗ ███████╗███╗   ███╗ █████╗  ██████╗██╗  ██╗
 ██╔══██╗██╔══██╗██╔════╝████╗ ████║██╔══██╗██╔════╝██║  ██║
 ██████╔╝███████║███████╗██╔████╔██║███████║██║     ███████║
 ██╔══██╗██╔══██║╚════██║██║╚██╔╝██║██╔══██║██║     ██╔══██║
 ██████╔╝██║  ██║███████║██║ ╚═╝ ██║██║  ██║╚██████╗██║  ██║
 ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "B A S M A C H"

// RenderBanner returns the BASMACH banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 62 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 62 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
