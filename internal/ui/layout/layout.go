package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shlvgit07/basmach/internal/ui/theme"
)

// AppName is shown at the left of the header.
const AppName = "בסמ״ח AI"

const (
	MinWidth  = 80
	MinHeight = 24

	// HeaderHeight and FooterHeight include the rounded border.
	HeaderHeight = 3
	FooterHeight = 3

	compactHeight = 30
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactHeight reports whether decorative rows should be dropped.
func IsCompactHeight(height int) bool {
	return height < compactHeight
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the window with a resize request.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf("The window is %d x %d.\n\nResize it to at least %d x %d.",
			width, height, MinWidth, MinHeight))
}

// bar boxes a single line of content the way header and footer share.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader centers title between the app name and an optional status.
func RenderHeader(title, status string, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + AppName)
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	tail := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	inner := max(width-4, 0)
	nameW, midW, tailW := lipgloss.Width(name), lipgloss.Width(mid), lipgloss.Width(tail)

	before := max((inner-midW)/2-nameW, 1)
	after := max(inner-nameW-before-midW-tailW, 1)

	return bar(name+strings.Repeat(" ", before)+mid+strings.Repeat(" ", after)+tail, width)
}

// RenderFooter lists key hints left to right.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description))
	}
	return bar(b.String(), width)
}

// RenderFrame stacks header, content and footer, giving content whatever
// height remains.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return strings.Join([]string{header, body, footer}, "\n")
}
