package components

import (
	"github.com/shlvgit07/basmach/internal/ui/theme"
)

// Button renders a key-triggered action such as "[R] retry". Inactive
// buttons are drawn outlined.
func Button(key, label string, active bool) string {
	text := label
	if key != "" {
		text = "[" + key + "] " + label
	}
	if active {
		return theme.ButtonActive.Render(text)
	}
	return theme.ButtonInactive.Render(text)
}
