package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Navy and sky blue palette shared with the web client.
var (
	Primary   = lipgloss.Color("#3B82F6")
	Secondary = lipgloss.Color("#0EA5E9")
	Accent    = lipgloss.Color("#F59E0B")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	BgCode    = lipgloss.Color("#020617")
	Border    = lipgloss.Color("#334155")
)

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// Text styles.
var (
	Title     = fg(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle  = fg(TextDim).Align(lipgloss.Center)
	Hint      = fg(TextDim).Italic(true)
	ErrorText = fg(Error).Bold(true)

	Selected   = fg(Primary).Bold(true)
	Unselected = fg(Text)
	Muted      = fg(TextDim)
	Correct    = fg(Success).Bold(true)
	Incorrect  = fg(Error).Bold(true)
)

// Boxes.
var (
	Code = lipgloss.NewStyle().
		Background(BgCode).
		Foreground(Text).
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	// Explanation frames the feedback shown after an answer is submitted.
	Explanation = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Foreground(Text).
			Padding(0, 1)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	UserBubble      = lipgloss.NewStyle().Foreground(Text).Background(Primary).Padding(0, 1)
	AssistantBubble = lipgloss.NewStyle().Foreground(Text).Background(BgCard).Padding(0, 1)
)
