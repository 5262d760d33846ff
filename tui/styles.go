package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorGreen    = "#00B37E"
	colorGray     = "#8D8D99"
	colorLight    = "#E1E1E6"
	colorRed      = "#F75A68"
	colorBoxLight = "#323238"
)

var (
	postStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBoxLight)).
			Padding(0, 1)

	focusedPostStyle = postStyle.
				BorderForeground(lipgloss.Color(colorGreen))

	authorNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorLight)).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGreen)).
			Bold(true).
			Underline(true)

	validationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorRed))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(colorGreen)).
			Padding(0, 1)

	disabledButtonStyle = buttonStyle.
				Background(lipgloss.Color(colorBoxLight)).
				Foreground(lipgloss.Color(colorGray))

	commentStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedCommentStyle = commentStyle.
				Foreground(lipgloss.Color(colorLight)).
				Bold(true)
)
