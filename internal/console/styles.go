package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// theme holds the styles used for menus and feedback lines
type theme struct {
	banner  lipgloss.Style
	header  lipgloss.Style
	item    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// newTheme binds the styles to the writer so colors are dropped when it is not a terminal
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		banner:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		item:    r.NewStyle().Foreground(lipgloss.Color("#DDDDDD")),
		success: r.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}
