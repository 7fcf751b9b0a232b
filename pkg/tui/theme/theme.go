// Package theme centralizes Lip Gloss styles for the planner TUI.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme groups the styles used across the planner views.
type Theme struct {
	Page     PageTheme
	Calendar CalendarTheme
	Footer   FooterTheme
}

// PageTheme styles the main page pane.
type PageTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Accent   lipgloss.Style
}

// CalendarTheme styles the month grids.
type CalendarTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// FooterTheme styles the bottom status bar.
type FooterTheme struct {
	Help     lipgloss.Style
	Status   lipgloss.Style
	Position lipgloss.Style
	Mode     lipgloss.Style
}

// Default returns the built-in theme. Accent colors adapt to the terminal
// background.
func Default() Theme {
	accent := lipgloss.Color("212")
	if !termenv.HasDarkBackground() {
		accent = lipgloss.Color("162")
	}

	return Theme{
		Page: PageTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Body:     lipgloss.NewStyle(),
			Accent:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		},
		Footer: FooterTheme{
			Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Position: lipgloss.NewStyle().Foreground(accent),
			Mode:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
	}
}

var (
	progressStart, _ = colorful.Hex("#5a56e0")
	progressEnd, _   = colorful.Hex("#ee6ff8")
)

// ProgressColor blends the year-progress gradient at t in [0, 1].
func ProgressColor(t float64) color.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lipgloss.Color(progressStart.BlendLuv(progressEnd, t).Hex())
}
