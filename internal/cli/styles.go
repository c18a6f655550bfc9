package cli

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headlineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	dateStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	urlStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Underline(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)
)
