package cli

import "github.com/charmbracelet/lipgloss"

// Terminal colour palette.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary accents
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleOwner  = lipgloss.NewStyle().Foreground(colorWhite)
	styleColour = lipgloss.NewStyle().Foreground(colorCyan)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
)
