package output

import "github.com/charmbracelet/lipgloss"

// Color palette - single lime accent, matching the rest of the tooling.
const (
	colorLime     = "154" // Primary accent - bright lime green
	colorWhite    = "255" // Headers, important text
	colorGray     = "245" // Secondary text, labels
	colorDarkGray = "238" // Separators
	colorRed      = "196" // Errors
	colorYellow   = "220" // Warnings
)

// Styles holds the lipgloss styles for report rendering.
type Styles struct {
	Header  lipgloss.Style
	Keyword lipgloss.Style
	Count   lipgloss.Style
	File    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultStyles returns styled components for TTY output.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorWhite)),
		Keyword: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorLime)),
		Count:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
		File:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(colorLime)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(colorYellow)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed)),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorDarkGray)),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle(),
		Keyword: lipgloss.NewStyle(),
		Count:   lipgloss.NewStyle(),
		File:    lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle(),
	}
}
