package inspector

import "github.com/charmbracelet/lipgloss"

// Style controls the inspector's rendering.
type Style struct {
	Offset lipgloss.Style

	// Loaded styles bytes covered by a loaded range; ZeroFill styles
	// everything else.
	Loaded   lipgloss.Style
	ZeroFill lipgloss.Style
	Cursor   lipgloss.Style

	RangeMap lipgloss.Style
	Status   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Offset:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Loaded:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ZeroFill: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		RangeMap: lipgloss.NewStyle().Foreground(lipgloss.Color("109")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
