package render

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan, headings
	colorAccent  = lipgloss.Color("#FFD700") // Gold, chart type
	colorDefined = lipgloss.Color("#00E676") // Green, defined centers
	colorMuted   = lipgloss.Color("#8C8C8C") // Gray, labels and open centers
	colorDesign  = lipgloss.Color("#FF5252") // Red, unconscious activations
)

// Markers for center rows.
const (
	iconDefined = "●"
	iconOpen    = "○"
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleHeading = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginTop(1)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(12)

	styleDefined = lipgloss.NewStyle().
			Foreground(colorDefined).
			Bold(true)

	styleOpen = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDesign = lipgloss.NewStyle().
			Foreground(colorDesign)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)
