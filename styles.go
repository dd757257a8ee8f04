package qasmparser

import "github.com/charmbracelet/lipgloss"

// Diagram layout constants.
const (
	cellW        = 11 // width of each instruction column in characters
	labelVisualW = 7  // visual width of the qubit label area
	gateNameW    = 5  // width of a gate name inside its box
	gateBoxW     = 7  // ┤ + gateNameW + ├
)

// Lipgloss styles used by the circuit diagram.
var (
	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	qubitLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)
