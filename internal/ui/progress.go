package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Bar renders a horizontal mastery bar with a trailing percentage.
func Bar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}

	filled := int(float64(width) * percent)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	filledStr := lipgloss.NewStyle().
		Background(Secondary).
		Render(strings.Repeat(" ", filled))
	emptyStr := lipgloss.NewStyle().
		Background(Border).
		Render(strings.Repeat(" ", width-filled))

	pct := lipgloss.NewStyle().
		Foreground(TextDim).
		Render(fmt.Sprintf(" %3d%%", int(percent*100)))

	return filledStr + emptyStr + pct
}
