package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/wavegrid/internal/wave"
)

// CellWidth is how many terminal columns one grid cell occupies.
const CellWidth = 2

// RenderGrid draws a frame as rows of background-colored blocks.
func RenderGrid(frame [][]wave.Cell, phase int) string {
	pad := strings.Repeat(" ", CellWidth)
	var b strings.Builder
	for i, row := range frame {
		for _, c := range row {
			hex := wave.CellColor(c, phase).Hex()
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(pad))
		}
		if i < len(frame)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
