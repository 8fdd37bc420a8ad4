package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/wavegrid/internal/wave"
)

// FrameToSVG converts a frame of cells to an SVG document. Each cell becomes
// a square of side cellSize with a one-unit gap.
func FrameToSVG(frame [][]wave.Cell, phase int, cellSize float64) string {
	if len(frame) == 0 {
		return ""
	}
	if cellSize <= 0 {
		cellSize = 16
	}

	rows, cols := len(frame), len(frame[0])
	width := float64(cols) * cellSize
	height := float64(rows) * cellSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	side := cellSize - 1
	if side < 1 {
		side = cellSize
	}
	for row, cells := range frame {
		for col, c := range cells {
			x := float64(col) * cellSize
			y := float64(row) * cellSize
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, side, side, wave.CellColor(c, phase).Hex()))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG writes FrameToSVG output to w.
func WriteSVG(w io.Writer, frame [][]wave.Cell, phase int, cellSize float64) error {
	_, err := io.WriteString(w, FrameToSVG(frame, phase, cellSize))
	return err
}
