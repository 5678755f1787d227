// Package render converts committed stroke geometry into vector
// drawing commands.
package render

import (
	"strconv"
	"strings"

	"NotesBuddy/internal/state"
)

// PathData converts a stroke's point sequence into SVG path data: a
// move-to for the first point followed by one line-to per remaining
// point, space-separated. A single-point path renders as just the move
// command (a degenerate, invisible stroke). Pure: identical input
// always yields identical output.
func PathData(points []state.Point) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M ")
	writeCoord(&b, points[0])
	for _, p := range points[1:] {
		b.WriteString(" L ")
		writeCoord(&b, p)
	}
	return b.String()
}

func writeCoord(b *strings.Builder, p state.Point) {
	b.WriteString(strconv.FormatFloat(float64(p.X), 'g', -1, 32))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(float64(p.Y), 'g', -1, 32))
}
