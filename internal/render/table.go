package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/litescript/ls-nearstars/internal/scene"
)

// WriteTable writes an aligned text summary of every plotted point.
func WriteTable(w io.Writer, points []scene.Point) {
	fmt.Fprintf(w, "Plotted stars: %d\n", len(points))
	fmt.Fprintln(w, strings.Repeat("─", 78))

	if len(points) == 0 {
		fmt.Fprintln(w, "No stars in catalog")
		return
	}

	fmt.Fprintf(w, "%-24s %9s %9s %9s %9s  %-7s\n",
		"Name", "X (ly)", "Y (ly)", "Z (ly)", "Dist", "Color")
	fmt.Fprintln(w, strings.Repeat("─", 78))

	for _, p := range points {
		fmt.Fprintf(w, "%-24s %9.2f %9.2f %9.2f %9.2f  %-7s\n",
			truncateStr(p.Label, 24),
			p.Pos.X, p.Pos.Y, p.Pos.Z,
			p.Pos.Norm(),
			p.Hex,
		)
	}
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
