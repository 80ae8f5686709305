// Package render draws the star scatter and summary table to a writer.
package render

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-nearstars/internal/scene"
)

// Config controls the scatter canvas.
type Config struct {
	Width  int // canvas width in cells
	Height int // canvas height in rows

	// BoundLY is the half-extent of the render cube: stars outside
	// [-BoundLY, +BoundLY] on any axis are clipped.
	BoundLY float64

	// View direction for the orthographic projection.
	AzimuthDeg   float64
	ElevationDeg float64

	Labels bool
}

// DefaultConfig returns the standard one-shot plot configuration: the
// ±12.5 light-year cube seen from the conventional oblique angle.
func DefaultConfig() Config {
	return Config{
		Width:        100,
		Height:       32,
		BoundLY:      12.5,
		AzimuthDeg:   -60,
		ElevationDeg: 30,
		Labels:       true,
	}
}

// projMargin covers the worst-case projected extent of a cube corner so
// the whole cube always fits on the canvas.
const projMargin = 1.6

var black = colorful.Color{}

// starPos tracks a star's screen cell for label rendering.
type starPos struct {
	x, y  int
	label string
}

// WriteScatter renders the points as a color-coded scatter plot. Farther
// stars are drawn first and shaded toward the background so nearer ones
// overwrite them, the same painter's-order trick the sky canvas uses for
// overlapping glyphs.
func WriteScatter(w io.Writer, points []scene.Point, cfg Config) {
	if cfg.Width < 20 || cfg.Height < 10 {
		fmt.Fprintln(w, "terminal too small for scatter view")
		return
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	fmt.Fprintf(w, "%s %s\n",
		header.Render("Nearby Stars"),
		dim.Render(fmt.Sprintf("±%.1f ly cube | view az %.0f° el %.0f°",
			cfg.BoundLY, cfg.AzimuthDeg, cfg.ElevationDeg)),
	)

	canvas := make([][]rune, cfg.Height)
	colors := make([][]lipgloss.Color, cfg.Height)
	for y := range canvas {
		canvas[y] = make([]rune, cfg.Width)
		colors[y] = make([]lipgloss.Color, cfg.Width)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	az := cfg.AzimuthDeg * math.Pi / 180
	el := cfg.ElevationDeg * math.Pi / 180
	cx := cfg.Width / 2
	cy := cfg.Height / 2
	scale := math.Min(float64(cfg.Width-2)/2, float64(cfg.Height-2)) / (projMargin * cfg.BoundLY)

	// Far-to-near draw order.
	type projected struct {
		p     scene.Point
		u, v  float64
		depth float64
	}
	projs := make([]projected, 0, len(points))
	for _, p := range points {
		if math.Abs(p.Pos.X) > cfg.BoundLY ||
			math.Abs(p.Pos.Y) > cfg.BoundLY ||
			math.Abs(p.Pos.Z) > cfg.BoundLY {
			continue
		}
		u, v, depth := project(p.Pos.X, p.Pos.Y, p.Pos.Z, az, el)
		projs = append(projs, projected{p: p, u: u, v: v, depth: depth})
	}
	sort.Slice(projs, func(i, j int) bool { return projs[i].depth < projs[j].depth })

	var positions []starPos
	for _, pr := range projs {
		x := cx + int(pr.u*scale)
		y := cy - int(pr.v*scale*0.5) // terminal cells are ~2x taller than wide
		if x < 0 || x >= cfg.Width || y < 0 || y >= cfg.Height {
			continue
		}

		shade := depthShade(pr.p.Color, pr.depth, cfg.BoundLY)
		canvas[y][x] = depthGlyph(pr.depth, cfg.BoundLY)
		colors[y][x] = lipgloss.Color(shade.Hex())

		positions = append(positions, starPos{x: x, y: y, label: pr.p.Label})
	}

	// Observer origin marker.
	if ox, oy := cx, cy; canvas[oy][ox] == ' ' {
		canvas[oy][ox] = '☉'
		colors[oy][ox] = "220"
	}

	if cfg.Labels {
		renderLabels(canvas, colors, cfg.Width, cfg.Height, positions)
	}

	for y := 0; y < cfg.Height; y++ {
		var line strings.Builder
		for x := 0; x < cfg.Width; x++ {
			ch := canvas[y][x]
			if ch == ' ' {
				line.WriteRune(ch)
				continue
			}
			line.WriteString(lipgloss.NewStyle().Foreground(colors[y][x]).Render(string(ch)))
		}
		fmt.Fprintln(w, line.String())
	}
}

// project applies the oblique orthographic view: rotate the plot frame by
// the view azimuth around Z, tilt by the elevation, then read off the
// screen plane. Positive depth faces the viewer.
func project(x, y, z, az, el float64) (u, v, depth float64) {
	x1 := x*math.Cos(az) + y*math.Sin(az)
	y1 := -x*math.Sin(az) + y*math.Cos(az)

	u = x1
	v = z*math.Cos(el) - y1*math.Sin(el)
	depth = -(y1*math.Cos(el) + z*math.Sin(el))
	return u, v, depth
}

// depthShade darkens a star color the farther behind the view plane it
// sits, so depth reads even on a flat canvas.
func depthShade(c colorful.Color, depth, bound float64) colorful.Color {
	t := depth / (projMargin * bound) // roughly -1..1, positive = near
	if t > 1 {
		t = 1
	} else if t < -1 {
		t = -1
	}
	fade := (1 - t) / 2 * 0.55
	return c.BlendLab(black, fade)
}

func depthGlyph(depth, bound float64) rune {
	switch t := depth / (projMargin * bound); {
	case t > 0.25:
		return '✦'
	case t > -0.25:
		return '✶'
	default:
		return '·'
	}
}

// renderLabels writes each star's name to the right of its glyph, into
// empty cells only so labels never clobber stars or each other.
func renderLabels(canvas [][]rune, colors [][]lipgloss.Color, width, height int, positions []starPos) {
	for _, pos := range positions {
		labelX := pos.x + 2
		if pos.y < 0 || pos.y >= height || labelX >= width {
			continue
		}
		for i, r := range pos.label {
			x := labelX + i
			if x >= width {
				break
			}
			if canvas[pos.y][x] != ' ' {
				break
			}
			canvas[pos.y][x] = r
			colors[pos.y][x] = "249"
		}
	}
}
