// Package scene turns a validated catalog into renderable points.
package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-nearstars/internal/astro"
	"github.com/litescript/ls-nearstars/internal/catalog"
	"github.com/litescript/ls-nearstars/internal/spectral"
)

// Point is one plotted star: a Cartesian position in light-years, its
// display color, and a label.
type Point struct {
	Label string
	Pos   astro.Vec3
	Color colorful.Color
	Hex   string
}

// Build converts a catalog into points for the render adapter.
//
// Single systems produce one point each. A multiple system takes its
// position from the first member star; every member becomes its own point
// at that shared (x,y), fanned out vertically by astro.StackOffsets so the
// companions stay distinguishable at plot scale. Each member keeps its own
// spectral color and name.
func Build(cat *catalog.Catalog) ([]Point, error) {
	points := make([]Point, 0, len(cat.SingleStarSystems))

	for _, star := range cat.SingleStarSystems {
		p, err := starPoint(star, starPosition(star))
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	for _, sys := range cat.MultipleStarSystems {
		if len(sys.Stars) == 0 {
			continue
		}
		pos := starPosition(sys.Stars[0])
		offsets := astro.StackOffsets(len(sys.Stars))
		for i, member := range sys.Stars {
			p, err := starPoint(member, astro.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z + offsets[i]})
			if err != nil {
				return nil, fmt.Errorf("system %q: %w", sys.Name, err)
			}
			points = append(points, p)
		}
	}

	return points, nil
}

// starPosition projects a star's RA/Dec/distance into the plot frame.
func starPosition(s catalog.Star) astro.Vec3 {
	theta := astro.HoursToRadians(
		float64(s.RightAscension.Hours),
		float64(s.RightAscension.Minutes),
		s.RightAscension.Seconds,
	)
	phi := astro.DMSToRadians(
		float64(s.Declination.Degrees),
		float64(s.Declination.Minutes),
		s.Declination.Seconds,
	)
	return astro.SphericalToCartesian(s.Distance.LightYears, theta, phi)
}

func starPoint(s catalog.Star, pos astro.Vec3) (Point, error) {
	color, hex, err := spectral.ColorOf(s.SpectralType)
	if err != nil {
		return Point{}, fmt.Errorf("star %q: %w", s.Name, err)
	}
	return Point{Label: s.Name, Pos: pos, Color: color, Hex: hex}, nil
}
