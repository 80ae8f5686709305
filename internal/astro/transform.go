package astro

import "math"

// degreesPerHour is the sky rotation rate: 24 hours of right ascension
// cover the full 360 degrees.
const degreesPerHour = 15

// DMSToRadians converts a degrees-minutes-seconds triple to radians.
// Minutes and seconds are added to the signed degree value as-is, so a
// southern declination carries its sign in the degrees component.
func DMSToRadians(degrees, minutes, seconds float64) float64 {
	return (degrees + minutes/60 + seconds/3600) * math.Pi / 180
}

// HoursToRadians converts an hours-minutes-seconds right ascension triple
// to radians. The whole triple is evaluated in the degree slot first, then
// scaled by 15 degrees per hour.
func HoursToRadians(hours, minutes, seconds float64) float64 {
	return DMSToRadians(hours, minutes, seconds) * degreesPerHour
}

// SphericalToCartesian converts a distance plus two sky angles into a
// Cartesian point. theta is the right-ascension-derived azimuth and phi the
// declination-derived elevation, both in radians.
//
// The negated cosine in Y is the plotting convention this projection was
// built around, not the textbook spherical formula. Keep it.
func SphericalToCartesian(radius, theta, phi float64) Vec3 {
	return Vec3{
		X: radius * math.Cos(phi) * math.Sin(theta),
		Y: radius * math.Cos(phi) * -math.Cos(theta),
		Z: radius * math.Sin(phi),
	}
}

// StackOffsets returns the vertical offsets used to fan out the members of
// an n-star system sharing one plotted position: a 0.6 light-year spaced
// stack centered on zero, top member first. Two stars get {+0.3, -0.3},
// three get {+0.6, 0, -0.6}, larger systems extend the same spacing.
func StackOffsets(n int) []float64 {
	if n <= 1 {
		return []float64{0}
	}
	const spacing = 0.6
	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = (float64(n-1)/2 - float64(i)) * spacing
	}
	return offsets
}
