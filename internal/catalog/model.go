// Package catalog loads and validates the nearby-star catalog document.
package catalog

// RightAscension is a sky-longitude angle in hour-minute-second form.
// Hours run [0,24), minutes and seconds [0,60).
type RightAscension struct {
	Hours   int
	Minutes int
	Seconds float64
}

// Declination is a sky-latitude angle in degree-minute-second form.
// Degrees run [-90,90], minutes and seconds [0,60). Southern declinations
// carry the sign on the degrees component.
type Declination struct {
	Degrees int
	Minutes int
	Seconds float64
}

// Distance is a wrapped light-year quantity.
type Distance struct {
	LightYears float64
}

// Star is one cataloged star. SpectralType is an open string ("M5.5Ve",
// "G2V", "DA2", ...); only its leading character drives classification.
// On the wire the field is named "class".
type Star struct {
	Name           string
	RightAscension RightAscension
	Declination    Declination
	Distance       Distance
	SpectralType   string
}

// MultipleStarSystem is a gravitationally bound group of at least two
// stars, plotted at the position of its first member.
type MultipleStarSystem struct {
	Name  string
	Stars []Star
}

// Catalog is the validated top-level document. It is built once per run
// and never mutated afterwards. The origin of the coordinate frame is the
// implicit observer at (0,0,0); the document carries no center entity.
type Catalog struct {
	SingleStarSystems   []Star
	MultipleStarSystems []MultipleStarSystem
}
