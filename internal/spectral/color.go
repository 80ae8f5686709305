// Package spectral maps stellar spectral types to display colors.
package spectral

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// classHex maps the leading spectral class letter to its display color.
// A through Y follow the main-sequence/brown-dwarf temperature ladder;
// D covers white dwarfs.
var classHex = map[byte]string{
	'A': "#D7E1FF",
	'F': "#FFFFE0",
	'G': "#FFFF00",
	'K': "#FFA500",
	'M': "#FF0000",
	'L': "#FF6347",
	'T': "#FF69B4",
	'Y': "#DA70D6",
	'D': "#808080",
}

// classColors holds the parsed form of classHex, built once at init. The
// table is fixed, so a parse failure here is a programming error.
var classColors = func() map[byte]colorful.Color {
	m := make(map[byte]colorful.Color, len(classHex))
	for class, hex := range classHex {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(fmt.Sprintf("spectral: bad color table entry %c=%s: %v", class, hex, err))
		}
		m[class] = c
	}
	return m
}()

// UnknownClassError reports a spectral type whose leading character has no
// entry in the color table. There is no fallback color: an unclassifiable
// star fails the run.
type UnknownClassError struct {
	SpectralType string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("no color for spectral type %q", e.SpectralType)
}

// ColorOf returns the display color for a spectral type string, along with
// its hex form. Only the leading character is significant: "M5.5Ve"
// resolves through 'M'.
func ColorOf(spectralType string) (colorful.Color, string, error) {
	if spectralType == "" {
		return colorful.Color{}, "", &UnknownClassError{SpectralType: spectralType}
	}
	class := spectralType[0]
	c, ok := classColors[class]
	if !ok {
		return colorful.Color{}, "", &UnknownClassError{SpectralType: spectralType}
	}
	return c, classHex[class], nil
}
