package catalog

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

const validStar = `{
	"name": "Proxima Centauri",
	"right_ascension": {"hours": 14, "minutes": 29, "seconds": 43.0},
	"declination": {"degrees": -62, "minutes": 40, "seconds": 46.0},
	"distance": {"light_years": 4.24},
	"class": "M5.5Ve"
}`

func validDoc() string {
	return fmt.Sprintf(`{
		"single_star_systems": [%s],
		"multiple_star_systems": [
			{"name": "Alpha Centauri", "stars": [%s, %s]}
		]
	}`, validStar, validStar, validStar)
}

func TestParseValidCatalog(t *testing.T) {
	cat, err := Parse([]byte(validDoc()))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(cat.SingleStarSystems) != 1 {
		t.Fatalf("got %d single systems, want 1", len(cat.SingleStarSystems))
	}
	star := cat.SingleStarSystems[0]
	if star.Name != "Proxima Centauri" {
		t.Errorf("name = %q", star.Name)
	}
	if star.RightAscension != (RightAscension{Hours: 14, Minutes: 29, Seconds: 43}) {
		t.Errorf("right ascension = %+v", star.RightAscension)
	}
	if star.Declination != (Declination{Degrees: -62, Minutes: 40, Seconds: 46}) {
		t.Errorf("declination = %+v", star.Declination)
	}
	if star.Distance.LightYears != 4.24 {
		t.Errorf("distance = %v", star.Distance.LightYears)
	}
	// The wire field "class" feeds SpectralType.
	if star.SpectralType != "M5.5Ve" {
		t.Errorf("spectral type = %q", star.SpectralType)
	}

	if len(cat.MultipleStarSystems) != 1 {
		t.Fatalf("got %d multiple systems, want 1", len(cat.MultipleStarSystems))
	}
	if n := len(cat.MultipleStarSystems[0].Stars); n != 2 {
		t.Errorf("system has %d stars, want 2", n)
	}
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantPath string // substring expected in a violation path
	}{
		{
			name:     "unknown top-level field",
			doc:      `{"single_star_systems": [], "multiple_star_systems": [], "center": {}}`,
			wantPath: "center",
		},
		{
			name: "unknown nested field",
			doc: `{"single_star_systems": [{
				"name": "X",
				"right_ascension": {"hours": 1, "minutes": 2, "seconds": 3, "epoch": "J2000"},
				"declination": {"degrees": 1, "minutes": 2, "seconds": 3},
				"distance": {"light_years": 1},
				"class": "M"
			}], "multiple_star_systems": []}`,
			wantPath: "right_ascension.epoch",
		},
		{
			name:     "missing required field",
			doc:      `{"single_star_systems": []}`,
			wantPath: "$",
		},
		{
			name: "one-star multiple system",
			doc: fmt.Sprintf(`{"single_star_systems": [],
				"multiple_star_systems": [{"name": "Lonely", "stars": [%s]}]}`, validStar),
			wantPath: "multiple_star_systems[0].stars",
		},
		{
			name: "bare distance number",
			doc: `{"single_star_systems": [{
				"name": "X",
				"right_ascension": {"hours": 1, "minutes": 2, "seconds": 3},
				"declination": {"degrees": 1, "minutes": 2, "seconds": 3},
				"distance": 4.24,
				"class": "M"
			}], "multiple_star_systems": []}`,
			wantPath: "distance",
		},
		{
			name: "fractional hours",
			doc: `{"single_star_systems": [{
				"name": "X",
				"right_ascension": {"hours": 1.5, "minutes": 2, "seconds": 3},
				"declination": {"degrees": 1, "minutes": 2, "seconds": 3},
				"distance": {"light_years": 1},
				"class": "M"
			}], "multiple_star_systems": []}`,
			wantPath: "right_ascension.hours",
		},
		{
			name: "hours out of range",
			doc: `{"single_star_systems": [{
				"name": "X",
				"right_ascension": {"hours": 24, "minutes": 0, "seconds": 0},
				"declination": {"degrees": 1, "minutes": 2, "seconds": 3},
				"distance": {"light_years": 1},
				"class": "M"
			}], "multiple_star_systems": []}`,
			wantPath: "right_ascension.hours",
		},
		{
			name: "minutes out of range",
			doc: `{"single_star_systems": [{
				"name": "X",
				"right_ascension": {"hours": 1, "minutes": 60, "seconds": 0},
				"declination": {"degrees": 1, "minutes": 2, "seconds": 3},
				"distance": {"light_years": 1},
				"class": "M"
			}], "multiple_star_systems": []}`,
			wantPath: "right_ascension.minutes",
		},
		{
			name: "declination past the pole",
			doc: `{"single_star_systems": [{
				"name": "X",
				"right_ascension": {"hours": 1, "minutes": 2, "seconds": 3},
				"declination": {"degrees": 95, "minutes": 0, "seconds": 0},
				"distance": {"light_years": 1},
				"class": "M"
			}], "multiple_star_systems": []}`,
			wantPath: "declination.degrees",
		},
		{
			name: "negative distance",
			doc: `{"single_star_systems": [{
				"name": "X",
				"right_ascension": {"hours": 1, "minutes": 2, "seconds": 3},
				"declination": {"degrees": 1, "minutes": 2, "seconds": 3},
				"distance": {"light_years": -1},
				"class": "M"
			}], "multiple_star_systems": []}`,
			wantPath: "distance.light_years",
		},
		{
			name: "empty name",
			doc: `{"single_star_systems": [{
				"name": "",
				"right_ascension": {"hours": 1, "minutes": 2, "seconds": 3},
				"declination": {"degrees": 1, "minutes": 2, "seconds": 3},
				"distance": {"light_years": 1},
				"class": "M"
			}], "multiple_star_systems": []}`,
			wantPath: "name",
		},
		{
			name:     "document not an object",
			doc:      `[1, 2, 3]`,
			wantPath: "$",
		},
		{
			name:     "invalid JSON",
			doc:      `{"single_star_systems": [`,
			wantPath: "$",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse accepted invalid document")
			}
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("error is %T, want *SchemaError", err)
			}
			found := false
			for _, v := range schemaErr.Violations {
				if strings.Contains(v.Path, tt.wantPath) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no violation at path containing %q; got %v", tt.wantPath, schemaErr.Violations)
			}
		})
	}
}

func TestParseSystemSizes(t *testing.T) {
	for _, n := range []int{2, 3} {
		stars := make([]string, n)
		for i := range stars {
			stars[i] = validStar
		}
		doc := fmt.Sprintf(`{"single_star_systems": [],
			"multiple_star_systems": [{"name": "S", "stars": [%s]}]}`,
			strings.Join(stars, ","))

		cat, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("%d-star system rejected: %v", n, err)
		}
		if got := len(cat.MultipleStarSystems[0].Stars); got != n {
			t.Errorf("got %d stars, want %d", got, n)
		}
	}
}

// One load reports every problem at once.
func TestParseAccumulatesViolations(t *testing.T) {
	doc := `{
		"single_star_systems": [{
			"name": "",
			"right_ascension": {"hours": 30, "minutes": 2, "seconds": 3},
			"declination": {"degrees": 1, "minutes": 2, "seconds": 3},
			"distance": {"light_years": -4},
			"class": "M",
			"magnitude": 11.1
		}],
		"multiple_star_systems": []
	}`

	_, err := Parse([]byte(doc))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error is %T, want *SchemaError", err)
	}
	if len(schemaErr.Violations) < 4 {
		t.Errorf("got %d violations, want at least 4: %v", len(schemaErr.Violations), schemaErr.Violations)
	}
}

func TestSchemaErrorMessage(t *testing.T) {
	err := &SchemaError{Violations: []Violation{
		{Path: "single_star_systems[0].name", Reason: "must not be empty"},
	}}
	want := "catalog schema: single_star_systems[0].name: must not be empty"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
