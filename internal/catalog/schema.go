package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Violation is one structural problem found while validating a document.
type Violation struct {
	Path   string // location in the document, e.g. "multiple_star_systems[0].stars"
	Reason string
}

func (v Violation) String() string {
	return v.Path + ": " + v.Reason
}

// SchemaError reports every violation found in a document. Validation is
// all-or-nothing: a single violation rejects the whole catalog.
type SchemaError struct {
	Violations []Violation
}

func (e *SchemaError) Error() string {
	if len(e.Violations) == 1 {
		return "catalog schema: " + e.Violations[0].String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "catalog schema: %d violations:", len(e.Violations))
	for _, v := range e.Violations {
		b.WriteString("\n  ")
		b.WriteString(v.String())
	}
	return b.String()
}

// fieldSpec binds a wire key to the internal field it populates. The two
// names may differ: the spectral type is serialized as "class", a key the
// model deliberately does not use as a field name.
type fieldSpec struct {
	wire  string
	field string
}

var (
	catalogFields = []fieldSpec{
		{wire: "single_star_systems", field: "SingleStarSystems"},
		{wire: "multiple_star_systems", field: "MultipleStarSystems"},
	}
	starFields = []fieldSpec{
		{wire: "name", field: "Name"},
		{wire: "right_ascension", field: "RightAscension"},
		{wire: "declination", field: "Declination"},
		{wire: "distance", field: "Distance"},
		{wire: "class", field: "SpectralType"},
	}
	systemFields = []fieldSpec{
		{wire: "name", field: "Name"},
		{wire: "stars", field: "Stars"},
	}
	raFields = []fieldSpec{
		{wire: "hours", field: "Hours"},
		{wire: "minutes", field: "Minutes"},
		{wire: "seconds", field: "Seconds"},
	}
	decFields = []fieldSpec{
		{wire: "degrees", field: "Degrees"},
		{wire: "minutes", field: "Minutes"},
		{wire: "seconds", field: "Seconds"},
	}
	distanceFields = []fieldSpec{
		{wire: "light_years", field: "LightYears"},
	}
)

// Parse validates raw JSON bytes against the catalog schema and builds the
// typed catalog. All violations are accumulated before the document is
// rejected, so one load reports every problem at once.
func Parse(data []byte) (*Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, &SchemaError{Violations: []Violation{
			{Path: "$", Reason: "invalid JSON: " + err.Error()},
		}}
	}
	if dec.More() {
		return nil, &SchemaError{Violations: []Violation{
			{Path: "$", Reason: "trailing data after document"},
		}}
	}

	v := &validator{}
	cat := parseCatalog(root, v)
	if err := v.err(); err != nil {
		return nil, err
	}
	return cat, nil
}

// validator accumulates violations while the document tree is walked.
type validator struct {
	violations []Violation
}

func (v *validator) addf(path, format string, args ...any) {
	v.violations = append(v.violations, Violation{Path: path, Reason: fmt.Sprintf(format, args...)})
}

func (v *validator) err() error {
	if len(v.violations) == 0 {
		return nil
	}
	return &SchemaError{Violations: v.violations}
}

// checkKeys enforces the strict allow-list for one object: every declared
// wire key must be present, and no undeclared key may appear.
func (v *validator) checkKeys(obj map[string]any, path string, fields []fieldSpec) {
	allowed := make(map[string]bool, len(fields))
	for _, f := range fields {
		allowed[f.wire] = true
		if _, ok := obj[f.wire]; !ok {
			v.addf(path, "missing required field %q", f.wire)
		}
	}

	extra := make([]string, 0, len(obj))
	for k := range obj {
		if !allowed[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		v.addf(joinPath(path, k), "unknown field")
	}
}

func joinPath(path, key string) string {
	if path == "$" {
		return key
	}
	return path + "." + key
}

func indexPath(path, key string, i int) string {
	return fmt.Sprintf("%s[%d]", joinPath(path, key), i)
}

// stringField extracts a string value. Missing keys are not re-reported
// here; checkKeys already covers them.
func (v *validator) stringField(obj map[string]any, path, key string) (string, bool) {
	raw, ok := obj[key]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		v.addf(joinPath(path, key), "must be a string")
		return "", false
	}
	return s, true
}

func (v *validator) intField(obj map[string]any, path, key string) (int, bool) {
	raw, ok := obj[key]
	if !ok {
		return 0, false
	}
	num, ok := raw.(json.Number)
	if !ok {
		v.addf(joinPath(path, key), "must be an integer")
		return 0, false
	}
	n, err := num.Int64()
	if err != nil {
		v.addf(joinPath(path, key), "must be an integer, got %s", num)
		return 0, false
	}
	return int(n), true
}

func (v *validator) floatField(obj map[string]any, path, key string) (float64, bool) {
	raw, ok := obj[key]
	if !ok {
		return 0, false
	}
	num, ok := raw.(json.Number)
	if !ok {
		v.addf(joinPath(path, key), "must be a number")
		return 0, false
	}
	f, err := num.Float64()
	if err != nil {
		v.addf(joinPath(path, key), "must be a number, got %s", num)
		return 0, false
	}
	return f, true
}

func (v *validator) objectValue(raw any, path string) (map[string]any, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		v.addf(path, "must be an object")
		return nil, false
	}
	return obj, true
}

func (v *validator) arrayField(obj map[string]any, path, key string) ([]any, bool) {
	raw, ok := obj[key]
	if !ok {
		return nil, false
	}
	arr, ok := raw.([]any)
	if !ok {
		v.addf(joinPath(path, key), "must be an array")
		return nil, false
	}
	return arr, true
}

func parseCatalog(root any, v *validator) *Catalog {
	obj, ok := v.objectValue(root, "$")
	if !ok {
		return nil
	}
	v.checkKeys(obj, "$", catalogFields)

	cat := &Catalog{}
	if arr, ok := v.arrayField(obj, "$", "single_star_systems"); ok {
		cat.SingleStarSystems = make([]Star, 0, len(arr))
		for i, raw := range arr {
			cat.SingleStarSystems = append(cat.SingleStarSystems,
				parseStar(raw, indexPath("$", "single_star_systems", i), v))
		}
	}
	if arr, ok := v.arrayField(obj, "$", "multiple_star_systems"); ok {
		cat.MultipleStarSystems = make([]MultipleStarSystem, 0, len(arr))
		for i, raw := range arr {
			cat.MultipleStarSystems = append(cat.MultipleStarSystems,
				parseSystem(raw, indexPath("$", "multiple_star_systems", i), v))
		}
	}
	return cat
}

func parseStar(raw any, path string, v *validator) Star {
	obj, ok := v.objectValue(raw, path)
	if !ok {
		return Star{}
	}
	v.checkKeys(obj, path, starFields)

	var s Star
	if name, ok := v.stringField(obj, path, "name"); ok {
		if name == "" {
			v.addf(joinPath(path, "name"), "must not be empty")
		}
		s.Name = name
	}
	if class, ok := v.stringField(obj, path, "class"); ok {
		if class == "" {
			v.addf(joinPath(path, "class"), "must not be empty")
		}
		s.SpectralType = class
	}
	if raw, ok := obj["right_ascension"]; ok {
		s.RightAscension = parseRA(raw, joinPath(path, "right_ascension"), v)
	}
	if raw, ok := obj["declination"]; ok {
		s.Declination = parseDec(raw, joinPath(path, "declination"), v)
	}
	if raw, ok := obj["distance"]; ok {
		s.Distance = parseDistance(raw, joinPath(path, "distance"), v)
	}
	return s
}

func parseRA(raw any, path string, v *validator) RightAscension {
	obj, ok := v.objectValue(raw, path)
	if !ok {
		return RightAscension{}
	}
	v.checkKeys(obj, path, raFields)

	var ra RightAscension
	if h, ok := v.intField(obj, path, "hours"); ok {
		if h < 0 || h >= 24 {
			v.addf(joinPath(path, "hours"), "must be in [0,24), got %d", h)
		}
		ra.Hours = h
	}
	ra.Minutes = v.minutesField(obj, path)
	ra.Seconds = v.secondsField(obj, path)
	return ra
}

func parseDec(raw any, path string, v *validator) Declination {
	obj, ok := v.objectValue(raw, path)
	if !ok {
		return Declination{}
	}
	v.checkKeys(obj, path, decFields)

	var dec Declination
	if d, ok := v.intField(obj, path, "degrees"); ok {
		if d < -90 || d > 90 {
			v.addf(joinPath(path, "degrees"), "must be in [-90,90], got %d", d)
		}
		dec.Degrees = d
	}
	dec.Minutes = v.minutesField(obj, path)
	dec.Seconds = v.secondsField(obj, path)
	return dec
}

func (v *validator) minutesField(obj map[string]any, path string) int {
	m, ok := v.intField(obj, path, "minutes")
	if ok && (m < 0 || m >= 60) {
		v.addf(joinPath(path, "minutes"), "must be in [0,60), got %d", m)
	}
	return m
}

func (v *validator) secondsField(obj map[string]any, path string) float64 {
	s, ok := v.floatField(obj, path, "seconds")
	if ok && (s < 0 || s >= 60) {
		v.addf(joinPath(path, "seconds"), "must be in [0,60), got %g", s)
	}
	return s
}

func parseDistance(raw any, path string, v *validator) Distance {
	obj, ok := v.objectValue(raw, path)
	if !ok {
		return Distance{}
	}
	v.checkKeys(obj, path, distanceFields)

	var d Distance
	if ly, ok := v.floatField(obj, path, "light_years"); ok {
		if ly < 0 {
			v.addf(joinPath(path, "light_years"), "must be non-negative, got %g", ly)
		}
		d.LightYears = ly
	}
	return d
}

func parseSystem(raw any, path string, v *validator) MultipleStarSystem {
	obj, ok := v.objectValue(raw, path)
	if !ok {
		return MultipleStarSystem{}
	}
	v.checkKeys(obj, path, systemFields)

	var sys MultipleStarSystem
	if name, ok := v.stringField(obj, path, "name"); ok {
		if name == "" {
			v.addf(joinPath(path, "name"), "must not be empty")
		}
		sys.Name = name
	}
	if arr, ok := v.arrayField(obj, path, "stars"); ok {
		if len(arr) < 2 {
			v.addf(joinPath(path, "stars"), "must contain at least 2 stars, got %d", len(arr))
		}
		sys.Stars = make([]Star, 0, len(arr))
		for i, raw := range arr {
			sys.Stars = append(sys.Stars, parseStar(raw, indexPath(path, "stars", i), v))
		}
	}
	return sys
}
