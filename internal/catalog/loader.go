package catalog

import (
	"fmt"
	"os"
)

// Load reads the catalog document at path and validates it. A read failure
// comes back as a wrapped I/O error; malformed or schema-violating content
// comes back as a *SchemaError. No repair or defaulting happens on either
// path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cat, nil
}
