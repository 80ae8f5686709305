// Command ls-nearstars renders the nearby-star catalog as a labeled,
// color-coded terminal scatter plot.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/litescript/ls-nearstars/internal/catalog"
	"github.com/litescript/ls-nearstars/internal/logging"
	"github.com/litescript/ls-nearstars/internal/render"
	"github.com/litescript/ls-nearstars/internal/scene"
	"github.com/litescript/ls-nearstars/internal/version"
)

// catalogFile is the fixed, co-located catalog document. There are no
// flags and no environment overrides: the run is load → plot → exit.
const catalogFile = "nearest_stars.json"

func main() {
	logger := logging.New(logging.LevelInfo)
	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *logging.Logger) error {
	logger.Debug("ls-nearstars %s", version.Version)

	path, err := locateCatalog()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(path)
	if err != nil {
		var schemaErr *catalog.SchemaError
		if errors.As(err, &schemaErr) {
			logger.Error("catalog rejected with %d violation(s)", len(schemaErr.Violations))
		}
		return err
	}
	logger.Debug("catalog ok: %d single systems, %d multiple systems",
		len(cat.SingleStarSystems), len(cat.MultipleStarSystems))

	points, err := scene.Build(cat)
	if err != nil {
		return err
	}

	cfg := render.DefaultConfig()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			cfg.Width = w
			cfg.Height = max(10, h-len(points)-6)
		}
	}

	render.WriteTable(os.Stdout, points)
	fmt.Println()
	render.WriteScatter(os.Stdout, points, cfg)
	return nil
}

// locateCatalog looks for the catalog in the working directory first,
// then next to the executable.
func locateCatalog() (string, error) {
	if _, err := os.Stat(catalogFile); err == nil {
		return catalogFile, nil
	}
	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), catalogFile)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("catalog file %s not found", catalogFile)
}
