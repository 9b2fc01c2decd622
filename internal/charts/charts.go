// Package charts renders roster statistics as PNG bar charts: one chart of
// record counts per primary type and one chart per integer stat.
package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// Extension is appended to every chart base name.
const Extension = ".png"

// Options controls where charts are written and their pixel size.
type Options struct {
	Dir    string // Output directory; "" means the working directory.
	Prefix string // Prepended to each base name, e.g. "pokemon_".
	Width  int
	Height int
}

// DefaultOptions writes default-sized charts to the working directory.
func DefaultOptions() Options {
	return Options{
		Dir:    types.DefaultChartDir,
		Width:  types.DefaultChartWidth,
		Height: types.DefaultChartHeight,
	}
}

// Path returns the output path for a chart base name.
func (o Options) Path(name string) string {
	return filepath.Join(o.Dir, o.Prefix+name+Extension)
}

// Paths returns the eight output paths in the order of Names.
func (o Options) Paths() []string {
	out := make([]string, 0, len(Names))
	for _, n := range Names {
		out = append(out, o.Path(n))
	}
	return out
}

// Generate writes all eight charts for pokemon, replacing existing files,
// and returns the paths written. An empty roster still produces every
// chart. Write failures wrap types.ErrIO.
func Generate(pokemon []*types.Pokemon, opts Options) ([]string, error) {
	if opts.Dir == "" {
		opts.Dir = types.DefaultChartDir
	}
	if opts.Width < types.MinChartWidth || opts.Height < types.MinChartHeight {
		return nil, fmt.Errorf("%w: %dx%d", types.ErrChartSizeInvalid, opts.Width, opts.Height)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating chart dir: %w", types.ErrIO, err)
	}

	var written []string
	for _, s := range AllSeries(pokemon) {
		data, err := EncodePNG(s, opts.Width, opts.Height)
		if err != nil {
			return written, fmt.Errorf("%w: encoding %s: %w", types.ErrIO, s.Name, err)
		}
		path := opts.Path(s.Name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("%w: %w", types.ErrIO, err)
		}
		written = append(written, path)
	}
	return written, nil
}
