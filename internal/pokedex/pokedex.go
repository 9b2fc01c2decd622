// Package pokedex holds the ordered roster of Pokemon records, its JSON
// persistence, and the Trainer session that owns it.
package pokedex

import (
	"fmt"

	"github.com/mesh-intelligence/pokedex/internal/charts"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// Pokedex is an ordered collection of records. Insertion order is kept and
// duplicate names are allowed. It is not safe for concurrent use.
type Pokedex struct {
	pokemon []*types.Pokemon
}

// New returns an empty Pokedex.
func New() *Pokedex {
	return &Pokedex{}
}

// AddExisting appends a constructed record. The Pokedex takes ownership of
// p; callers that keep using p afterwards should pass p.Clone().
func (d *Pokedex) AddExisting(p *types.Pokemon) error {
	if p == nil {
		return types.ErrNilPokemon
	}
	d.pokemon = append(d.pokemon, p)
	return nil
}

// Len returns the number of records.
func (d *Pokedex) Len() int {
	return len(d.pokemon)
}

// Get returns the stored record at index i for in-place edits.
// Returns ErrNotFound when i is out of range.
func (d *Pokedex) Get(i int) (*types.Pokemon, error) {
	if i < 0 || i >= len(d.pokemon) {
		return nil, fmt.Errorf("%w: index %d (have %d)", types.ErrNotFound, i, len(d.pokemon))
	}
	return d.pokemon[i], nil
}

// Find returns the index of the first record named name, or -1.
func (d *Pokedex) Find(name string) int {
	for i, p := range d.pokemon {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Edit applies a single field edit to the record at index i.
func (d *Pokedex) Edit(i int, field, value string) (*types.Pokemon, error) {
	p, err := d.Get(i)
	if err != nil {
		return nil, err
	}
	return p.Edit(field, value)
}

// Records returns copies of every record in order.
func (d *Pokedex) Records() []*types.Pokemon {
	out := make([]*types.Pokemon, 0, len(d.pokemon))
	for _, p := range d.pokemon {
		out = append(out, p.Clone())
	}
	return out
}

// Names returns the record names in order.
func (d *Pokedex) Names() []string {
	out := make([]string, 0, len(d.pokemon))
	for _, p := range d.pokemon {
		out = append(out, p.Name)
	}
	return out
}

// LoadFromFile appends every record in the roster file at path, in file
// order. Loading is all-or-nothing: a missing file, malformed JSON, or an
// entry missing a key returns an error wrapping types.ErrLoad and leaves the
// Pokedex unchanged.
func (d *Pokedex) LoadFromFile(path string) error {
	loaded, err := readRoster(path)
	if err != nil {
		return err
	}
	d.pokemon = append(d.pokemon, loaded...)
	return nil
}

// SaveToFile writes every record to path, replacing any existing file.
// Errors wrap types.ErrIO.
func (d *Pokedex) SaveToFile(path string) error {
	data, err := EncodeRecords(d.pokemon)
	if err != nil {
		return fmt.Errorf("%w: encoding roster: %w", types.ErrIO, err)
	}
	return writeRoster(path, data)
}

// GenerateStatisticsCharts writes the eight statistics charts for the
// current records and returns their paths.
func (d *Pokedex) GenerateStatisticsCharts(opts charts.Options) ([]string, error) {
	return charts.Generate(d.pokemon, opts)
}
