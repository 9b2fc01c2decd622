package pokedex

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pokedex/internal/charts"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// testmon matches the entry shape older roster files use: a bare integer
// national number.
var testmon = map[string]any{
	"name":            "Testmon",
	"National_number": 123,
	"Type":            "Test",
	"species":         "Tester",
	"Height":          "1.0m",
	"Weight":          "10.0kg",
	"Abilities":       []string{"Tackle"},
	"total":           100,
	"hp":              10,
	"attack":          20,
	"Defense":         10,
	"sp_attack":       30,
	"sp_defense":      20,
	"speed":           10,
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func species(t *testing.T, name string) *types.Pokemon {
	t.Helper()
	p, err := types.NewSpecies(name)
	require.NoError(t, err)
	return p
}

func TestLoadFromFileLoadsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_pokemon.json")
	writeJSON(t, path, []any{testmon})

	trainer := NewTrainer("", "")
	require.NoError(t, trainer.Pokedex.LoadFromFile(path))

	assert.Contains(t, trainer.Pokedex.Names(), "Testmon")

	p, err := trainer.Pokedex.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "123", p.NationalNumber)
	assert.Equal(t, []string{"Tackle"}, p.Abilities)
	assert.Equal(t, 30, p.SpAttack)
	assert.Equal(t, 10, p.Defense)
}

func TestLoadFromFileAppendsInFileOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	second := map[string]any{}
	for k, v := range testmon {
		second[k] = v
	}
	second["name"] = "Second"
	writeJSON(t, path, []any{testmon, second})

	d := New()
	require.NoError(t, d.AddExisting(species(t, "Pikachu")))
	require.NoError(t, d.LoadFromFile(path))

	assert.Equal(t, []string{"Pikachu", "Testmon", "Second"}, d.Names())
}

func TestLoadFromFileErrors(t *testing.T) {
	missingKey := map[string]any{}
	for k, v := range testmon {
		if k != "Defense" {
			missingKey[k] = v
		}
	}

	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: `[{"name": `},
		{name: "top level object", content: `{"name": "Testmon"}`},
		{name: "entry is not an object", content: `["Testmon"]`},
		{name: "null entry", content: `[null]`},
		{name: "stat is not an integer", content: `[{"name":"x","National_number":"1","Type":"t","species":"s","Height":"1.0m","Weight":"1.0kg","Abilities":[],"total":1.5,"hp":1,"attack":1,"Defense":1,"sp_attack":1,"sp_defense":1,"speed":1}]`},
		{name: "null document", content: `null`},
		{name: "null stat", content: `[{"name":"x","National_number":"1","Type":"t","species":"s","Height":"1.0m","Weight":"1.0kg","Abilities":[],"total":null,"hp":1,"attack":1,"Defense":1,"sp_attack":1,"sp_defense":1,"speed":1}]`},
		{name: "null abilities", content: `[{"name":"x","National_number":"1","Type":"t","species":"s","Height":"1.0m","Weight":"1.0kg","Abilities":null,"total":1,"hp":1,"attack":1,"Defense":1,"sp_attack":1,"sp_defense":1,"speed":1}]`},
		{name: "key differs only in case", content: `[{"name":"A","NAME":"B","National_number":"1","Type":"t","species":"s","Height":"1.0m","Weight":"1.0kg","Abilities":[],"total":1,"hp":1,"attack":1,"Defense":1,"sp_attack":1,"sp_defense":1,"speed":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			d := New()
			err := d.LoadFromFile(path)
			assert.ErrorIs(t, err, types.ErrLoad)
			assert.Zero(t, d.Len())
		})
	}

	t.Run("missing key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		writeJSON(t, path, []any{missingKey})

		err := New().LoadFromFile(path)
		assert.ErrorIs(t, err, types.ErrLoad)
		assert.ErrorContains(t, err, `"Defense"`)
	})

	t.Run("missing file", func(t *testing.T) {
		err := New().LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, types.ErrLoad)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadFromFileAllOrNothing(t *testing.T) {
	bad := map[string]any{"name": "Broken"}
	path := filepath.Join(t.TempDir(), "partial.json")
	writeJSON(t, path, []any{testmon, bad})

	d := New()
	require.NoError(t, d.AddExisting(species(t, "Eevee")))

	err := d.LoadFromFile(path)
	assert.ErrorIs(t, err, types.ErrLoad)
	assert.ErrorContains(t, err, "entry 1")
	assert.Equal(t, []string{"Eevee"}, d.Names(), "valid entries before the failure are not kept")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	src := filepath.Join(t.TempDir(), "src.json")
	writeJSON(t, src, []any{testmon})

	original := New()
	for _, name := range []string{"Bulbasaur", "Charmander", "Bulbasaur"} {
		require.NoError(t, original.AddExisting(species(t, name)))
	}
	require.NoError(t, original.AddExisting(types.NewPokemon("Bare", "", "", "", "", "", nil, 0, 0, 0, 0, 0, 0, 0)))
	require.NoError(t, original.LoadFromFile(src))

	require.NoError(t, original.SaveToFile(path))

	loaded := New()
	require.NoError(t, loaded.LoadFromFile(path))

	want := original.Records()
	got := loaded.Records()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i], "record %d", i)
	}
}

func TestSaveToFileWritesFormatKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	d := New()
	require.NoError(t, d.AddExisting(species(t, "Pikachu")))
	require.NoError(t, d.SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	for _, k := range types.Fields {
		assert.Contains(t, entries[0], k)
	}
	assert.Equal(t, "0025", entries[0]["National_number"])
}

func TestSaveToFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")

	d := New()
	require.NoError(t, d.AddExisting(species(t, "Snorlax")))
	require.NoError(t, d.AddExisting(species(t, "Eevee")))
	require.NoError(t, d.SaveToFile(path))

	smaller := New()
	require.NoError(t, smaller.AddExisting(species(t, "Squirtle")))
	require.NoError(t, smaller.SaveToFile(path))

	loaded := New()
	require.NoError(t, loaded.LoadFromFile(path))
	assert.Equal(t, []string{"Squirtle"}, loaded.Names())
}

func TestSaveToFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, New().SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestSaveToFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "roster.json")
	err := New().SaveToFile(path)
	assert.ErrorIs(t, err, types.ErrIO)
}

func TestAddExisting(t *testing.T) {
	d := New()
	assert.ErrorIs(t, d.AddExisting(nil), types.ErrNilPokemon)

	p := species(t, "Pikachu")
	require.NoError(t, d.AddExisting(p))
	require.NoError(t, d.AddExisting(species(t, "Pikachu")))
	assert.Equal(t, 2, d.Len(), "duplicates allowed")

	got, err := d.Get(0)
	require.NoError(t, err)
	assert.Same(t, p, got)
}

func TestGetOutOfRange(t *testing.T) {
	d := New()
	_, err := d.Get(0)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = d.Get(-1)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestEditThroughPokedex(t *testing.T) {
	d := New()
	require.NoError(t, d.AddExisting(species(t, "Pikachu")))

	p, err := d.Edit(0, types.FieldWeight, "7kg")
	require.NoError(t, err)
	assert.Equal(t, "7.0kg", p.Weight)

	stored, err := d.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "7.0kg", stored.Weight)

	_, err = d.Edit(3, types.FieldWeight, "7kg")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRecordsAreCopies(t *testing.T) {
	d := New()
	require.NoError(t, d.AddExisting(species(t, "Pikachu")))

	recs := d.Records()
	recs[0].Name = "Raichu"
	recs[0].Abilities[0] = "Changed"

	stored, err := d.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", stored.Name)
	assert.Equal(t, "Static", stored.Abilities[0])
}

func TestFind(t *testing.T) {
	d := New()
	require.NoError(t, d.AddExisting(species(t, "Eevee")))
	require.NoError(t, d.AddExisting(species(t, "Snorlax")))

	assert.Equal(t, 1, d.Find("Snorlax"))
	assert.Equal(t, -1, d.Find("Mew"))
}

func TestGenerateStatisticsCharts(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	trainer := NewTrainer("", "")
	for _, name := range []string{"Bulbasaur", "Charmander", "Pikachu"} {
		require.NoError(t, trainer.Pokedex.AddExisting(species(t, name)))
	}

	written, err := trainer.Pokedex.GenerateStatisticsCharts(charts.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, written, 8)

	for _, name := range charts.Names {
		assert.FileExists(t, name+charts.Extension)
	}
}

func TestGenerateStatisticsChartsEmpty(t *testing.T) {
	opts := charts.DefaultOptions()
	opts.Dir = t.TempDir()

	written, err := New().GenerateStatisticsCharts(opts)
	require.NoError(t, err)
	for _, path := range opts.Paths() {
		assert.Contains(t, written, path)
		assert.FileExists(t, path)
	}
}
