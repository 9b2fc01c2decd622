// Package sqlite implements the SQLite query index over a pokedex roster.
// The JSON roster file stays the source of truth; the index is rebuilt from
// it on every Open and answers filter and aggregate queries.
package sqlite

import "github.com/mesh-intelligence/pokedex/pkg/types"

// Schema DDL for the index tables.
const (
	createPokemon = `CREATE TABLE pokemon (
    seq INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    national_number TEXT NOT NULL,
    type TEXT NOT NULL,
    species TEXT NOT NULL,
    height TEXT NOT NULL,
    weight TEXT NOT NULL,
    total INTEGER NOT NULL,
    hp INTEGER NOT NULL,
    attack INTEGER NOT NULL,
    defense INTEGER NOT NULL,
    sp_attack INTEGER NOT NULL,
    sp_defense INTEGER NOT NULL,
    speed INTEGER NOT NULL
);`

	createAbilities = `CREATE TABLE abilities (
    seq INTEGER NOT NULL,
    ordinal INTEGER NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (seq, ordinal),
    FOREIGN KEY (seq) REFERENCES pokemon(seq) ON DELETE CASCADE
);`
)

// Index DDL for common queries.
const (
	idxPokemonType   = `CREATE INDEX idx_pokemon_type ON pokemon(type);`
	idxPokemonName   = `CREATE INDEX idx_pokemon_name ON pokemon(name);`
	idxAbilitiesName = `CREATE INDEX idx_abilities_name ON abilities(name);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createPokemon,
	createAbilities,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxPokemonType,
	idxPokemonName,
	idxAbilitiesName,
}

// pokemonColumns lists the pokemon columns in scan order.
var pokemonColumns = []string{
	"name", "national_number", "type", "species", "height", "weight",
	"total", "hp", "attack", "defense", "sp_attack", "sp_defense", "speed",
}

// filterColumns maps roster field names to pokemon columns. Abilities is
// matched through the abilities table instead.
var filterColumns = map[string]string{
	types.FieldName:           "name",
	types.FieldNationalNumber: "national_number",
	types.FieldType:           "type",
	types.FieldSpecies:        "species",
	types.FieldHeight:         "height",
	types.FieldWeight:         "weight",
	types.FieldTotal:          "total",
	types.FieldHP:             "hp",
	types.FieldAttack:         "attack",
	types.FieldDefense:        "defense",
	types.FieldSpAttack:       "sp_attack",
	types.FieldSpDefense:      "sp_defense",
	types.FieldSpeed:          "speed",
}
