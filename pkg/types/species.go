package types

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// speciesTable holds the built-in records keyed by case-folded name.
var speciesTable = map[string]Pokemon{
	"bulbasaur": {
		Name: "Bulbasaur", NationalNumber: "0001", Type: "Grass", Species: "Seed Pokemon",
		Height: "0.7m", Weight: "6.9kg", Abilities: []string{"Overgrow", "Chlorophyll"},
		Total: 318, HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45,
	},
	"charmander": {
		Name: "Charmander", NationalNumber: "0004", Type: "Fire", Species: "Lizard Pokemon",
		Height: "0.6m", Weight: "8.5kg", Abilities: []string{"Blaze", "Solar Power"},
		Total: 309, HP: 39, Attack: 52, Defense: 43, SpAttack: 60, SpDefense: 50, Speed: 65,
	},
	"squirtle": {
		Name: "Squirtle", NationalNumber: "0007", Type: "Water", Species: "Tiny Turtle Pokemon",
		Height: "0.5m", Weight: "9.0kg", Abilities: []string{"Torrent", "Rain Dish"},
		Total: 314, HP: 44, Attack: 48, Defense: 65, SpAttack: 50, SpDefense: 64, Speed: 43,
	},
	"pikachu": {
		Name: "Pikachu", NationalNumber: "0025", Type: "Electric", Species: "Mouse Pokemon",
		Height: "0.4m", Weight: "6.0kg", Abilities: []string{"Static", "Lightning Rod"},
		Total: 320, HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90,
	},
	"eevee": {
		Name: "Eevee", NationalNumber: "0133", Type: "Normal", Species: "Evolution Pokemon",
		Height: "0.3m", Weight: "6.5kg", Abilities: []string{"Run Away", "Adaptability", "Anticipation"},
		Total: 325, HP: 55, Attack: 55, Defense: 50, SpAttack: 45, SpDefense: 65, Speed: 55,
	},
	"snorlax": {
		Name: "Snorlax", NationalNumber: "0143", Type: "Normal", Species: "Sleeping Pokemon",
		Height: "2.1m", Weight: "460.0kg", Abilities: []string{"Immunity", "Thick Fat", "Gluttony"},
		Total: 540, HP: 160, Attack: 110, Defense: 65, SpAttack: 65, SpDefense: 110, Speed: 30,
	},
}

// NewSpecies returns a fresh record for a built-in species. The lookup
// ignores case. Returns ErrUnknownSpecies for names not in the table.
func NewSpecies(name string) (*Pokemon, error) {
	base, ok := speciesTable[cases.Fold().String(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownSpecies, name, strings.Join(SpeciesNames(), ", "))
	}
	return base.Clone(), nil
}

// SpeciesNames returns the built-in species names in alphabetical order.
func SpeciesNames() []string {
	names := make([]string, 0, len(speciesTable))
	for _, p := range speciesTable {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
