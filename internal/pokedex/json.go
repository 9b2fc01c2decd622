// Roster file format: a JSON array of pokemon objects.
package pokedex

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// pokemonJSON mirrors one entry of the roster file. Key names are fixed by
// the file format and differ in case from one another.
type pokemonJSON struct {
	Name           string         `json:"name"`
	NationalNumber nationalNumber `json:"National_number"`
	Type           string         `json:"Type"`
	Species        string         `json:"species"`
	Height         string         `json:"Height"`
	Weight         string         `json:"Weight"`
	Abilities      []string       `json:"Abilities"`
	Total          int            `json:"total"`
	HP             int            `json:"hp"`
	Attack         int            `json:"attack"`
	Defense        int            `json:"Defense"`
	SpAttack       int            `json:"sp_attack"`
	SpDefense      int            `json:"sp_defense"`
	Speed          int            `json:"speed"`
}

// nationalNumber is written as text. Older files store a bare integer; it
// is kept as its decimal text.
type nationalNumber string

func (n *nationalNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = nationalNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("National_number must be text or a number: %w", err)
	}
	*n = nationalNumber(num.String())
	return nil
}

func toJSON(p *types.Pokemon) pokemonJSON {
	abilities := p.Abilities
	if abilities == nil {
		abilities = []string{}
	}
	return pokemonJSON{
		Name:           p.Name,
		NationalNumber: nationalNumber(p.NationalNumber),
		Type:           p.Type,
		Species:        p.Species,
		Height:         p.Height,
		Weight:         p.Weight,
		Abilities:      abilities,
		Total:          p.Total,
		HP:             p.HP,
		Attack:         p.Attack,
		Defense:        p.Defense,
		SpAttack:       p.SpAttack,
		SpDefense:      p.SpDefense,
		Speed:          p.Speed,
	}
}

func (j pokemonJSON) toPokemon() *types.Pokemon {
	return types.NewPokemon(j.Name, string(j.NationalNumber), j.Type, j.Species, j.Height, j.Weight,
		j.Abilities, j.Total, j.HP, j.Attack, j.Defense, j.SpAttack, j.SpDefense, j.Speed)
}

// fieldTargets maps each roster key to the pokemonJSON field it decodes
// into.
func (j *pokemonJSON) fieldTargets() map[string]any {
	return map[string]any{
		types.FieldName:           &j.Name,
		types.FieldNationalNumber: &j.NationalNumber,
		types.FieldType:           &j.Type,
		types.FieldSpecies:        &j.Species,
		types.FieldHeight:         &j.Height,
		types.FieldWeight:         &j.Weight,
		types.FieldAbilities:      &j.Abilities,
		types.FieldTotal:          &j.Total,
		types.FieldHP:             &j.HP,
		types.FieldAttack:         &j.Attack,
		types.FieldDefense:        &j.Defense,
		types.FieldSpAttack:       &j.SpAttack,
		types.FieldSpDefense:      &j.SpDefense,
		types.FieldSpeed:          &j.Speed,
	}
}

// DecodeRecord parses a single roster entry. Every roster key must be
// present with a non-null value and keys match exactly. A key that differs
// from a roster key only in case is rejected; other unknown keys are
// ignored. Errors wrap types.ErrLoad.
func DecodeRecord(data []byte) (*types.Pokemon, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrLoad, err)
	}
	if keys == nil {
		return nil, fmt.Errorf("%w: entry is null", types.ErrLoad)
	}
	for k := range keys {
		if f, ok := types.LookupField(k); ok && f != k {
			return nil, fmt.Errorf("%w: key %q conflicts with %q", types.ErrLoad, k, f)
		}
	}

	var j pokemonJSON
	targets := j.fieldTargets()
	for _, k := range types.Fields {
		raw, ok := keys[k]
		if !ok {
			return nil, fmt.Errorf("%w: missing key %q", types.ErrLoad, k)
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, fmt.Errorf("%w: key %q is null", types.ErrLoad, k)
		}
		if err := json.Unmarshal(raw, targets[k]); err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", types.ErrLoad, k, err)
		}
	}
	return j.toPokemon(), nil
}

// DecodeRecords parses a roster file body. It either returns every entry or
// an error; no partial result is produced.
func DecodeRecords(data []byte) ([]*types.Pokemon, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: roster must be a JSON array: %w", types.ErrLoad, err)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: roster must be a JSON array, got null", types.ErrLoad)
	}

	out := make([]*types.Pokemon, 0, len(entries))
	for i, raw := range entries {
		p, err := DecodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// EncodeRecord renders a single entry as indented JSON.
func EncodeRecord(p *types.Pokemon) ([]byte, error) {
	return json.MarshalIndent(toJSON(p), "", "  ")
}

// EncodeRecords renders a roster file body. An empty roster encodes as [].
func EncodeRecords(pokemon []*types.Pokemon) ([]byte, error) {
	entries := make([]pokemonJSON, 0, len(pokemon))
	for _, p := range pokemon {
		entries = append(entries, toJSON(p))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
