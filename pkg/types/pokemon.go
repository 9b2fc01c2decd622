package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field names accepted by Edit. They match the keys of the roster file.
const (
	FieldName           = "name"
	FieldNationalNumber = "National_number"
	FieldType           = "Type"
	FieldSpecies        = "species"
	FieldHeight         = "Height"
	FieldWeight         = "Weight"
	FieldAbilities      = "Abilities"
	FieldTotal          = "total"
	FieldHP             = "hp"
	FieldAttack         = "attack"
	FieldDefense        = "Defense"
	FieldSpAttack       = "sp_attack"
	FieldSpDefense      = "sp_defense"
	FieldSpeed          = "speed"
)

// Fields lists every editable field in roster file order.
var Fields = []string{
	FieldName, FieldNationalNumber, FieldType, FieldSpecies, FieldHeight,
	FieldWeight, FieldAbilities, FieldTotal, FieldHP, FieldAttack,
	FieldDefense, FieldSpAttack, FieldSpDefense, FieldSpeed,
}

// StatFields lists the seven integer stats in chart order.
var StatFields = []string{
	FieldTotal, FieldHP, FieldAttack, FieldDefense,
	FieldSpAttack, FieldSpDefense, FieldSpeed,
}

// Measurement units for Height and Weight.
const (
	UnitHeight = "m"
	UnitWeight = "kg"
)

// Pokemon is a single creature record.
type Pokemon struct {
	Name           string   // Display name.
	NationalNumber string   // Zero-padded after edit, e.g. "0025".
	Type           string   // Primary type.
	Species        string   // Species description, e.g. "Mouse Pokemon".
	Height         string   // Formatted with unit, e.g. "0.4m".
	Weight         string   // Formatted with unit, e.g. "6.0kg".
	Abilities      []string // Ordered ability names.
	Total          int
	HP             int
	Attack         int
	Defense        int
	SpAttack       int
	SpDefense      int
	Speed          int
}

// NewPokemon builds a record from its fields. Values are stored verbatim;
// normalization happens only in Edit.
func NewPokemon(name, nationalNumber, typ, species, height, weight string, abilities []string,
	total, hp, attack, defense, spAttack, spDefense, speed int) *Pokemon {
	return &Pokemon{
		Name:           name,
		NationalNumber: nationalNumber,
		Type:           typ,
		Species:        species,
		Height:         height,
		Weight:         weight,
		Abilities:      append([]string(nil), abilities...),
		Total:          total,
		HP:             hp,
		Attack:         attack,
		Defense:        defense,
		SpAttack:       spAttack,
		SpDefense:      spDefense,
		Speed:          speed,
	}
}

// LookupField resolves a user-supplied field name to its canonical form.
// Matching ignores case and surrounding space.
func LookupField(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, f := range Fields {
		if strings.EqualFold(f, name) {
			return f, true
		}
	}
	return "", false
}

// Edit sets one field from its text form and returns the same record.
// National_number is stored zero-padded to four digits; Height and Weight
// always carry a decimal digit and their unit. On error the record is not
// modified and the error wraps ErrInvalidField or ErrFormat.
func (p *Pokemon) Edit(field, value string) (*Pokemon, error) {
	f, ok := LookupField(field)
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidField, field, strings.Join(Fields, ", "))
	}

	value = strings.TrimSpace(value)
	switch f {
	case FieldName:
		if value == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrFormat)
		}
		p.Name = value
	case FieldNationalNumber:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: national number %q is not a non-negative integer", ErrFormat, value)
		}
		p.NationalNumber = FormatNationalNumber(n)
	case FieldType:
		p.Type = value
	case FieldSpecies:
		p.Species = value
	case FieldHeight:
		h, err := normalizeMeasure(value, UnitHeight)
		if err != nil {
			return nil, err
		}
		p.Height = h
	case FieldWeight:
		w, err := normalizeMeasure(value, UnitWeight)
		if err != nil {
			return nil, err
		}
		p.Weight = w
	case FieldAbilities:
		p.Abilities = splitAbilities(value)
	default:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q is not an integer", ErrFormat, f, value)
		}
		*p.statRef(f) = n
	}
	return p, nil
}

// Stat returns the value of one of the StatFields. Unknown names return
// false.
func (p *Pokemon) Stat(field string) (int, bool) {
	f, ok := LookupField(field)
	if !ok {
		return 0, false
	}
	ref := p.statRef(f)
	if ref == nil {
		return 0, false
	}
	return *ref, true
}

func (p *Pokemon) statRef(field string) *int {
	switch field {
	case FieldTotal:
		return &p.Total
	case FieldHP:
		return &p.HP
	case FieldAttack:
		return &p.Attack
	case FieldDefense:
		return &p.Defense
	case FieldSpAttack:
		return &p.SpAttack
	case FieldSpDefense:
		return &p.SpDefense
	case FieldSpeed:
		return &p.Speed
	}
	return nil
}

// HeightValue parses Height as meters.
func (p *Pokemon) HeightValue() (float64, error) {
	return parseMeasure(p.Height, UnitHeight)
}

// WeightValue parses Weight as kilograms.
func (p *Pokemon) WeightValue() (float64, error) {
	return parseMeasure(p.Weight, UnitWeight)
}

// Clone returns a deep copy of the record.
func (p *Pokemon) Clone() *Pokemon {
	c := *p
	c.Abilities = append([]string(nil), p.Abilities...)
	return &c
}

// Validate reports records that cannot be displayed or charted.
func (p *Pokemon) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrFormat)
	}
	for _, f := range StatFields {
		if v, _ := p.Stat(f); v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrFormat, f)
		}
	}
	return nil
}

// FormatNationalNumber renders n zero-padded to four digits.
func FormatNationalNumber(n int) string {
	return fmt.Sprintf("%04d", n)
}

// FormatMeasure renders v with unit, keeping at least one decimal digit.
func FormatMeasure(v float64, unit string) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + unit
}

func normalizeMeasure(value, unit string) (string, error) {
	v, err := parseMeasure(value, unit)
	if err != nil {
		return "", err
	}
	return FormatMeasure(v, unit), nil
}

func parseMeasure(value, unit string) (float64, error) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), unit))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: %q is not a measurement in %s", ErrFormat, value, unit)
	}
	return v, nil
}

func splitAbilities(value string) []string {
	abilities := []string{}
	for a := range strings.SplitSeq(value, ",") {
		if a = strings.TrimSpace(a); a != "" {
			abilities = append(abilities, a)
		}
	}
	return abilities
}

// TypeCount is the number of records sharing a primary type.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
