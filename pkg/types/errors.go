package types

import "errors"

// Operation error kinds. Callers test with errors.Is; operations wrap these
// with detail about the failing input.
var (
	ErrFormat       = errors.New("invalid format")
	ErrInvalidField = errors.New("invalid field")
	ErrLoad         = errors.New("load failed")
	ErrIO           = errors.New("write failed")
)

// Lookup errors.
var (
	ErrUnknownSpecies = errors.New("unknown species")
	ErrNotFound       = errors.New("pokemon not found")
	ErrNilPokemon     = errors.New("pokemon must not be nil")
)

// Query errors.
var ErrInvalidFilter = errors.New("invalid filter value type")
