// Package types defines the Pokemon record, the species table, configuration,
// and the standard error values shared by the pokedex packages.
package types
