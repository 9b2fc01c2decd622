// Package main provides the pokedex CLI.
package main

import "github.com/mesh-intelligence/pokedex/internal/cli"

func main() {
	cli.Execute()
}
