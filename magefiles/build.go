//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "pokedex"
	binaryDir  = "bin"
	cmdDir     = "./cmd/pokedex"
	chartsDir  = "charts"
)

// Build compiles the pokedex binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts and generated charts.
func Clean() error {
	for _, dir := range []string{binaryDir, chartsDir} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	if err := sh.Rm("coverage.out"); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Charts builds the binary and renders charts for a sample roster in a
// scratch data directory.
func Charts() error {
	mg.Deps(Build)
	dataDir, err := os.MkdirTemp("", "pokedex-charts-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dataDir)

	bin := filepath.Join(binaryDir, binaryName)
	common := []string{"--config-dir", dataDir, "--data-dir", dataDir}
	for _, species := range []string{"bulbasaur", "charmander", "squirtle", "pikachu", "eevee", "snorlax"} {
		if err := sh.Run(bin, append(append([]string{}, common...), "add", species)...); err != nil {
			return err
		}
	}
	return sh.RunV(bin, append(common, "charts", "--out", chartsDir)...)
}
