//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the pokedex project using Mage.
//
// Usage:
//
//	mage build          Compile pokedex binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests without the SQLite index package
//	mage test:cover     Run all tests and write coverage.out
//	mage lint           Run go vet and golangci-lint
//	mage vet            Run go vet
//	mage clean          Remove build artifacts and generated charts
//	mage install        Install pokedex to GOPATH/bin
//	mage charts         Build and render charts for the sample roster
//	mage stats          Print Go LOC for production and test code
package main
