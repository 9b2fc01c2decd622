// Package paths resolves the configuration directory, the data directory,
// and the files that live inside them.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user platform directories.
const AppName = "pokedex"

// DefaultDataDirName is the CWD-relative data directory used when no
// override is set.
const DefaultDataDirName = ".pokedex-db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "POKEDEX_CONFIG_DIR"
	EnvDataDir   = "POKEDEX_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/pokedex (fallback ~/.config/pokedex)
// macOS:   ~/Library/Application Support/pokedex
// Windows: %APPDATA%/pokedex
func DefaultConfigDir() (string, error) {
	return userDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific data directory. It is the
// target of "init --user"; plain runs keep data under the working directory.
//
// Linux:   $XDG_DATA_HOME/pokedex (fallback ~/.local/share/pokedex)
// macOS:   ~/Library/Application Support/pokedex
// Windows: %APPDATA%/pokedex
func DefaultDataDir() (string, error) {
	return userDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// userDir applies the XDG variable and home fallback on Linux and the
// user config directory elsewhere.
func userDir(xdgEnv, homeFallback string) (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
	if xdg := os.Getenv(xdgEnv); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeFallback, AppName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > POKEDEX_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > POKEDEX_DATA_DIR env > $(CWD)/.pokedex-db.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	for _, v := range []string{flag, configYAMLValue, os.Getenv(EnvDataDir)} {
		if v != "" {
			return filepath.Abs(v)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ResolveRosterPath places a relative roster filename inside dataDir.
// Absolute names are returned unchanged.
func ResolveRosterPath(dataDir, rosterFile string) string {
	if filepath.IsAbs(rosterFile) {
		return rosterFile
	}
	return filepath.Join(dataDir, rosterFile)
}
