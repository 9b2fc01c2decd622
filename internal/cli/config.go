// Config loading for the pokedex CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/pokedex/internal/paths"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir         = "data_dir"
	cfgKeyRosterFile      = "roster_file"
	cfgKeyChartDir        = "chart_dir"
	cfgKeyChartPrefix     = "chart_prefix"
	cfgKeyChartWidth      = "chart_width"
	cfgKeyChartHeight     = "chart_height"
	cfgKeyTrainerName     = "trainer.name"
	cfgKeyTrainerHometown = "trainer.hometown"

	// envPrefix lets POKEDEX_CHART_DIR and friends override config.yaml.
	envPrefix = "POKEDEX"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Pokedex CLI configuration

# Roster file; relative names live in the data directory
roster_file: pokedex.json

# Chart output
chart_dir: .
chart_prefix: ""
chart_width: 640
chart_height: 400

# Session identity
trainer:
  name: ""
  hometown: ""

# Data directory (optional; overridable by --data-dir flag)
# data_dir:
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyRosterFile, types.DefaultRosterFile)
	v.SetDefault(cfgKeyChartDir, types.DefaultChartDir)
	v.SetDefault(cfgKeyChartPrefix, "")
	v.SetDefault(cfgKeyChartWidth, types.DefaultChartWidth)
	v.SetDefault(cfgKeyChartHeight, types.DefaultChartHeight)
	v.SetDefault(cfgKeyTrainerName, "")
	v.SetDefault(cfgKeyTrainerHometown, "")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// buildConfig resolves the data directory and assembles the session Config.
// The data_dir key is read from config.yaml only, so POKEDEX_DATA_DIR keeps
// its place below config.yaml in the precedence chain.
func buildConfig(v *viper.Viper, dataDirFlag, configDir string) (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(dataDirFlag, dataDirFromFile(configDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		DataDir:     dataDir,
		RosterFile:  v.GetString(cfgKeyRosterFile),
		ChartDir:    v.GetString(cfgKeyChartDir),
		ChartPrefix: v.GetString(cfgKeyChartPrefix),
		ChartWidth:  v.GetInt(cfgKeyChartWidth),
		ChartHeight: v.GetInt(cfgKeyChartHeight),
		TrainerName: v.GetString(cfgKeyTrainerName),
		Hometown:    v.GetString(cfgKeyTrainerHometown),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// configFile holds the data_dir entry of config.yaml.
type configFile struct {
	DataDir string `yaml:"data_dir,omitempty"`
}

// dataDirFromFile reads data_dir from an existing config.yaml.
// Returns empty string if the file does not exist or cannot be read.
func dataDirFromFile(configDir string) string {
	data, err := os.ReadFile(filepath.Join(configDir, configFileExt))
	if err != nil {
		return ""
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ""
	}
	return cfg.DataDir
}

// setDataDirInFile records data_dir in config.yaml, keeping every other key.
func setDataDirInFile(configDir, dataDir string) error {
	path := filepath.Join(configDir, configFileExt)

	doc := map[string]any{}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	}
	doc[cfgKeyDataDir] = dataDir

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
