package types

import "errors"

// Config holds the resolved settings for a pokedex session. The CLI builds it
// from config.yaml, flags, and environment.
type Config struct {
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	RosterFile  string `json:"roster_file" yaml:"roster_file"`
	ChartDir    string `json:"chart_dir" yaml:"chart_dir"`
	ChartPrefix string `json:"chart_prefix" yaml:"chart_prefix"`
	ChartWidth  int    `json:"chart_width" yaml:"chart_width"`
	ChartHeight int    `json:"chart_height" yaml:"chart_height"`
	TrainerName string `json:"trainer_name" yaml:"trainer_name"`
	Hometown    string `json:"hometown" yaml:"hometown"`
}

// Defaults applied when config.yaml leaves a key unset.
const (
	DefaultRosterFile  = "pokedex.json"
	DefaultChartDir    = "."
	DefaultChartWidth  = 640
	DefaultChartHeight = 400

	// Charts smaller than this cannot fit axes and labels.
	MinChartWidth  = 160
	MinChartHeight = 120
)

// Config validation errors.
var (
	ErrRosterFileEmpty  = errors.New("roster file must not be empty")
	ErrChartSizeInvalid = errors.New("chart size is too small")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.RosterFile == "" {
		return ErrRosterFileEmpty
	}
	if c.ChartWidth < MinChartWidth || c.ChartHeight < MinChartHeight {
		return ErrChartSizeInvalid
	}
	return nil
}
