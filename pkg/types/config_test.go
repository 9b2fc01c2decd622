package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{
		RosterFile:  DefaultRosterFile,
		ChartDir:    DefaultChartDir,
		ChartWidth:  DefaultChartWidth,
		ChartHeight: DefaultChartHeight,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "empty roster file returns ErrRosterFileEmpty",
			mutate:  func(c *Config) { c.RosterFile = "" },
			wantErr: ErrRosterFileEmpty,
		},
		{
			name:    "narrow chart returns ErrChartSizeInvalid",
			mutate:  func(c *Config) { c.ChartWidth = MinChartWidth - 1 },
			wantErr: ErrChartSizeInvalid,
		},
		{
			name:    "short chart returns ErrChartSizeInvalid",
			mutate:  func(c *Config) { c.ChartHeight = 0 },
			wantErr: ErrChartSizeInvalid,
		},
		{
			name:   "empty data dir is valid at config level",
			mutate: func(c *Config) { c.DataDir = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
