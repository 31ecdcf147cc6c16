package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty model",
			mutate:  func(c *Config) { c.Provider.Model = "" },
			wantErr: "provider.model",
		},
		{
			name:    "temperature too high",
			mutate:  func(c *Config) { c.Provider.Temperature = 2.5 },
			wantErr: "provider.temperature",
		},
		{
			name:    "temperature negative",
			mutate:  func(c *Config) { c.Provider.Temperature = -0.1 },
			wantErr: "provider.temperature",
		},
		{
			name:    "zero max tokens",
			mutate:  func(c *Config) { c.Provider.MaxOutputTokens = 0 },
			wantErr: "provider.max_output_tokens",
		},
		{
			name:    "empty data file",
			mutate:  func(c *Config) { c.Data.File = "" },
			wantErr: "data.file",
		},
		{
			name:    "empty log file",
			mutate:  func(c *Config) { c.Log.File = "" },
			wantErr: "log.file",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_TemperatureBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider.Temperature = 0
	assert.NoError(t, cfg.Validate())

	cfg.Provider.Temperature = 2
	assert.NoError(t, cfg.Validate())
}
