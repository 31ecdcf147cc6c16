package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero
// values. Missing keys are left at their default values.
type Config struct {
	Provider ProviderConfig `json:"provider"`
	Data     DataConfig     `json:"data"`
	Log      LogConfig      `json:"log"`
}

type ProviderConfig struct {
	Model           string  `json:"model"`             // Default: "gemini-2.5-flash"
	Temperature     float64 `json:"temperature"`       // Default: 0.0
	MaxOutputTokens int     `json:"max_output_tokens"` // Default: 2048
}

type DataConfig struct {
	File string `json:"file"` // Default: "data/shipments.csv"
}

type LogConfig struct {
	File  string `json:"file"`  // Default: "hermes.log"; the TUI owns the terminal
	Level string `json:"level"` // Default: "info"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Model:           "gemini-2.5-flash",
			Temperature:     0.0,
			MaxOutputTokens: 2048,
		},
		Data: DataConfig{
			File: "data/shipments.csv",
		},
		Log: LogConfig{
			File:  "hermes.log",
			Level: "info",
		},
	}
}
