package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/wordle.yaml
var defaultWordleYAML []byte

// DefaultConfig returns the hardcoded configuration.
// It mirrors defaults/wordle.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		DefaultMode: DefaultMode,
		WordsDir:    "",
		DBPath:      "~/.wordle/stats.db",
		ShowAnswer:  false,
		Log: LogConfig{
			Level: "info",
			File:  "~/.wordle/wordle.log",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			HostKey:     "",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultWordleYAML
}
