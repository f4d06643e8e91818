// Package config provides YAML-based configuration loading and the
// difficulty mode table for the puzzle.
package config

import "time"

// Config contains all user-tunable settings for the application.
type Config struct {
	DefaultMode Mode      `yaml:"default_mode" env:"WORDLE_MODE"`
	WordsDir    string    `yaml:"words_dir"    env:"WORDLE_WORDS_DIR"`
	DBPath      string    `yaml:"db_path"      env:"WORDLE_DB"`
	ShowAnswer  bool      `yaml:"show_answer"  env:"WORDLE_SHOW_ANSWER"`
	Log         LogConfig `yaml:"log"`
	SSH         SSHConfig `yaml:"ssh"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level" env:"WORDLE_LOG_LEVEL"`
	File  string `yaml:"file"  env:"WORDLE_LOG_FILE"` // Used while the TUI owns the terminal
}

// SSHConfig controls the remote play server.
type SSHConfig struct {
	Address     string        `yaml:"address"      env:"WORDLE_SSH_ADDRESS"`
	HostKey     string        `yaml:"host_key"     env:"WORDLE_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"WORDLE_SSH_IDLE_TIMEOUT"`
}

// Validate checks the values that the rest of the program relies on and
// normalizes the mode name to its canonical form.
func (c *Config) Validate() error {
	mode, err := ParseMode(string(c.DefaultMode))
	if err != nil {
		return err
	}
	c.DefaultMode = mode
	return nil
}
