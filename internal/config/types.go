package config

import (
	"os"
	"path/filepath"
)

// Config holds the settings read from config.yaml.
type Config struct {
	// HistoryFile is used by commands that take an optional path.
	HistoryFile string `yaml:"history_file"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	Browse BrowseConfig `yaml:"browse"`
	Merge  MergeConfig  `yaml:"merge"`
}

type BrowseConfig struct {
	Theme      string `yaml:"theme"`       // dark or light
	MaxEntries int    `yaml:"max_entries"` // 0 shows everything
}

type MergeConfig struct {
	Dedupe bool `yaml:"dedupe"`
	Backup bool `yaml:"backup"` // keep a .bak of an overwritten --output target
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		HistoryFile: defaultHistoryFile(),
		LogLevel:    "info",
		Browse: BrowseConfig{
			Theme:      "dark",
			MaxEntries: 5000,
		},
		Merge: MergeConfig{
			Backup: true,
		},
	}
}

// defaultHistoryFile follows zsh: $HISTFILE, else ~/.zsh_history.
func defaultHistoryFile() string {
	if histFile := os.Getenv("HISTFILE"); histFile != "" {
		return histFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zsh_history"
	}
	return filepath.Join(home, ".zsh_history")
}
