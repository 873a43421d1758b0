package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rshade/pagenav/internal/logging"
)

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `json:"level"          yaml:"level"`
	Format string `json:"format"         yaml:"format"`
	File   string `json:"file,omitempty" yaml:"file,omitempty"`

	// Rotation limits for File; zero means the logging package default.
	MaxSizeMB  int `json:"max_size_mb,omitempty"  yaml:"max_size_mb,omitempty"`
	MaxBackups int `json:"max_backups,omitempty"  yaml:"max_backups,omitempty"`
	MaxAgeDays int `json:"max_age_days,omitempty" yaml:"max_age_days,omitempty"`
}

// ToLoggingConfig converts the file settings to a logging.Config. A File
// switches output from stderr to that file.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,

		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAgeDays,
	}
}

// GetLoggingConfig returns a copy of the global config's logging section.
// Flag overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

// EnsureLogDir creates the directory of the configured log file, if any.
func EnsureLogDir() error {
	file := GetLoggingConfig().File
	if file == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	return nil
}
