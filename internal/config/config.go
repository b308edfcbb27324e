// Package config loads calculator settings from environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/rcliao/calc-session/internal/calcerr"
)

// Config holds every tunable the calculator core consumes. Values outside
// the documented ranges are rejected here, before they reach the core.
type Config struct {
	LogDir      string `env:"CALC_LOG_DIR" envDefault:"logs"`
	LogFile     string `env:"CALC_LOG_FILE" envDefault:"app.log"`
	HistoryDir  string `env:"CALC_HISTORY_DIR" envDefault:"history"`
	HistoryFile string `env:"CALC_HISTORY_FILE" envDefault:"history.csv"`
	ArchiveDB   string `env:"CALC_ARCHIVE_DB"`

	Precision      int     `env:"CALC_PRECISION" envDefault:"2"`
	MaxInputValue  float64 `env:"CALC_MAX_INPUT_VALUE" envDefault:"1000000"`
	MaxHistorySize int     `env:"CALC_MAX_HISTORY_SIZE" envDefault:"50"`
	AutoSave       bool    `env:"CALC_AUTO_SAVE" envDefault:"true"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, &calcerr.ConfigError{Msg: "parse env", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the numeric bounds.
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > 12 {
		return calcerr.Config("CALC_PRECISION must be between 0 and 12, got %d", c.Precision)
	}
	if c.MaxInputValue <= 0 {
		return calcerr.Config("CALC_MAX_INPUT_VALUE must be > 0, got %v", c.MaxInputValue)
	}
	if c.MaxHistorySize < 0 {
		return calcerr.Config("CALC_MAX_HISTORY_SIZE must be >= 0, got %d", c.MaxHistorySize)
	}
	return nil
}

// EnsureDirs creates the log and history directories.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.LogDir, c.HistoryDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &calcerr.ConfigError{Msg: "create dir " + dir, Err: err}
		}
	}
	return nil
}

// LogPath returns the full log file path.
func (c *Config) LogPath() string {
	return filepath.Join(c.LogDir, c.LogFile)
}

// HistoryPath returns the full history CSV path.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.HistoryDir, c.HistoryFile)
}

// ArchivePath returns the archive database path, defaulting to
// ~/.calc-session/archive.db when CALC_ARCHIVE_DB is unset.
func (c *Config) ArchivePath() string {
	if c.ArchiveDB != "" {
		return c.ArchiveDB
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".calc-session", "archive.db")
}
