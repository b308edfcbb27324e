// Package cli implements the calc-session CLI commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/calc-session/internal/archive"
	"github.com/rcliao/calc-session/internal/config"
	"github.com/rcliao/calc-session/internal/engine"
	"github.com/rcliao/calc-session/internal/sink"
)

var dbPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "calc-session",
	Short: "Stateful arithmetic with history, undo/redo, and a durable archive",
	Long:  "A tiny CLI calculator. Validates operands, records every result, supports undo/redo over the session history, and archives calculations to SQLite.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Archive database path (default: $CALC_ARCHIVE_DB or ~/.calc-session/archive.db)")
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitErr("load config", err)
	}
	return cfg
}

func archivePath(cfg *config.Config) string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.ArchivePath()
}

func openArchive(cfg *config.Config) (*archive.Store, error) {
	return archive.Open(archivePath(cfg))
}

// newLogger opens the configured log file and returns a slog logger writing
// to it. Falls back to stderr if the file cannot be opened.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer) {
	f, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), nil
	}
	return slog.New(slog.NewTextHandler(f, nil)), f
}

// newCalculator wires a calculator with its sinks: structured logging, CSV
// autosave when enabled, and the SQLite archive. The returned cleanup closes
// the archive and log file.
func newCalculator(cfg *config.Config) (*engine.Calculator, func()) {
	if err := cfg.EnsureDirs(); err != nil {
		exitErr("prepare dirs", err)
	}

	log, logCloser := newLogger(cfg)
	calc := engine.New(cfg, log)
	calc.Register(sink.NewLogger(log))
	if cfg.AutoSave {
		calc.Register(sink.NewAutosave(cfg.HistoryPath()))
	}

	store, err := openArchive(cfg)
	if err != nil {
		log.Warn("archive unavailable", "error", err)
	} else {
		calc.Register(archive.NewRecorder(store, store.NewSessionID()))
	}

	cleanup := func() {
		if store != nil {
			store.Close()
		}
		if logCloser != nil {
			logCloser.Close()
		}
	}
	return calc, cleanup
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
