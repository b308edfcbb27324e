// Package sink provides the built-in notification sinks: structured logging
// and CSV autosave. Both run best-effort after each successful calculation.
package sink

import (
	"log/slog"

	"github.com/rcliao/calc-session/internal/model"
	"github.com/rcliao/calc-session/internal/persist"
)

// Logger writes one structured log line per calculation.
type Logger struct {
	log *slog.Logger
}

// NewLogger creates a logging sink.
func NewLogger(log *slog.Logger) *Logger {
	return &Logger{log: log}
}

// Notify logs the calculation and the current history length.
func (s *Logger) Notify(calc model.Calculation, seq []model.Calculation) error {
	s.log.Info("calculation",
		"op", string(calc.Op),
		"a", calc.A,
		"b", calc.B,
		"result", calc.Result,
		"history_len", len(seq))
	return nil
}

// Autosave rewrites the history file after every calculation.
type Autosave struct {
	path string
}

// NewAutosave creates an autosave sink targeting path.
func NewAutosave(path string) *Autosave {
	return &Autosave{path: path}
}

// Notify persists the full current sequence. The individual calculation is
// already part of seq, so only the sequence matters here.
func (s *Autosave) Notify(_ model.Calculation, seq []model.Calculation) error {
	return persist.Save(seq, s.path)
}
