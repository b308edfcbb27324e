// Package persist serializes calculation history to delimited text and back.
//
// The file format is UTF-8 CSV with a fixed header row. Timestamps are
// RFC3339 (second resolution), operands and results round-trip exactly via
// shortest-form float formatting.
package persist

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rcliao/calc-session/internal/calcerr"
	"github.com/rcliao/calc-session/internal/model"
)

var header = []string{"timestamp", "operation", "a", "b", "result"}

// Save writes the sequence to path, one row per calculation in order.
// A failed write leaves the target file in an undefined partial state; the
// caller retries the whole operation.
func Save(seq []model.Calculation, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return calcerr.HistoryWrap("save history", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return calcerr.HistoryWrap("save history", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return calcerr.HistoryWrap("write header", err)
	}
	for _, c := range seq {
		row := []string{
			c.Timestamp.Format(time.RFC3339),
			string(c.Op),
			strconv.FormatFloat(c.A, 'g', -1, 64),
			strconv.FormatFloat(c.B, 'g', -1, 64),
			strconv.FormatFloat(c.Result, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return calcerr.HistoryWrap("write row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return calcerr.HistoryWrap("flush history", err)
	}
	return nil
}

// Load reads a sequence from path. The returned slice is freshly allocated;
// on any failure nothing is returned, so the caller's existing sequence is
// never partially mutated.
func Load(path string) ([]model.Calculation, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &calcerr.HistoryError{Msg: path, Err: calcerr.ErrFileNotFound}
		}
		return nil, calcerr.HistoryWrap("load history", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, calcerr.HistoryWrap("parse history", err)
	}
	if len(rows) == 0 {
		return nil, calcerr.History("history file %s has no header row", path)
	}
	if !equalRow(rows[0], header) {
		return nil, calcerr.History("history file %s has unexpected header %v", path, rows[0])
	}

	seq := make([]model.Calculation, 0, len(rows)-1)
	for i, row := range rows[1:] {
		c, err := parseRow(row)
		if err != nil {
			return nil, calcerr.HistoryWrap(fmt.Sprintf("row %d", i+2), err)
		}
		seq = append(seq, c)
	}
	return seq, nil
}

func parseRow(row []string) (model.Calculation, error) {
	var c model.Calculation
	if len(row) != len(header) {
		return c, fmt.Errorf("expected %d columns, got %d", len(header), len(row))
	}
	ts, err := time.Parse(time.RFC3339, row[0])
	if err != nil {
		return c, fmt.Errorf("timestamp: %w", err)
	}
	op, err := model.ParseOp(row[1])
	if err != nil {
		return c, err
	}
	a, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return c, fmt.Errorf("operand a: %w", err)
	}
	b, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return c, fmt.Errorf("operand b: %w", err)
	}
	result, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return c, fmt.Errorf("result: %w", err)
	}
	return model.Calculation{Op: op, A: a, B: b, Result: result, Timestamp: ts}, nil
}

func equalRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
