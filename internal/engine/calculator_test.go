package engine

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/rcliao/calc-session/internal/calcerr"
	"github.com/rcliao/calc-session/internal/config"
	"github.com/rcliao/calc-session/internal/model"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	cfg := &config.Config{
		Precision:      2,
		MaxInputValue:  1_000_000,
		MaxHistorySize: 50,
	}
	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// recordingSink captures notifications for assertions.
type recordingSink struct {
	calcs []model.Calculation
	seqs  [][]model.Calculation
	err   error
}

func (s *recordingSink) Notify(calc model.Calculation, seq []model.Calculation) error {
	s.calcs = append(s.calcs, calc)
	s.seqs = append(s.seqs, seq)
	return s.err
}

func TestPerformUndoRedoScenario(t *testing.T) {
	c := newTestCalculator(t)

	calc, err := c.Perform(model.OpAdd, 2, 3)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if calc.Result != 5.0 {
		t.Errorf("expected 5.0, got %v", calc.Result)
	}
	if len(c.History()) != 1 {
		t.Fatalf("expected history length 1, got %d", len(c.History()))
	}

	calc, err = c.Perform(model.OpMultiply, 2, 3)
	if err != nil {
		t.Fatalf("multiply: %v", err)
	}
	if calc.Result != 6.0 {
		t.Errorf("expected 6.0, got %v", calc.Result)
	}
	if len(c.History()) != 2 {
		t.Fatalf("expected history length 2, got %d", len(c.History()))
	}

	if err := c.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	hist := c.History()
	if len(hist) != 1 {
		t.Fatalf("expected history length 1 after undo, got %d", len(hist))
	}
	if hist[0].Op != model.OpAdd {
		t.Errorf("expected last record add, got %s", hist[0].Op)
	}

	if err := c.Redo(); err != nil {
		t.Fatalf("redo: %v", err)
	}
	hist = c.History()
	if len(hist) != 2 {
		t.Fatalf("expected history length 2 after redo, got %d", len(hist))
	}
	if hist[1].Op != model.OpMultiply {
		t.Errorf("expected last record multiply, got %s", hist[1].Op)
	}
}

func TestUndoOnEmptyCalculator(t *testing.T) {
	c := newTestCalculator(t)
	if err := c.Undo(); !errors.Is(err, calcerr.ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestPerformAfterUndoDropsRedo(t *testing.T) {
	c := newTestCalculator(t)
	c.Perform(model.OpAdd, 1, 1)
	c.Perform(model.OpAdd, 2, 2)
	if err := c.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}

	if _, err := c.Perform(model.OpAdd, 3, 3); err != nil {
		t.Fatalf("perform: %v", err)
	}
	if err := c.Redo(); !errors.Is(err, calcerr.ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestSinksNotifiedAfterUpdate(t *testing.T) {
	c := newTestCalculator(t)
	sink := &recordingSink{}
	c.Register(sink)

	c.Perform(model.OpAdd, 2, 3)

	if len(sink.calcs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sink.calcs))
	}
	if sink.calcs[0].Result != 5.0 {
		t.Errorf("expected result 5.0, got %v", sink.calcs[0].Result)
	}
	// Sequence passed to the sink reflects the already-updated history.
	if len(sink.seqs[0]) != 1 {
		t.Errorf("expected sequence length 1, got %d", len(sink.seqs[0]))
	}
}

func TestFailedOperationDoesNotNotify(t *testing.T) {
	c := newTestCalculator(t)
	sink := &recordingSink{}
	c.Register(sink)

	if _, err := c.Perform(model.OpDivide, 1, 0); err == nil {
		t.Fatal("expected error")
	}
	if len(sink.calcs) != 0 {
		t.Errorf("sink notified for failed operation")
	}
	if len(c.History()) != 0 {
		t.Errorf("failed operation recorded in history")
	}
}

func TestFailingSinkDoesNotRollBack(t *testing.T) {
	c := newTestCalculator(t)
	c.Register(&recordingSink{err: errors.New("sink down")})

	calc, err := c.Perform(model.OpAdd, 2, 3)
	if err != nil {
		t.Fatalf("perform: %v", err)
	}
	if calc.Result != 5.0 {
		t.Errorf("expected 5.0, got %v", calc.Result)
	}
	if len(c.History()) != 1 {
		t.Errorf("calculation rolled back by sink failure")
	}
}

func TestClearHistoryResetsBaseline(t *testing.T) {
	c := newTestCalculator(t)
	c.Perform(model.OpAdd, 1, 1)
	c.Perform(model.OpAdd, 2, 2)

	c.ClearHistory()
	if len(c.History()) != 0 {
		t.Fatalf("expected empty history, got %d", len(c.History()))
	}
	if err := c.Undo(); !errors.Is(err, calcerr.ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo after clear, got %v", err)
	}
	if err := c.Redo(); !errors.Is(err, calcerr.ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo after clear, got %v", err)
	}

	// The calculator stays usable after a clear.
	if _, err := c.Perform(model.OpAdd, 1, 2); err != nil {
		t.Fatalf("perform after clear: %v", err)
	}
	if err := c.Undo(); err != nil {
		t.Errorf("undo after clear+perform: %v", err)
	}
}

func TestSaveAndLoadHistory(t *testing.T) {
	c := newTestCalculator(t)
	c.Perform(model.OpAdd, 2, 3)
	c.Perform(model.OpMultiply, 2, 3)

	path := filepath.Join(t.TempDir(), "history.csv")
	if err := c.SaveHistory(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	other := newTestCalculator(t)
	if err := other.LoadHistory(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	hist := other.History()
	if len(hist) != 2 {
		t.Fatalf("expected 2 loaded entries, got %d", len(hist))
	}
	if hist[0].Op != model.OpAdd || hist[1].Op != model.OpMultiply {
		t.Errorf("unexpected loaded sequence: %v", hist)
	}

	// Load replaces, never merges, and resets the undo baseline to the
	// loaded state.
	if err := other.Undo(); !errors.Is(err, calcerr.ErrNothingToUndo) {
		t.Errorf("expected fresh baseline after load, got %v", err)
	}
}

func TestLoadMissingFileLeavesHistoryIntact(t *testing.T) {
	c := newTestCalculator(t)
	c.Perform(model.OpAdd, 2, 3)

	err := c.LoadHistory(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, calcerr.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
	if len(c.History()) != 1 {
		t.Errorf("failed load mutated history: %d entries", len(c.History()))
	}
}

func TestEntries(t *testing.T) {
	c := newTestCalculator(t)
	c.Perform(model.OpAdd, 2, 3)
	entries := c.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0] != "add(2, 3) = 5" {
		t.Errorf("unexpected entry %q", entries[0])
	}
}
