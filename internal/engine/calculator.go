package engine

import (
	"fmt"
	"log/slog"

	"github.com/rcliao/calc-session/internal/config"
	"github.com/rcliao/calc-session/internal/history"
	"github.com/rcliao/calc-session/internal/model"
	"github.com/rcliao/calc-session/internal/persist"
)

// Sink receives a notification after each successful calculation, once the
// history store and snapshot stacks are both up to date. Sinks that don't
// need the sequence ignore the second argument. A sink failure never rolls
// back the calculation.
type Sink interface {
	Notify(calc model.Calculation, seq []model.Calculation) error
}

// Calculator drives the full pipeline: validation, dispatch, history
// mutation, snapshot save, notification. Single caller, synchronous; the
// store and caretaker are always updated as one unit.
type Calculator struct {
	cfg       *config.Config
	store     *history.Store
	caretaker *history.Caretaker
	sinks     []Sink
	log       *slog.Logger
}

// New creates a calculator with an empty history bounded by the config and
// an attached caretaker.
func New(cfg *config.Config, log *slog.Logger) *Calculator {
	if log == nil {
		log = slog.Default()
	}
	c := &Calculator{
		cfg:       cfg,
		store:     history.NewStore(cfg.MaxHistorySize),
		caretaker: history.NewCaretaker(),
		log:       log,
	}
	c.caretaker.Attach(c.store.List())
	return c
}

// Register adds a notification sink.
func (c *Calculator) Register(s Sink) {
	c.sinks = append(c.sinks, s)
}

// Perform runs one named operation through the pipeline and returns the
// recorded calculation.
func (c *Calculator) Perform(op model.Op, a, b float64) (model.Calculation, error) {
	calc, err := Create(op, a, b, c.cfg.Precision, c.cfg.MaxInputValue)
	if err != nil {
		return model.Calculation{}, err
	}
	if err := c.store.Append(calc); err != nil {
		return model.Calculation{}, err
	}
	c.caretaker.Save(c.store.List())
	c.notify(calc)
	return calc, nil
}

func (c *Calculator) notify(calc model.Calculation) {
	seq := c.store.List()
	for _, s := range c.sinks {
		if err := s.Notify(calc, seq); err != nil {
			c.log.Warn("sink notification failed", "op", string(calc.Op), "error", err)
		}
	}
}

// Undo reverts the history to its previous state.
func (c *Calculator) Undo() error {
	prev, err := c.caretaker.Undo(c.store.List())
	if err != nil {
		return err
	}
	c.store.Replace(prev)
	return nil
}

// Redo reapplies the most recently undone state.
func (c *Calculator) Redo() error {
	next, err := c.caretaker.Redo(c.store.List())
	if err != nil {
		return err
	}
	c.store.Replace(next)
	return nil
}

// CanUndo reports whether Undo would succeed.
func (c *Calculator) CanUndo() bool { return c.caretaker.CanUndo() }

// CanRedo reports whether Redo would succeed.
func (c *Calculator) CanRedo() bool { return c.caretaker.CanRedo() }

// History returns a copy of the recorded sequence.
func (c *Calculator) History() []model.Calculation {
	return c.store.List()
}

// Entries renders the history as display strings.
func (c *Calculator) Entries() []string {
	var out []string
	for _, calc := range c.store.List() {
		out = append(out, fmt.Sprintf("%s(%v, %v) = %v", calc.Op, calc.A, calc.B, calc.Result))
	}
	return out
}

// ClearHistory empties the history and resets the undo/redo stacks to a
// fresh baseline.
func (c *Calculator) ClearHistory() {
	c.store.Clear()
	c.caretaker.Clear()
	c.caretaker.Attach(c.store.List())
}

// SaveHistory writes the current sequence to path.
func (c *Calculator) SaveHistory(path string) error {
	return persist.Save(c.store.List(), path)
}

// LoadHistory replaces the current sequence with the contents of path and
// re-synchronizes the undo/redo baseline to the loaded state. On failure the
// live sequence is untouched.
func (c *Calculator) LoadHistory(path string) error {
	seq, err := persist.Load(path)
	if err != nil {
		return err
	}
	c.store.Replace(seq)
	c.caretaker.Clear()
	c.caretaker.Attach(c.store.List())
	return nil
}

// Config returns the calculator's configuration.
func (c *Calculator) Config() *config.Config { return c.cfg }
