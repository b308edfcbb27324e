package history

import (
	"slices"

	"github.com/rcliao/calc-session/internal/calcerr"
	"github.com/rcliao/calc-session/internal/model"
)

// Memento is an immutable snapshot of a history sequence at one instant.
// Calculations are immutable values, so cloning the slice is a full
// ownership transfer; no snapshot ever aliases live state.
type Memento struct {
	state []model.Calculation
}

// Snapshot captures seq into a new Memento.
func Snapshot(seq []model.Calculation) Memento {
	return Memento{state: slices.Clone(seq)}
}

// State returns a copy of the captured sequence.
func (m Memento) State() []model.Calculation {
	return slices.Clone(m.state)
}

// Len returns the number of calculations in the snapshot.
func (m Memento) Len() int {
	return len(m.state)
}

// Caretaker owns the undo and redo stacks of mementos.
//
// Attach must be called once per store lifetime before any other method. It
// pushes a baseline snapshot onto the undo stack, so the stack is never
// empty while attached: undo needs strictly more than one entry, because the
// top entry always represents "now" and the baseline is the oldest state
// reachable. The state recorded before Attach is therefore never undoable
// away.
type Caretaker struct {
	undoStack []Memento
	redoStack []Memento
	attached  bool
}

// NewCaretaker creates a detached caretaker. Call Attach before use.
func NewCaretaker() *Caretaker {
	return &Caretaker{}
}

// Attach initializes the stacks with a baseline snapshot of current.
func (c *Caretaker) Attach(current []model.Calculation) {
	c.undoStack = []Memento{Snapshot(current)}
	c.redoStack = nil
	c.attached = true
}

// Attached reports whether Attach has been called since the last Clear.
func (c *Caretaker) Attached() bool {
	return c.attached
}

// Save records current as the newest undoable state and unconditionally
// discards any redo tail.
func (c *Caretaker) Save(current []model.Calculation) {
	c.undoStack = append(c.undoStack, Snapshot(current))
	c.redoStack = nil
}

// Undo reverts to the previous state. The caller's current sequence moves to
// the redo stack; the returned sequence is the new "now" and stays on top of
// the undo stack.
func (c *Caretaker) Undo(current []model.Calculation) ([]model.Calculation, error) {
	if len(c.undoStack) <= 1 {
		return nil, &calcerr.HistoryError{Err: calcerr.ErrNothingToUndo}
	}
	c.redoStack = append(c.redoStack, Snapshot(current))
	c.undoStack = c.undoStack[:len(c.undoStack)-1]
	return c.undoStack[len(c.undoStack)-1].State(), nil
}

// Redo reapplies the most recently undone state.
func (c *Caretaker) Redo(current []model.Calculation) ([]model.Calculation, error) {
	if len(c.redoStack) == 0 {
		return nil, &calcerr.HistoryError{Err: calcerr.ErrNothingToRedo}
	}
	c.undoStack = append(c.undoStack, Snapshot(current))
	next := c.redoStack[len(c.redoStack)-1]
	c.redoStack = c.redoStack[:len(c.redoStack)-1]
	return next.State(), nil
}

// Clear empties both stacks and detaches. Attach is required before the
// caretaker is usable again.
func (c *Caretaker) Clear() {
	c.undoStack = nil
	c.redoStack = nil
	c.attached = false
}

// CanUndo reports whether a prior state exists.
func (c *Caretaker) CanUndo() bool {
	return len(c.undoStack) > 1
}

// CanRedo reports whether an undone state is available.
func (c *Caretaker) CanRedo() bool {
	return len(c.redoStack) > 0
}
