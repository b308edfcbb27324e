// Package history holds the live calculation sequence and the memento
// stacks that implement undo/redo over it.
package history

import (
	"slices"

	"github.com/rcliao/calc-session/internal/calcerr"
	"github.com/rcliao/calc-session/internal/model"
)

// Store is an ordered, size-bounded sequence of calculations. A maxSize of
// zero keeps the store permanently empty.
type Store struct {
	maxSize int
	items   []model.Calculation
}

// NewStore creates an empty store bounded at maxSize entries.
func NewStore(maxSize int) *Store {
	if maxSize < 0 {
		maxSize = 0
	}
	return &Store{maxSize: maxSize}
}

// Append adds a calculation, evicting the oldest entries when the bound is
// exceeded. A record whose operation is not part of the fixed set is
// rejected; nothing but real calculations may enter history.
func (s *Store) Append(c model.Calculation) error {
	if _, ok := model.Descriptions[c.Op]; !ok {
		return calcerr.History("only calculations can be added to history (got operation %q)", string(c.Op))
	}
	s.items = append(s.items, c)
	if len(s.items) > s.maxSize {
		overflow := len(s.items) - s.maxSize
		s.items = slices.Delete(s.items, 0, overflow)
	}
	return nil
}

// List returns a copy of the stored sequence. Mutating it never affects the
// store.
func (s *Store) List() []model.Calculation {
	return slices.Clone(s.items)
}

// Last returns the most recent calculation, if any.
func (s *Store) Last() (model.Calculation, bool) {
	if len(s.items) == 0 {
		return model.Calculation{}, false
	}
	return s.items[len(s.items)-1], true
}

// Clear removes all stored calculations.
func (s *Store) Clear() {
	s.items = nil
}

// Replace swaps the entire sequence for seq, re-applying the size bound.
// Used by undo/redo restoration and load-from-file; the store copies seq and
// never aliases it.
func (s *Store) Replace(seq []model.Calculation) {
	s.items = slices.Clone(seq)
	if len(s.items) > s.maxSize {
		overflow := len(s.items) - s.maxSize
		s.items = slices.Delete(s.items, 0, overflow)
	}
}

// Len returns the number of stored calculations.
func (s *Store) Len() int {
	return len(s.items)
}

// MaxSize returns the configured bound.
func (s *Store) MaxSize() int {
	return s.maxSize
}
