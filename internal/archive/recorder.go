package archive

import (
	"context"

	"github.com/rcliao/calc-session/internal/model"
)

// Recorder adapts a Store to the engine's notification sink interface,
// tagging each calculation with the current session id.
type Recorder struct {
	store   *Store
	session string
}

// NewRecorder creates a recorder for one session.
func NewRecorder(store *Store, session string) *Recorder {
	return &Recorder{store: store, session: session}
}

// Notify archives the calculation. The live sequence is not needed here.
func (r *Recorder) Notify(calc model.Calculation, _ []model.Calculation) error {
	return r.store.Record(context.Background(), r.session, calc)
}

// NewSessionID returns a fresh ULID to tag a session's calculations.
func (s *Store) NewSessionID() string {
	return s.newID()
}
