package config

import (
	"sync/atomic"

	"github.com/cwbudde/algo-control/control/iir"
)

// Store publishes coefficient records to a real-time consumer. Publish
// swaps in a complete record atomically, so a concurrent reader sees
// either the old record or the new one, never a mix. Snapshots are
// immutable; a reader takes one pointer per update call and must not
// modify the pointee.
type Store struct {
	cur atomic.Pointer[iir.Coefficients]
}

// NewStore returns a store primed with the given record.
func NewStore(c iir.Coefficients) *Store {
	s := &Store{}
	s.cur.Store(&c)
	return s
}

// Snapshot returns the currently published record.
func (s *Store) Snapshot() *iir.Coefficients {
	return s.cur.Load()
}

// Publish replaces the published record with a copy of c.
func (s *Store) Publish(c iir.Coefficients) {
	s.cur.Store(&c)
}
