// Package repositories mediates all access to the persisted collections.
// Every collection is read and written wholesale, so each repository
// serialises its read-modify-write cycles with its own mutex. Identifiers
// come from persisted sequence counters, never from collection length,
// so deletions can not cause id reuse.
package repositories

import (
	"fmt"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

// nextSeq increments and persists the counter stored under key. A counter
// that does not exist yet starts at floor, so the first issued id is
// floor+1. Callers must hold their collection lock.
func nextSeq(s store.Store, key string, floor int) (int, error) {
	var n int
	found, err := s.Get(key, &n)
	if err != nil {
		return 0, fmt.Errorf("read sequence %s: %w", key, err)
	}
	if !found || n < floor {
		n = floor
	}
	n++
	if err := s.Set(key, n); err != nil {
		return 0, fmt.Errorf("write sequence %s: %w", key, err)
	}
	return n, nil
}
