// Package seeders provides the registry of bootstrap seed functions.
//
// Usage (define a seeder in any file in this package):
//
//	func init() {
//	    seeders.Register("users", SeedUsers)
//	}
//
// Then run via CLI: terraquest seed
//
// Seeding is an explicit bootstrap step, never an on-boot repair
// routine. The one exception is RunIfEmpty, which serve calls so a
// fresh install gets its admin account without a manual step; once the
// users collection has been written it never runs again. Running any
// seeder twice is safe: each skips records that already exist.
package seeders

import (
	"encoding/json"
	"sync"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/logger"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

// SeederFunc is the signature for a seed function.
type SeederFunc func(s store.Store) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
// Call this from init() in your seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// RunAll executes every registered seeder in registration order.
// It stops on the first error.
func RunAll(s store.Store) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		logger.Info("seed: running", "seeder", e.name)
		if err := e.fn(s); err != nil {
			logger.Error("seed: failed", "seeder", e.name, "error", err)
			return err
		}
	}
	return nil
}

// RunIfEmpty runs every seeder only when the users collection has never
// been written. An empty-but-written collection (every user deleted)
// counts as initialised and is left alone.
func RunIfEmpty(s store.Store) error {
	var users []json.RawMessage
	written, err := s.Get(store.KeyUsers, &users)
	if err != nil {
		return err
	}
	if written {
		return nil
	}

	logger.Info("seed: fresh store, running bootstrap seeders")
	return RunAll(s)
}
