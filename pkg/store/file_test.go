package store_test

import (
	"testing"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

func newFileStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := newFileStore(t)

	type doc struct {
		Name  string  `json:"name"`
		Count int     `json:"count"`
		Price float64 `json:"price"`
	}
	in := doc{Name: "Bali, Indonesia", Count: 3, Price: 899}
	if err := s.Set("trips", in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out doc
	found, err := s.Get("trips", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected key to exist")
	}
	if out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	s := newFileStore(t)

	var out map[string]any
	found, err := s.Get("nope", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("missing key reported as present")
	}
}

func TestFileStoreSetOverwritesWholesale(t *testing.T) {
	s := newFileStore(t)

	if err := s.Set("list", []int{1, 2, 3}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("list", []int{9}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out []int
	if _, err := s.Get("list", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(out) != 1 || out[0] != 9 {
		t.Errorf("expected [9], got %v", out)
	}
}

func TestFileStoreRemove(t *testing.T) {
	s := newFileStore(t)

	if err := s.Set("key", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Remove("key"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	var out string
	found, err := s.Get("key", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("removed key still present")
	}

	// Removing again is a no-op.
	if err := s.Remove("key"); err != nil {
		t.Errorf("Remove absent key: %v", err)
	}
}
