package collection_test

import (
	"testing"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/collection"
)

func TestFilterAndCount(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5}
	even := collection.Filter(nums, func(n int) bool { return n%2 == 0 })
	if len(even) != 2 {
		t.Errorf("Filter: got %v", even)
	}
	if c := collection.Count(nums, func(n int) bool { return n > 3 }); c != 2 {
		t.Errorf("Count: got %d, want 2", c)
	}
}

func TestSum(t *testing.T) {
	type row struct {
		status string
		amount float64
	}
	rows := []row{{"confirmed", 1000}, {"pending_quote", 0}, {"confirmed", 500}}
	total := collection.Sum(rows, func(r row) float64 {
		if r.status == "confirmed" {
			return r.amount
		}
		return 0
	})
	if total != 1500 {
		t.Errorf("Sum: got %v, want 1500", total)
	}
}

func TestSortByLeavesInputIntact(t *testing.T) {
	in := []int{3, 1, 2}
	out := collection.SortBy(in, func(a, b int) bool { return a < b })

	if out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Errorf("SortBy: got %v", out)
	}
	if in[0] != 3 {
		t.Error("SortBy mutated its input")
	}
}

func TestFirst(t *testing.T) {
	nums := []int{1, 2, 3}
	v, ok := collection.First(nums, func(n int) bool { return n > 1 })
	if !ok || v != 2 {
		t.Errorf("First: got %d %v", v, ok)
	}
	if _, ok := collection.First(nums, func(n int) bool { return n > 9 }); ok {
		t.Error("First: expected no match")
	}
}

func TestMap(t *testing.T) {
	doubled := collection.Map([]int{1, 2}, func(n int) int { return n * 2 })
	if doubled[0] != 2 || doubled[1] != 4 {
		t.Errorf("Map: got %v", doubled)
	}
}
