package worklist

import (
	"testing"
)

func TestWorklistOrder(t *testing.T) {
	var visited []int
	Start(1, func(next int, add func(int)) {
		visited = append(visited, next)
		if next < 3 {
			add(next + 1)
		}
	})

	if len(visited) != 3 {
		t.Fatalf("expected 3 iterations, got %v", visited)
	}
	for i, v := range visited {
		if v != i+1 {
			t.Errorf("expected FIFO order 1,2,3, got %v", visited)
		}
	}
}

func TestWorklistPreloaded(t *testing.T) {
	sum := 0
	StartV([]int{1, 2, 3}, func(next int, add func(int)) {
		sum += next
	})
	if sum != 6 {
		t.Errorf("expected to drain the preloaded queue, got sum %d", sum)
	}
}

func TestEmptyWorklist(t *testing.T) {
	w := Empty[int]()
	if !w.IsEmpty() {
		t.Errorf("fresh worklist must be empty")
	}
	w.Add(42)
	if w.IsEmpty() || w.GetNext() != 42 {
		t.Errorf("add/get must round-trip")
	}
}
