package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnionFindSingletons(t *testing.T) {
	t.Parallel()

	uf := NewUnionFind[string]()
	for _, x := range []string{"a", "b", "c", "a"} {
		uf.Add(x)
	}
	if uf.Len() != 3 {
		t.Errorf("Len() = %d, want 3", uf.Len())
	}
	if uf.Count() != 3 {
		t.Errorf("Count() = %d, want 3", uf.Count())
	}
	if uf.Connected("a", "b") {
		t.Error("a and b connected before any union")
	}
}

func TestUnionFindMerges(t *testing.T) {
	t.Parallel()

	uf := NewUnionFind[int]()
	for i := 1; i <= 6; i++ {
		uf.Add(i)
	}
	uf.Union(1, 2)
	uf.Union(3, 4)
	uf.Union(2, 4)
	uf.Union(5, 5)

	if !uf.Connected(1, 3) {
		t.Error("1 and 3 should be connected through 2-4")
	}
	if uf.Connected(1, 5) {
		t.Error("1 and 5 should not be connected")
	}
	if got := uf.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}

	want := [][]int{{1, 2, 3, 4}, {5}, {6}}
	if diff := cmp.Diff(want, uf.Components()); diff != "" {
		t.Errorf("Components() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnionFindAutoAdds(t *testing.T) {
	t.Parallel()

	uf := NewUnionFind[string]()
	uf.Union("x", "y")
	if uf.Len() != 2 {
		t.Errorf("Len() = %d, want 2", uf.Len())
	}
	if uf.Find("z") != "z" {
		t.Error("Find on unknown element should add it as its own root")
	}
	if uf.Count() != 2 {
		t.Errorf("Count() = %d, want 2", uf.Count())
	}
}

func TestUnionFindLongChain(t *testing.T) {
	t.Parallel()

	uf := NewUnionFind[int]()
	for i := 0; i < 1000; i++ {
		uf.Union(i, i+1)
	}
	if uf.Count() != 1 {
		t.Errorf("Count() = %d, want 1", uf.Count())
	}
	if !uf.Connected(0, 1000) {
		t.Error("chain ends not connected")
	}
}
