package mosaic

import (
	"slices"
	"testing"
)

func TestUnionFindSingletons(t *testing.T) {
	u := NewUnionFind(5, 10)
	if u.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", u.Len())
	}
	for i := range 5 {
		if u.Find(i) != i {
			t.Errorf("Find(%d) = %d, want %d", i, u.Find(i), i)
		}
		if u.Size(i) != 1 {
			t.Errorf("Size(%d) = %d, want 1", i, u.Size(i))
		}
	}
}

func TestUnionMergesAndGrows(t *testing.T) {
	u := NewUnionFind(4, 10)

	if !u.Union(0, 1) {
		t.Fatal("Union(0,1) = false, want true")
	}
	if u.Find(0) != u.Find(1) {
		t.Error("0 and 1 should share a root")
	}
	before := u.Size(0)
	if !u.Union(1, 2) {
		t.Fatal("Union(1,2) = false, want true")
	}
	if after := u.Size(2); after <= before {
		t.Errorf("merged size %d should exceed %d", after, before)
	}
	if u.Union(0, 2) {
		t.Error("Union of already merged sets should return false")
	}
}

func TestUnionRefusesOverCapacity(t *testing.T) {
	u := NewUnionFind(6, 3)
	u.Union(0, 1)
	u.Union(0, 2) // size 3
	u.Union(3, 4) // size 2

	parents := slices.Clone(u.parent)
	sizes := slices.Clone(u.size)

	if u.Union(2, 3) {
		t.Fatal("Union exceeding capacity should return false")
	}
	if !slices.Equal(parents, u.parent) || !slices.Equal(sizes, u.size) {
		t.Error("refused union must leave the partition unchanged")
	}
	if u.Size(0) != 3 || u.Size(3) != 2 {
		t.Errorf("sizes = %d, %d, want 3, 2", u.Size(0), u.Size(3))
	}

	// Exactly at capacity is allowed.
	if !u.Union(4, 5) {
		t.Error("Union reaching capacity exactly should succeed")
	}
}

func TestUnionTieAttachesSecondUnderFirst(t *testing.T) {
	u := NewUnionFind(2, 2)
	u.Union(0, 1)
	if u.Find(1) != 0 {
		t.Errorf("Find(1) = %d, want 0", u.Find(1))
	}
	if u.rank[0] != 1 {
		t.Errorf("rank[0] = %d, want 1", u.rank[0])
	}
}

func TestFindCompressesPath(t *testing.T) {
	u := NewUnionFind(5, 5)
	// Build a chain 4 -> 3 -> 2 -> 1 -> 0 by hand.
	for i := 1; i < 5; i++ {
		u.parent[i] = i - 1
	}

	root := u.Find(4)
	if root != 0 {
		t.Fatalf("Find(4) = %d, want 0", root)
	}
	for i := range 5 {
		if u.parent[i] != 0 {
			t.Errorf("parent[%d] = %d after compression, want 0", i, u.parent[i])
		}
	}
	if again := u.Find(4); again != root {
		t.Errorf("Find not idempotent: %d then %d", root, again)
	}
}
