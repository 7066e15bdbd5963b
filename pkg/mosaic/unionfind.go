package mosaic

// UnionFind is a disjoint-set forest whose sets may not grow beyond a fixed
// capacity. Unions that would exceed it are refused.
type UnionFind struct {
	parent  []int
	rank    []int
	size    []int
	maxSize int
}

// NewUnionFind creates n singleton sets with the given capacity.
func NewUnionFind(n, maxSize int) *UnionFind {
	u := &UnionFind{
		parent:  make([]int, n),
		rank:    make([]int, n),
		size:    make([]int, n),
		maxSize: maxSize,
	}
	for i := range n {
		u.parent[i] = i
		u.size[i] = 1
	}
	return u
}

// Len returns the number of elements.
func (u *UnionFind) Len() int { return len(u.parent) }

// Find returns the root of x. Every node visited on the way is repointed
// directly at the root.
func (u *UnionFind) Find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		next := u.parent[x]
		u.parent[x] = root
		x = next
	}
	return root
}

// Size returns the size of the set containing x.
func (u *UnionFind) Size(x int) int {
	return u.size[u.Find(x)]
}

// Union merges the sets of x and y. It returns false when they already share
// a root or when the merged set would exceed the capacity; in both cases the
// partition is unchanged.
//
// Ties in rank attach y's root under x's root.
func (u *UnionFind) Union(x, y int) bool {
	rootX, rootY := u.Find(x), u.Find(y)
	if rootX == rootY {
		return false
	}
	if u.size[rootX]+u.size[rootY] > u.maxSize {
		return false
	}

	switch {
	case u.rank[rootX] < u.rank[rootY]:
		u.parent[rootX] = rootY
		u.size[rootY] += u.size[rootX]
	case u.rank[rootX] > u.rank[rootY]:
		u.parent[rootY] = rootX
		u.size[rootX] += u.size[rootY]
	default:
		u.parent[rootY] = rootX
		u.size[rootX] += u.size[rootY]
		u.rank[rootX]++
	}
	return true
}
