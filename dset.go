package nogo

// DisjointSet is a union-find over the 81 points of one color, where each
// root additionally carries the full point-mask of its component. That
// lets callers fetch "every stone connected to p" in O(1) after find,
// instead of re-walking the structure or re-running a flood fill.
type DisjointSet struct {
	parent    [NumPoints]uint8
	component [NumPoints]Mask
}

// NewDisjointSet returns every point in its own singleton component.
func NewDisjointSet() DisjointSet {
	var d DisjointSet
	for i := 0; i < NumPoints; i++ {
		d.parent[i] = uint8(i)
		d.component[i].Set(i)
	}
	return d
}

// Find returns the representative of x's component, path-compressing as it
// walks up.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != uint8(x) {
		d.parent[x] = d.parent[int(d.parent[x])]
		x = int(d.parent[x])
	}
	return x
}

// Union merges the components containing x and y. The mask of the
// surviving root absorbs the mask of the one that gets reparented; the
// loser's stale mask is never read again because Find always resolves to
// the new root first.
func (d *DisjointSet) Union(x, y int) {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return
	}
	d.parent[rx] = uint8(ry)
	d.component[ry] = d.component[ry].Or(d.component[rx])
}

// ComponentOf returns the full point-mask of x's connected group.
func (d *DisjointSet) ComponentOf(x int) Mask {
	return d.component[d.Find(x)]
}
