// Package hash implements the hash-based expansion engine: each layer N is
// materialised as the deduplicated set of canonical N-cubes, sharded into
// buckets keyed by (shape, first-coordinate) so concurrent inserts rarely
// contend with each other.
package hash

import (
	"sync"

	"github.com/arxos/opencubes/internal/polycube"
)

// tailCap is one less than polycube.MaxCapacity: a bucket's tails never
// carry the first coordinate, which the bucket key already holds.
const tailCap = polycube.MaxCapacity - 1

// tail is the fixed-size, zero-padded remainder of a canonical PointList
// with its first coordinate removed — comparable, so it can key a Go map
// directly without a custom hash/equality function.
type tail [tailCap]polycube.Coord

// BucketKey identifies one (shape, first-coordinate) shard of a layer.
type BucketKey struct {
	Shape polycube.Dim
	First polycube.Coord
}

// firstCoordBound is the exclusive upper bound on a canonical PointList's
// first coordinate: shape-normalisation guarantees some cube touches
// z=0, and packed-coordinate order sorts primarily on the z field, so the
// lexicographically smallest (first, post-sort) coordinate always has
// z=0 — bounding it to the 10-bit (y,x) space.
const firstCoordBound = 1 << 10

// bucket holds the deduplicated tails for one BucketKey. The RWMutex lets
// the insert fast-path's existence probe run concurrently with other
// probes; only an actual insertion takes the write lock.
type bucket struct {
	mu    sync.RWMutex
	tails map[tail]struct{}
}

func newBucket() *bucket {
	return &bucket{tails: make(map[tail]struct{})}
}

// probe reports whether t is already present, without taking the write lock.
func (b *bucket) probe(t tail) bool {
	b.mu.RLock()
	_, ok := b.tails[t]
	b.mu.RUnlock()
	return ok
}

// insert records t, returning false if it was already present (a race with
// another writer that inserted the same tail between probe and insert —
// harmless, since a duplicate canonicalise+insert is idempotent here).
func (b *bucket) insert(t tail) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.tails[t]; ok {
		return false
	}
	b.tails[t] = struct{}{}
	return true
}

func (b *bucket) len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.tails)
}

// tailOf extracts the zero-padded tail (coordinates 1..count) of p.
func tailOf(p polycube.PointList, count int) tail {
	var t tail
	for i := 1; i < count; i++ {
		t[i-1] = p.Cubes[i]
	}
	return t
}

// fromTail reconstructs a full PointList from a bucket key and its tail.
func fromTail(key BucketKey, t tail, count int) polycube.PointList {
	var p polycube.PointList
	p.Cubes[0] = key.First
	for i := 1; i < count; i++ {
		p.Cubes[i] = t[i-1]
	}
	p.Count = count
	return p
}
