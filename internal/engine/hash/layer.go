package hash

import (
	"sync"

	"github.com/arxos/opencubes/internal/polycube"
)

// Layer is the materialised set of canonical N-cubes for one N, represented
// as a sharded map from BucketKey to its bucket of tails.
type Layer struct {
	Count int

	mu      sync.Mutex // guards bucket creation only; bucket.mu guards its tails
	buckets map[BucketKey]*bucket
}

// NewLayer returns an empty layer for the given cube count.
func NewLayer(count int) *Layer {
	return &Layer{Count: count, buckets: make(map[BucketKey]*bucket)}
}

// PreCreate allocates empty buckets for every (shape, first-coordinate) pair
// reachable from shapes, so the parallel insert phase that follows never
// needs the layer-level lock for bucket creation — only per-bucket locks,
// which are independent across buckets.
func (l *Layer) PreCreate(shapes []polycube.Dim) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, shape := range shapes {
		for first := polycube.Coord(0); first < firstCoordBound; first++ {
			key := BucketKey{Shape: shape, First: first}
			if _, ok := l.buckets[key]; !ok {
				l.buckets[key] = newBucket()
			}
		}
	}
}

// bucketFor returns the bucket for key, creating it under the layer lock if
// PreCreate did not already cover it (e.g. a shape PreCreate's caller did
// not anticipate — a correctness fallback, not the hot path).
func (l *Layer) bucketFor(key BucketKey) *bucket {
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket()
		l.buckets[key] = b
	}
	l.mu.Unlock()
	return b
}

// Insert implements §4.5's Insert(candidate): probe the bucket the
// candidate's own (shape, first-coordinate) would occupy; if its tail is
// already present, no canonicalisation is needed. Otherwise canonicalise
// and insert under the canonical form's own bucket key.
func (l *Layer) Insert(candidate polycube.PointList, shape polycube.Dim, count int) {
	first := candidate.Cubes[0]
	probeKey := BucketKey{Shape: shape, First: first}
	probeTail := tailOf(candidate, count)

	if b := l.bucketFor(probeKey); b.probe(probeTail) {
		return
	}

	canon := polycube.Canonical(candidate, shape, count)
	canonKey := BucketKey{Shape: shape, First: canon.Cubes[0]}
	canonTail := tailOf(canon, count)
	l.bucketFor(canonKey).insert(canonTail)
}

// Len returns the total number of distinct canonical cubes currently held.
func (l *Layer) Len() int {
	l.mu.Lock()
	keys := make([]*bucket, 0, len(l.buckets))
	for _, b := range l.buckets {
		keys = append(keys, b)
	}
	l.mu.Unlock()

	total := 0
	for _, b := range keys {
		total += b.len()
	}
	return total
}

// DropEmpty removes buckets left empty by PreCreate's over-approximation of
// plausible shapes — step 3 of §4.5's layer step.
func (l *Layer) DropEmpty() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, b := range l.buckets {
		if b.len() == 0 {
			delete(l.buckets, k)
		}
	}
}

// Seeds returns every cube currently stored, as PointLists ready to expand
// into the next layer.
func (l *Layer) Seeds() []polycube.PointList {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []polycube.PointList
	for key, b := range l.buckets {
		b.mu.RLock()
		for t := range b.tails {
			out = append(out, fromTail(key, t, l.Count))
		}
		b.mu.RUnlock()
	}
	return out
}

// Shapes returns the distinct Dims present across non-empty buckets, the
// input PreCreate needs to size the next layer.
func (l *Layer) Shapes() []polycube.Dim {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[polycube.Dim]struct{})
	for key, b := range l.buckets {
		if b.len() > 0 {
			seen[key.Shape] = struct{}{}
		}
	}
	out := make([]polycube.Dim, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	return out
}

// NextShapes over-approximates the distinct shapes reachable by adding one
// cube to any of prev: the shape unchanged, or with one axis extended by
// one (each extended triple re-sorted into X>=Y>=Z order). Feeding these into
// PreCreate means the real canonical shapes computed during expansion are
// always pre-allocated.
func NextShapes(prev []polycube.Dim) []polycube.Dim {
	seen := make(map[polycube.Dim]struct{})
	add := func(d polycube.Dim) {
		x, y, z := d.X, d.Y, d.Z
		if x < y {
			x, y = y, x
		}
		if y < z {
			y, z = z, y
		}
		if x < y {
			x, y = y, x
		}
		seen[polycube.Dim{X: x, Y: y, Z: z}] = struct{}{}
	}

	for _, d := range prev {
		add(d)
		add(polycube.Dim{X: d.X + 1, Y: d.Y, Z: d.Z})
		add(polycube.Dim{X: d.X, Y: d.Y + 1, Z: d.Z})
		add(polycube.Dim{X: d.X, Y: d.Y, Z: d.Z + 1})
	}

	out := make([]polycube.Dim, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	return out
}
