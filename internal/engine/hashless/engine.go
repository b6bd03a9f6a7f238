// Package hashless implements the recursive, non-storing enumeration
// engine: each (N-1)-seed is expanded and counted independently, with no
// aggregation set — only the canonical-root test (internal/polycube) to
// ensure each descendant is attributed to exactly one seed.
package hashless

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/arxos/opencubes/internal/polycube"
)

// enumerateCanonicalChildren implements §4.6 steps 2-5: expand seed,
// canonicalise each child, retain only those whose canonical root is seed,
// then either report the count (target reached) or recurse per child.
func enumerateCanonicalChildren(seed polycube.PointList, count, target int) int {
	shape := seed.ExtrapolateDim(count)

	seen := make(map[polycube.PointList]struct{})
	var children []polycube.PointList

	record := func(meta polycube.PointListMeta) {
		canon := polycube.Canonical(meta.Points, meta.Dim, meta.Count)
		if _, ok := seen[canon]; ok {
			return
		}
		seen[canon] = struct{}{}
		children = append(children, canon)
	}

	if shape.X == shape.Y && shape.X > 0 {
		rotz := rotateForEqualAxes(seed, shape, count, polycube.ColYN, polycube.ColXN, polycube.ColZN)
		polycube.Expand(polycube.PointListMeta{Points: rotz, Dim: shape, Count: count}, record)
	}
	if shape.Y == shape.Z && shape.Y > 0 {
		rotx := rotateForEqualAxes(seed, shape, count, polycube.ColXN, polycube.ColZP, polycube.ColYP)
		polycube.Expand(polycube.PointListMeta{Points: rotx, Dim: shape, Count: count}, record)
	}
	if shape.X == shape.Z && shape.X > 0 {
		roty := rotateForEqualAxes(seed, shape, count, polycube.ColZP, polycube.ColYP, polycube.ColXN)
		polycube.Expand(polycube.PointListMeta{Points: roty, Dim: shape, Count: count}, record)
	}
	polycube.Expand(polycube.PointListMeta{Points: seed, Dim: shape, Count: count}, record)

	retained := children[:0]
	for _, child := range children {
		if polycube.IsCanonicalRoot(child, count, seed) {
			retained = append(retained, child)
		}
	}

	if count+1 == target {
		return len(retained)
	}

	sum := 0
	for _, child := range retained {
		sum += enumerateCanonicalChildren(child, count+1, target)
	}
	return sum
}

func rotateForEqualAxes(p polycube.PointList, shape polycube.Dim, count int, x, y, z polycube.MatrixCol) polycube.PointList {
	return polycube.RotateOne(p, shape, count, x, y, z, 1025)
}

// Count runs enumerateCanonicalChildren over every seed in parallel
// (bounded by workers), summing the results — the hashless engine's only
// aggregation point, an atomic-free sum of independently-computed values
// collected after a bounded fan-out.
func Count(ctx context.Context, seeds []polycube.PointList, seedCount, target, workers int) (int, error) {
	sem := semaphore.NewWeighted(int64(workers))
	results := make([]int, len(seeds))
	var wg sync.WaitGroup

	for i, seed := range seeds {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return 0, err
		}
		wg.Add(1)
		go func(i int, seed polycube.PointList) {
			defer wg.Done()
			defer sem.Release(1)
			results[i] = enumerateCanonicalChildren(seed, seedCount, target)
		}(i, seed)
	}
	wg.Wait()

	total := 0
	for _, r := range results {
		total += r
	}
	return total, nil
}
