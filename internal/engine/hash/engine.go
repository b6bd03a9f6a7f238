package hash

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/arxos/opencubes/internal/polycube"
	"github.com/arxos/opencubes/internal/support/logger"
)

// SeedLayer returns the single layer-1 polycube: one cube at the origin.
func SeedLayer() *Layer {
	l := NewLayer(1)
	var p polycube.PointList
	p.Count = 1
	l.Insert(p, polycube.Dim{}, 1)
	return l
}

// Step expands cur (holding cubes of size cur.Count) into the next layer,
// running one goroutine per seed of cur rather than one per bucket. workers
// bounds the number of seeds expanded concurrently via a weighted semaphore,
// following the pack's ecosystem choice of x/sync/semaphore over a
// hand-rolled worker pool for simple bounded fan-out.
func Step(ctx context.Context, cur *Layer, workers int) (*Layer, error) {
	next := NewLayer(cur.Count + 1)
	next.PreCreate(NextShapes(cur.Shapes()))

	seeds := cur.Seeds()
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, seed := range seeds {
		seedDim := seed.ExtrapolateDim(cur.Count)
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(seed polycube.PointList, dim polycube.Dim) {
			defer wg.Done()
			defer sem.Release(1)
			meta := polycube.PointListMeta{Points: seed, Dim: dim, Count: cur.Count}
			polycube.Expand(meta, func(child polycube.PointListMeta) {
				next.Insert(child.Points, child.Dim, child.Count)
			})
		}(seed, seedDim)
	}

	wg.Wait()
	next.DropEmpty()
	logger.Debug("hash engine: layer %d -> %d produced %d cubes", cur.Count, next.Count, next.Len())
	return next, nil
}

// Run drives Step from seed up to target, returning the final layer.
func Run(ctx context.Context, seed *Layer, target, workers int) (*Layer, error) {
	cur := seed
	for cur.Count < target {
		var err error
		cur, err = Step(ctx, cur, workers)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
