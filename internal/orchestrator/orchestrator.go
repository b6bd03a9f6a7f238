// Package orchestrator selects an enumeration engine, loads the newest
// usable cache, drives expansion up to the requested N, persists new
// caches, and reports timing — component H of the enumerator design.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/arxos/opencubes/internal/engine/hash"
	"github.com/arxos/opencubes/internal/engine/hashless"
	"github.com/arxos/opencubes/internal/pcubeio"
	"github.com/arxos/opencubes/internal/polycube"
	"github.com/arxos/opencubes/internal/support/logger"
)

// Mode selects which engine drives enumeration. RotationReduced and
// PointList both route to the point-list engines (see DESIGN.md: the
// legacy dense-grid engine is not carried forward).
type Mode string

const (
	ModeStandard        Mode = "standard"
	ModeRotationReduced Mode = "rotation-reduced"
	ModePointList       Mode = "point-list"
	ModeHashless        Mode = "hashless"
)

// Options configures one enumerate run.
type Options struct {
	N                int
	Mode             Mode
	NoCache          bool
	NoParallelism    bool
	CacheCompression pcubeio.Compression
	CacheDir         string
	Workers          int
}

// Result is the outcome of one enumerate run.
type Result struct {
	Count      int
	Elapsed    time.Duration
	CacheLayer int // highest N actually persisted to disk, 0 if none
}

func cacheFileName(n int) string { return fmt.Sprintf("cubes_%d.pcube", n) }

// findCache searches dir backward from maxN for the highest-numbered
// existing cache file, returning its N and path.
func findCache(dir string, maxN int) (int, string, bool) {
	for n := maxN; n >= 1; n-- {
		path := filepath.Join(dir, cacheFileName(n))
		if _, err := os.Stat(path); err == nil {
			return n, path, true
		}
	}
	return 0, "", false
}

func loadSeedLayer(path string) (*hash.Layer, error) {
	cubes, canonical, _, err := pcubeio.ReadAll(path)
	if err != nil {
		return nil, err
	}
	if len(cubes) == 0 {
		return hash.NewLayer(0), nil
	}

	count := 0
	d1, d2, d3 := cubes[0].Dims()
	for x := uint8(0); x < d1; x++ {
		for y := uint8(0); y < d2; y++ {
			for z := uint8(0); z < d3; z++ {
				if cubes[0].Get(x, y, z) {
					count++
				}
			}
		}
	}
	layer := hash.NewLayer(count)

	for _, raw := range cubes {
		points, dim, err := polycube.FromRawPCube(raw)
		if err != nil {
			return nil, err
		}
		if !canonical {
			points = polycube.Canonical(points, dim, points.Count)
		}
		layer.Insert(points, dim, points.Count)
	}
	return layer, nil
}

func layerToSeeds(l *hash.Layer) []polycube.PointList { return l.Seeds() }

// Enumerate drives enumeration to opts.N, returning the distinct-polycube
// count. The hash engine persists one cache file per layer it computes
// (skipped entirely when opts.NoCache is set); the hashless engine never
// writes a cache (it never materialises a layer as a set).
func Enumerate(ctx context.Context, opts Options) (*Result, error) {
	runID := uuid.New()
	start := time.Now()
	logger.Info("run %s: enumerate N=%d mode=%s workers=%d", runID, opts.N, opts.Mode, opts.Workers)

	if opts.N <= 0 {
		return &Result{Count: 0, Elapsed: time.Since(start)}, nil
	}

	workers := opts.Workers
	if opts.NoParallelism {
		workers = 1
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		cacheDir = "."
	}

	seedN, seedPath, found := 0, "", false
	if !opts.NoCache {
		seedN, seedPath, found = findCache(cacheDir, opts.N-1)
	}

	if opts.Mode == ModeHashless {
		count, err := runHashless(ctx, opts, seedN, seedPath, found, workers)
		if err != nil {
			return nil, err
		}
		return &Result{Count: count, Elapsed: time.Since(start)}, nil
	}

	count, cacheLayer, err := runHash(ctx, opts, seedN, seedPath, found, workers, cacheDir)
	if err != nil {
		return nil, err
	}
	return &Result{Count: count, Elapsed: time.Since(start), CacheLayer: cacheLayer}, nil
}

func runHash(ctx context.Context, opts Options, seedN int, seedPath string, found bool, workers int, cacheDir string) (int, int, error) {
	var seed *hash.Layer
	if found {
		loaded, err := loadSeedLayer(seedPath)
		if err != nil {
			return 0, 0, err
		}
		seed = loaded
		logger.Info("loaded cache %s as seed layer N=%d", seedPath, seedN)
	} else {
		seed = hash.SeedLayer()
	}

	if seed.Count == opts.N {
		return seed.Len(), 0, nil
	}

	cur := seed
	cacheLayer := 0
	for cur.Count < opts.N {
		next, err := hash.Step(ctx, cur, workers)
		if err != nil {
			return 0, cacheLayer, err
		}
		cur = next

		if !opts.NoCache {
			if err := persistLayer(cur, cacheDir, opts.CacheCompression); err != nil {
				logger.Warn("failed to persist cache for N=%d: %v", cur.Count, err)
			} else {
				cacheLayer = cur.Count
			}
		}
	}
	return cur.Len(), cacheLayer, nil
}

func runHashless(ctx context.Context, opts Options, seedN int, seedPath string, found bool, workers int) (int, error) {
	var seeds []polycube.PointList
	var seedCount int

	if found {
		layer, err := loadSeedLayer(seedPath)
		if err != nil {
			return 0, err
		}
		seeds = layerToSeeds(layer)
		seedCount = seedN
	} else {
		seeds = []polycube.PointList{{Count: 1}}
		seedCount = 1
	}

	if seedCount == opts.N {
		return len(seeds), nil
	}

	return hashless.Count(ctx, seeds, seedCount, opts.N, workers)
}

func persistLayer(l *hash.Layer, cacheDir string, compression pcubeio.Compression) error {
	seeds := l.Seeds()
	cubes := make([]*polycube.RawPCube, 0, len(seeds))
	for _, s := range seeds {
		cubes = append(cubes, s.ToRawPCube())
	}
	path := filepath.Join(cacheDir, cacheFileName(l.Count))
	return pcubeio.WriteFile(path, true, compression, cubes)
}
