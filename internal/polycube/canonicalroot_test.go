package polycube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsCanonicalRootAcceptsSomeLTrominoChild enumerates the distinct N=4
// children of the L-tromino seed and checks that IsCanonicalRoot accepts
// the seed as canonical root for at least one of them. The exactly-once
// counting across all seeds is covered by the hashless engine's OEIS test.
func TestIsCanonicalRootAcceptsSomeLTrominoChild(t *testing.T) {
	seed, dim := lTromino()
	meta := PointListMeta{Points: seed, Dim: dim, Count: seed.Count}

	canonSeen := make(map[PointList]struct{})
	var children []PointList
	Expand(meta, func(m PointListMeta) {
		c := Canonical(m.Points, m.Dim, m.Count)
		if _, ok := canonSeen[c]; ok {
			return
		}
		canonSeen[c] = struct{}{}
		children = append(children, c)
	})
	require.NotEmpty(t, children)

	rootCount := 0
	for _, child := range children {
		if IsCanonicalRoot(child, seed.Count, seed) {
			rootCount++
		}
	}

	// Children that contain a straight tromino have that smaller seed as
	// their canonical root; the rest have the L-tromino, so at least one
	// child must pass.
	assert.Greater(t, rootCount, 0)
}

func TestIsContinuousDetectsDisconnection(t *testing.T) {
	var p PointList
	p.Cubes[0] = pack(0, 0, 0)
	p.Cubes[1] = pack(2, 0, 0) // not face-adjacent to (0,0,0)
	p.Count = 2

	assert.False(t, isContinuous(p, 2))
}

func TestIsContinuousAcceptsConnectedChain(t *testing.T) {
	var p PointList
	p.Cubes[0] = pack(0, 0, 0)
	p.Cubes[1] = pack(1, 0, 0)
	p.Cubes[2] = pack(2, 0, 0)
	p.Count = 3

	assert.True(t, isContinuous(p, 3))
}

func TestRemoveCubeTranslatesToOrigin(t *testing.T) {
	var p PointList
	p.Cubes[0] = pack(1, 1, 0)
	p.Cubes[1] = pack(2, 1, 0)
	p.Cubes[2] = pack(1, 2, 0)
	p.Count = 3

	// Remove index 2 (the (1,2,0) cube); the remaining two should
	// translate so their minimum corner sits at the origin.
	result, dim := removeCube(p, 2, 2)
	assert.Equal(t, Dim{1, 0, 0}, dim)
	assert.Equal(t, pack(0, 0, 0), result.Cubes[0])
	assert.Equal(t, pack(1, 0, 0), result.Cubes[1])
}
