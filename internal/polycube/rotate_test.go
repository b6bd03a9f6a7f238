package polycube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lTromino is the canonical seed used across rotation/expansion tests: three
// cubes in an L shape, already shape-normalised (dim X=1,Y=1,Z=0).
func lTromino() (PointList, Dim) {
	var p PointList
	p.Cubes[0] = pack(0, 0, 0)
	p.Cubes[1] = pack(1, 0, 0)
	p.Cubes[2] = pack(0, 1, 0)
	p.Count = 3
	sortCoords(p.Cubes[:3])
	return p, Dim{1, 1, 0}
}

func TestCanonicalIsIdempotent(t *testing.T) {
	p, dim := lTromino()
	canon := Canonical(p, dim, p.Count)
	again := Canonical(canon, dim, canon.Count)
	assert.True(t, canon.Equal(again))
}

func TestCanonicalIsRotationInvariant(t *testing.T) {
	p, dim := lTromino()
	canon := Canonical(p, dim, p.Count)

	rotated := rotateOne(p, dim, p.Count, ColYP, ColXP, ColZN, sentinelFirst)
	canonOfRotated := Canonical(rotated, dim, rotated.Count)

	assert.True(t, canon.Equal(canonOfRotated))
}

func TestRotateOneSentinelShortCircuit(t *testing.T) {
	var p PointList
	p.Cubes[0] = pack(2, 2, 2)
	p.Count = 1
	dim := Dim{2, 2, 2}

	// The identity rotation of a single cube at (2,2,2) packs to a word far
	// above an incumbent of 100, so rotateOne must skip the sort and
	// report the sentinel instead of a real result.
	res := rotateOne(p, dim, p.Count, ColXP, ColYP, ColZP, 100)
	assert.Equal(t, sentinelFirst, res.Cubes[0])
}

func TestSingleCubeIsAlwaysCanonical(t *testing.T) {
	var p PointList
	p.Count = 1
	canon := Canonical(p, Dim{}, 1)
	assert.True(t, p.Equal(canon))
}

func TestAxisPermutationForAllOrderings(t *testing.T) {
	cases := []struct {
		x, y, z int
		want    Dim
	}{
		{3, 2, 1, Dim{3, 2, 1}},
		{3, 1, 2, Dim{3, 2, 1}},
		{2, 3, 1, Dim{3, 2, 1}},
		{1, 3, 2, Dim{3, 2, 1}},
		{2, 1, 3, Dim{3, 2, 1}},
		{1, 2, 3, Dim{3, 2, 1}},
	}
	for _, tc := range cases {
		_, _, _, rdim := axisPermutationFor(tc.x, tc.y, tc.z)
		require.Equal(t, tc.want, rdim)
	}
}
