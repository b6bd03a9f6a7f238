package polycube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRaw sets every (x,y,z) in cells on a (d1,d2,d3) grid.
func buildRaw(t *testing.T, d1, d2, d3 uint8, cells [][3]uint8) *RawPCube {
	t.Helper()
	r := NewEmptyRawPCube(d1, d2, d3)
	for _, c := range cells {
		r.Set(c[0], c[1], c[2], true)
	}
	return r
}

func TestFromRawPCubeSingleCube(t *testing.T) {
	raw := buildRaw(t, 1, 1, 1, [][3]uint8{{0, 0, 0}})
	points, dim, err := FromRawPCube(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, points.Count)
	assert.Equal(t, Dim{0, 0, 0}, dim)
}

func TestFromRawPCubeZeroDimension(t *testing.T) {
	raw := &RawPCube{D1: 0, D2: 1, D3: 1}
	_, _, err := FromRawPCube(raw)
	assert.Error(t, err)
}

func TestFromRawPCubeShapeNormalises(t *testing.T) {
	// A straight tromino lying along a 1x3 strip: dims come in as (1,3,1),
	// and must be reordered to X>=Y>=Z on the way in.
	raw := buildRaw(t, 1, 3, 1, [][3]uint8{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}})
	_, dim, err := FromRawPCube(raw)
	require.NoError(t, err)
	assert.True(t, dim.Valid())
	assert.Equal(t, Dim{2, 0, 0}, dim)
}

func TestToRawPCubeRoundTrip(t *testing.T) {
	raw := buildRaw(t, 2, 2, 1, [][3]uint8{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	points, dim, err := FromRawPCube(raw)
	require.NoError(t, err)

	back := points.ToRawPCube()
	reloaded, rdim, err := FromRawPCube(back)
	require.NoError(t, err)

	assert.Equal(t, dim, rdim)
	assert.True(t, points.Equal(reloaded))
}

func TestPointListEqualAndLess(t *testing.T) {
	a := PointList{Cubes: [MaxCapacity]Coord{0, 1}, Count: 2}
	b := PointList{Cubes: [MaxCapacity]Coord{0, 1}, Count: 2}
	c := PointList{Cubes: [MaxCapacity]Coord{0, 2}, Count: 2}
	shorter := PointList{Cubes: [MaxCapacity]Coord{0}, Count: 1}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Less(c))
	assert.False(t, c.Less(a))
	assert.True(t, shorter.Less(a))
}

func TestExtrapolateCountAndDim(t *testing.T) {
	var p PointList
	p.Cubes[0] = pack(0, 0, 0)
	p.Cubes[1] = pack(1, 0, 0)
	p.Cubes[2] = pack(2, 0, 0)
	p.Cubes[3] = 0 // falls back to a value <= Cubes[2], marking the end

	count := p.ExtrapolateCount()
	assert.Equal(t, 3, count)
	dim := p.ExtrapolateDim(count)
	assert.Equal(t, Dim{2, 0, 0}, dim)
}
