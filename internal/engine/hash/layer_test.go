package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arxos/opencubes/internal/polycube"
)

func TestLayerInsertDeduplicates(t *testing.T) {
	l := NewLayer(1)
	var p polycube.PointList
	p.Count = 1

	l.Insert(p, polycube.Dim{}, 1)
	l.Insert(p, polycube.Dim{}, 1)

	assert.Equal(t, 1, l.Len())
}

func TestLayerPreCreateThenDropEmpty(t *testing.T) {
	l := NewLayer(2)
	l.PreCreate([]polycube.Dim{{1, 0, 0}})
	assert.Greater(t, len(l.buckets), 0)

	l.DropEmpty()
	assert.Equal(t, 0, len(l.buckets))
}

func TestNextShapesIncludesEachAxisExtension(t *testing.T) {
	shapes := NextShapes([]polycube.Dim{{1, 1, 0}})

	want := map[polycube.Dim]bool{
		{1, 1, 0}: false,
		{2, 1, 0}: false,
		{1, 1, 1}: false,
	}
	for _, s := range shapes {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for d, found := range want {
		assert.True(t, found, "expected shape %v among NextShapes output", d)
	}
}

func TestTailOfFromTailRoundTrip(t *testing.T) {
	var p polycube.PointList
	p.Cubes[0] = 5
	p.Cubes[1] = 10
	p.Cubes[2] = 20
	p.Count = 3

	tl := tailOf(p, 3)
	rebuilt := fromTail(BucketKey{First: p.Cubes[0]}, tl, 3)
	assert.True(t, p.Equal(rebuilt))
}
