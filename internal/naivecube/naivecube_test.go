package naivecube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arxos/opencubes/internal/polycube"
)

func lShape() *Cube {
	c := New(2, 2, 1)
	c.Set(0, 0, 0, true)
	c.Set(1, 0, 0, true)
	c.Set(0, 1, 0, true)
	return c
}

func TestAllRotationsCount(t *testing.T) {
	assert.Len(t, rotationMatrices, 24)
}

func TestRotateThenCanonicalFormAgree(t *testing.T) {
	c := lShape()
	canon := c.CanonicalForm()

	for _, r := range c.AllRotations() {
		assert.True(t, r.CanonicalForm().Equal(canon), "every rotation must share one canonical form")
	}
}

func TestFromRawPCubeToRawPCubeRoundTrip(t *testing.T) {
	raw := lShape().mustRawPCube(t)
	c := FromRawPCube(raw)

	back, err := c.ToRawPCube()
	require.NoError(t, err)
	assert.Equal(t, raw.Data, back.Data)
}

func (c *Cube) mustRawPCube(t *testing.T) *polycube.RawPCube {
	t.Helper()
	raw, err := c.ToRawPCube()
	require.NoError(t, err)
	return raw
}

func TestCanonicalFormMatchesFastCanonical(t *testing.T) {
	raw := lShape().mustRawPCube(t)
	points, dim, err := polycube.FromRawPCube(raw)
	require.NoError(t, err)

	fast := polycube.Canonical(points, dim, points.Count)
	fastRaw := fast.ToRawPCube()

	naiveCanon := FromRawPCube(raw).CanonicalForm()
	naiveCanonRaw, err := naiveCanon.ToRawPCube()
	require.NoError(t, err)

	assert.Equal(t, fastRaw.D1, naiveCanonRaw.D1)
	assert.Equal(t, fastRaw.D2, naiveCanonRaw.D2)
	assert.Equal(t, fastRaw.D3, naiveCanonRaw.D3)
}
