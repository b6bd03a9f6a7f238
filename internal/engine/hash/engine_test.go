package hash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oeisA000162 is the reference sequence (a(N) = distinct polycubes of size
// N up to rotation), 1-indexed: oeisA000162[0] is a(1).
var oeisA000162 = []int{1, 1, 2, 8, 29, 166, 1023}

func TestHashEngineMatchesOEIS(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive enumeration is slow; skipped under -short")
	}
	ctx := context.Background()
	cur := SeedLayer()
	require.Equal(t, 1, cur.Len())

	for n := 2; n <= len(oeisA000162); n++ {
		next, err := Step(ctx, cur, 4)
		require.NoError(t, err)
		assert.Equal(t, oeisA000162[n-1], next.Len(), "N=%d", n)
		cur = next
	}
}

func TestSeedLayerIsOneCube(t *testing.T) {
	l := SeedLayer()
	assert.Equal(t, 1, l.Count)
	assert.Equal(t, 1, l.Len())
}

func TestRunDrivesToTarget(t *testing.T) {
	ctx := context.Background()
	out, err := Run(ctx, SeedLayer(), 4, 2)
	require.NoError(t, err)
	assert.Equal(t, oeisA000162[3], out.Len())
}
