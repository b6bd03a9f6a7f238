package hashless

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arxos/opencubes/internal/polycube"
)

// oeisA000162 is the reference sequence (a(N) = distinct polycubes of size
// N up to rotation), 1-indexed: oeisA000162[0] is a(1).
var oeisA000162 = []int{1, 1, 2, 8, 29, 166, 1023}

func TestHashlessMatchesOEIS(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive enumeration is slow; skipped under -short")
	}
	ctx := context.Background()
	seeds := []polycube.PointList{{Count: 1}}

	for n := 2; n <= len(oeisA000162); n++ {
		got, err := Count(ctx, seeds, 1, n, 4)
		require.NoError(t, err)
		assert.Equal(t, oeisA000162[n-1], got, "N=%d", n)
	}
}

func TestCountSingleSeedMatchesDirectEnumeration(t *testing.T) {
	ctx := context.Background()
	seeds := []polycube.PointList{{Count: 1}}
	got, err := Count(ctx, seeds, 1, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, enumerateCanonicalChildren(seeds[0], 1, 4), got)
}
