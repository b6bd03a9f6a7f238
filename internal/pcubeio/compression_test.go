package pcubeio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompression(t *testing.T) {
	cases := []struct {
		in   string
		want Compression
	}{
		{"none", CompressionNone},
		{"", CompressionNone},
		{"gzip", CompressionGzip},
	}
	for _, tc := range cases {
		got, err := ParseCompression(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseCompressionRejectsUnknown(t *testing.T) {
	_, err := ParseCompression("zstd")
	assert.Error(t, err)
}

func TestCompressionFromByte(t *testing.T) {
	_, ok := compressionFromByte(0)
	assert.True(t, ok)
	_, ok = compressionFromByte(1)
	assert.True(t, ok)
	_, ok = compressionFromByte(9)
	assert.False(t, ok)
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "gzip", CompressionGzip.String())
}
