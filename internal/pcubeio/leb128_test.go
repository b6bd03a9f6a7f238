package pcubeio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLEB128RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1 << 32, ^uint64(0)}
	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, WriteLEB128(&buf, v))
		got, err := ReadLEB128(&buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestLEB128PaddedRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 42, 1 << 20}
	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, WriteLEB128Padded(&buf, v))
		assert.Equal(t, maxLEB128Bytes, buf.Len())
		got, err := ReadLEB128(&buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestReadLEB128OverflowUnterminated(t *testing.T) {
	buf := bytes.NewBuffer(bytes.Repeat([]byte{0x80}, maxLEB128Bytes))
	_, err := ReadLEB128(buf)
	assert.Error(t, err)
}

func TestReadLEB128OverflowFinalByte(t *testing.T) {
	bad := append(bytes.Repeat([]byte{0x80}, maxLEB128Bytes-1), 0x02)
	_, err := ReadLEB128(bytes.NewReader(bad))
	assert.Error(t, err)
}
