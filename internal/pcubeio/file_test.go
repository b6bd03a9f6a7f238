package pcubeio

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arxos/opencubes/internal/polycube"
)

func writeRaw(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func readRaw(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func sampleCubes(t *testing.T) []*polycube.RawPCube {
	t.Helper()
	a := polycube.NewEmptyRawPCube(1, 1, 1)
	a.Set(0, 0, 0, true)
	b := polycube.NewEmptyRawPCube(2, 1, 1)
	b.Set(0, 0, 0, true)
	b.Set(1, 0, 0, true)
	return []*polycube.RawPCube{a, b}
}

func TestWriteFileReadAllRoundTripUncompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubes_test.pcube")
	cubes := sampleCubes(t)

	require.NoError(t, WriteFile(path, true, CompressionNone, cubes))

	got, canonical, compression, err := ReadAll(path)
	require.NoError(t, err)
	assert.True(t, canonical)
	assert.Equal(t, CompressionNone, compression)
	require.Len(t, got, 2)
	assert.Equal(t, cubes[0].Data, got[0].Data)
	assert.Equal(t, cubes[1].Data, got[1].Data)
}

func TestWriteFileReadAllRoundTripGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubes_test.pcube.gz")
	cubes := sampleCubes(t)

	require.NoError(t, WriteFile(path, false, CompressionGzip, cubes))

	got, canonical, compression, err := ReadAll(path)
	require.NoError(t, err)
	assert.False(t, canonical)
	assert.Equal(t, CompressionGzip, compression)
	require.Len(t, got, 2)
}

func TestWriteFileStreamingRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubes_stream.pcube")
	cubes := sampleCubes(t)
	i := 0
	next := func() (*polycube.RawPCube, bool) {
		if i >= len(cubes) {
			return nil, false
		}
		c := cubes[i]
		i++
		return c, true
	}

	require.NoError(t, WriteFileStreaming(path, true, CompressionNone, next))

	got, _, _, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestOpenBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pcube")
	require.NoError(t, writeRaw(path, []byte{0, 0, 0, 0, 1, 0, 0}))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestOpenFileNotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist.pcube"))
	assert.Error(t, err)
}

func TestNextLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.pcube")
	cubes := sampleCubes(t)
	require.NoError(t, WriteFile(path, true, CompressionNone, cubes))

	raw := readRaw(t, path)
	// Corrupt the LEB128 length byte (after 4-byte magic + 2-byte header) to
	// claim more cubes than are present.
	raw[6] = 5
	require.NoError(t, writeRaw(path, raw))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	for i := 0; i < 2; i++ {
		_, err := r.Next()
		require.NoError(t, err)
	}
	_, err = r.Next()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}
