package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arxos/opencubes/internal/pcubeio"
	"github.com/arxos/opencubes/internal/polycube"
)

func writeSampleCache(t *testing.T, path string) {
	t.Helper()
	var p polycube.PointList
	p.Count = 1
	canon := polycube.Canonical(p, polycube.Dim{}, 1)
	require.NoError(t, pcubeio.WriteFile(path, true, pcubeio.CompressionNone, []*polycube.RawPCube{canon.ToRawPCube()}))
}

func TestPCubeValidateAcceptsWellFormedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubes_1.pcube")
	writeSampleCache(t, path)

	rootCmd.SetArgs([]string{"pcube", "validate", path, "-n", "1"})
	assert.NoError(t, rootCmd.Execute())
}

func TestPCubeValidateRejectsWrongCellCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubes_1.pcube")
	writeSampleCache(t, path)

	rootCmd.SetArgs([]string{"pcube", "validate", path, "-n", "2"})
	assert.Error(t, rootCmd.Execute())
}

func TestPCubeInfoReportsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubes_1.pcube")
	writeSampleCache(t, path)

	rootCmd.SetArgs([]string{"pcube", "info", path})
	assert.NoError(t, rootCmd.Execute())
}

func TestPCubeConvertRequiresOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubes_1.pcube")
	writeSampleCache(t, path)

	convertOut = ""
	rootCmd.SetArgs([]string{"pcube", "convert", path})
	assert.Error(t, rootCmd.Execute())
}

func TestPCubeConvertWritesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "cubes_1.pcube")
	writeSampleCache(t, in)

	out := filepath.Join(dir, "out.pcube")
	rootCmd.SetArgs([]string{"pcube", "convert", in, "-o", out, "-z", "gzip"})
	require.NoError(t, rootCmd.Execute())

	cubes, _, compression, err := pcubeio.ReadAll(out)
	require.NoError(t, err)
	assert.Len(t, cubes, 1)
	assert.Equal(t, pcubeio.CompressionGzip, compression)
}
