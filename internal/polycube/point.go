// Package polycube implements the compact polycube representation and its
// rotation/canonicalisation algebra: a fixed-capacity sorted array of
// packed 15-bit lattice coordinates (Copy-by-value, no heap), the 24
// proper-rotation algebra used to canonicalise it, the expansion operator
// that grows it by one cube, and the canonical-root test the hashless
// engine uses to count descendants without storing them.
package polycube

import "fmt"

// Coord packs a lattice point as (z<<10)|(y<<5)|x, 5 bits per axis (0..31).
type Coord = uint16

const (
	axisBits = 5
	axisMask = 0x1f

	shiftX = 0
	shiftY = 5
	shiftZ = 10

	// sentinelFirst is "definitely not a minimum": bit 10 set with the rest
	// zero means x=0, y=0, z=1, and a real minimum always has z=0. It is
	// used by the rotation
	// fast-path to short-circuit sort comparisons without an Option type.
	sentinelFirst Coord = 1 << 10

	// MaxCapacity bounds the fixed array backing every PointList. 32 cubes
	// covers both the 15-bit-packed fast engines (N<=16) and the
	// hash/hashless engines' N<=32 scratch representation.
	MaxCapacity = 32
)

// Dim is the bounding-box extent triple (sizes minus one), shape-normalised
// so X >= Y >= Z.
type Dim struct {
	X, Y, Z int
}

// Equal reports whether two Dims match exactly.
func (d Dim) Equal(o Dim) bool { return d.X == o.X && d.Y == o.Y && d.Z == o.Z }

// Valid reports whether d obeys the shape-normalisation invariant and stays
// within the 5-bit-per-axis packing limit.
func (d Dim) Valid() bool {
	return d.X >= d.Y && d.Y >= d.Z && d.X <= axisMask && d.X >= 0 && d.Z >= 0
}

func (d Dim) String() string { return fmt.Sprintf("(%d,%d,%d)", d.X, d.Y, d.Z) }

// pack combines three in-range axis values into one 16-bit coordinate word.
func pack(x, y, z uint16) Coord {
	return (z << shiftZ) | (y << shiftY) | x
}

func unpackX(c Coord) uint16 { return c & axisMask }
func unpackY(c Coord) uint16 { return (c >> shiftY) & axisMask }
func unpackZ(c Coord) uint16 { return (c >> shiftZ) & axisMask }
