// Package naivecube implements the "naive" dense boolean-grid polycube used
// only for file-format conversion and as a brute-force reference for the
// rotation algebra's 24-rotation invariant property tests — never on the
// hot enumeration path.
package naivecube

import (
	"fmt"

	"github.com/arxos/opencubes/internal/polycube"
)

// Cube is a dense (D1 x D2 x D3) boolean occupancy grid, row-major.
type Cube struct {
	D1, D2, D3 int
	Filled     []bool
}

// New allocates an empty cube of the given dims.
func New(d1, d2, d3 int) *Cube {
	return &Cube{D1: d1, D2: d2, D3: d3, Filled: make([]bool, d1*d2*d3)}
}

func (c *Cube) offset(d1, d2, d3 int) int {
	return d1*c.D2*c.D3 + d2*c.D3 + d3
}

// Get reads the cell at (d1,d2,d3).
func (c *Cube) Get(d1, d2, d3 int) bool {
	if d1 < 0 || d1 >= c.D1 || d2 < 0 || d2 >= c.D2 || d3 < 0 || d3 >= c.D3 {
		return false
	}
	return c.Filled[c.offset(d1, d2, d3)]
}

// Set writes the cell at (d1,d2,d3).
func (c *Cube) Set(d1, d2, d3 int, v bool) {
	c.Filled[c.offset(d1, d2, d3)] = v
}

// FromRawPCube converts a polycube.RawPCube into a Cube.
func FromRawPCube(src *polycube.RawPCube) *Cube {
	d1, d2, d3 := src.Dims()
	c := New(int(d1), int(d2), int(d3))
	for x := 0; x < c.D1; x++ {
		for y := 0; y < c.D2; y++ {
			for z := 0; z < c.D3; z++ {
				c.Set(x, y, z, src.Get(uint8(x), uint8(y), uint8(z)))
			}
		}
	}
	return c
}

// ToRawPCube converts a Cube into a polycube.RawPCube.
func (c *Cube) ToRawPCube() (*polycube.RawPCube, error) {
	if c.D1 == 0 || c.D2 == 0 || c.D3 == 0 {
		return nil, fmt.Errorf("naivecube: zero dimension (%d,%d,%d)", c.D1, c.D2, c.D3)
	}
	dst := polycube.NewEmptyRawPCube(uint8(c.D1), uint8(c.D2), uint8(c.D3))
	for x := 0; x < c.D1; x++ {
		for y := 0; y < c.D2; y++ {
			for z := 0; z < c.D3; z++ {
				if c.Get(x, y, z) {
					dst.Set(uint8(x), uint8(y), uint8(z), true)
				}
			}
		}
	}
	return dst, nil
}

// rotationMatrices lists the 24 proper rotation matrices of the cube, each
// row giving the signed axis (+1/-1 applied to source index 0,1,2) a
// destination axis reads from. Generated as the 24-element orientation-
// preserving subgroup of signed permutation matrices (determinant +1).
var rotationMatrices = buildRotationMatrices()

type signedPerm [3]struct {
	axis int
	sign int
}

func buildRotationMatrices() []signedPerm {
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	var out []signedPerm
	for _, p := range perms {
		for sx := -1; sx <= 1; sx += 2 {
			for sy := -1; sy <= 1; sy += 2 {
				for sz := -1; sz <= 1; sz += 2 {
					det := permParity(p) * sx * sy * sz
					if det != 1 {
						continue
					}
					out = append(out, signedPerm{
						{axis: p[0], sign: sx},
						{axis: p[1], sign: sy},
						{axis: p[2], sign: sz},
					})
				}
			}
		}
	}
	return out
}

func permParity(p [3]int) int {
	parity := 1
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if p[i] > p[j] {
				parity = -parity
			}
		}
	}
	return parity
}

// Rotate applies one of the 24 proper rotations (by index 0..23) to c,
// returning a new, re-bounded Cube.
func (c *Cube) Rotate(index int) *Cube {
	sp := rotationMatrices[index%len(rotationMatrices)]
	dims := [3]int{c.D1, c.D2, c.D3}

	apply := func(src [3]int) [3]int {
		var dst [3]int
		for axis := 0; axis < 3; axis++ {
			v := src[sp[axis].axis]
			if sp[axis].sign < 0 {
				v = dims[sp[axis].axis] - 1 - v
			}
			dst[axis] = v
		}
		return dst
	}

	// New bounding box: each destination axis takes the length of the source
	// axis it reads from.
	nd1, nd2, nd3 := dims[sp[0].axis], dims[sp[1].axis], dims[sp[2].axis]

	out := New(nd1, nd2, nd3)
	for x := 0; x < c.D1; x++ {
		for y := 0; y < c.D2; y++ {
			for z := 0; z < c.D3; z++ {
				if !c.Get(x, y, z) {
					continue
				}
				d := apply([3]int{x, y, z})
				out.Set(abs(d[0]), abs(d[1]), abs(d[2]), true)
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// AllRotations returns all 24 proper rotations of c.
func (c *Cube) AllRotations() []*Cube {
	out := make([]*Cube, len(rotationMatrices))
	for i := range rotationMatrices {
		out[i] = c.Rotate(i)
	}
	return out
}

// less compares two cubes by (dims, then filled cells), using the same order
// as internal/polycube.Canonical so the two can be cross-checked directly in
// tests: larger dims sort first (giving D1>=D2>=D3, the shape-normalised
// orientation), then cells are visited in packed-coordinate order (D3
// outermost, D1 innermost) and the cube occupying the first differing cell
// is the smaller, as a sorted point list holding that cell would be.
func less(a, b *Cube) bool {
	if a.D1 != b.D1 {
		return a.D1 > b.D1
	}
	if a.D2 != b.D2 {
		return a.D2 > b.D2
	}
	if a.D3 != b.D3 {
		return a.D3 > b.D3
	}
	for d3 := 0; d3 < a.D3; d3++ {
		for d2 := 0; d2 < a.D2; d2++ {
			for d1 := 0; d1 < a.D1; d1++ {
				if av, bv := a.Get(d1, d2, d3), b.Get(d1, d2, d3); av != bv {
					return av
				}
			}
		}
	}
	return false
}

// CanonicalForm brute-forces all 24 rotations and returns the smallest
// under less, by direct enumeration — the reference
// implementation property tests check internal/polycube.Canonical against.
func (c *Cube) CanonicalForm() *Cube {
	best := c
	for _, r := range c.AllRotations() {
		if less(r, best) {
			best = r
		}
	}
	return best
}

// Equal reports whether two cubes have identical dims and occupancy.
func (c *Cube) Equal(o *Cube) bool {
	if c.D1 != o.D1 || c.D2 != o.D2 || c.D3 != o.D3 {
		return false
	}
	for i := range c.Filled {
		if c.Filled[i] != o.Filled[i] {
			return false
		}
	}
	return true
}
