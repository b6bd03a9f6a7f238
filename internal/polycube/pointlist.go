package polycube

import "fmt"

// PointList is a fixed-capacity, Copy-by-value polycube: the first Count
// entries of Cubes are sorted ascending packed coordinates, all distinct,
// face-connected, translated so min-x=min-y=min-z=0, with bounding-box
// dims satisfying X>=Y>=Z. Trailing entries beyond Count are never read.
type PointList struct {
	Cubes [MaxCapacity]Coord
	Count int
}

// Equal reports whether two PointLists hold the same coordinates in the
// same order over their respective counts.
func (p PointList) Equal(o PointList) bool {
	if p.Count != o.Count {
		return false
	}
	for i := 0; i < p.Count; i++ {
		if p.Cubes[i] != o.Cubes[i] {
			return false
		}
	}
	return true
}

// Less reports lexicographic order over the first Count coordinates,
// shorter-but-equal-prefix sorting first.
func (p PointList) Less(o PointList) bool {
	n := p.Count
	if o.Count < n {
		n = o.Count
	}
	for i := 0; i < n; i++ {
		if p.Cubes[i] != o.Cubes[i] {
			return p.Cubes[i] < o.Cubes[i]
		}
	}
	return p.Count < o.Count
}

// ExtrapolateCount scans for the non-monotonic transition marking the end
// of the sorted prefix, relying on the invariant that unused entries never
// exceed the last real entry in a well-formed array loaded externally (e.g.
// from a cache whose count was not carried alongside the raw array).
func (p PointList) ExtrapolateCount() int {
	count := 1
	for count < MaxCapacity && p.Cubes[count] > p.Cubes[count-1] {
		count++
	}
	return count
}

// ExtrapolateDim folds max over the three axis fields across the first
// count entries.
func (p PointList) ExtrapolateDim(count int) Dim {
	var d Dim
	for i := 0; i < count; i++ {
		c := p.Cubes[i]
		if v := int(unpackX(c)); v > d.X {
			d.X = v
		}
		if v := int(unpackY(c)); v > d.Y {
			d.Y = v
		}
		if v := int(unpackZ(c)); v > d.Z {
			d.Z = v
		}
	}
	return d
}

// arrayInsert linearly scans backwards from the end of arr, shifting larger
// entries right by one, and drops val into its sorted slot. The caller
// passes a slice ending one past the intended insertion range so the slot
// being "pulled forward into" is included.
func arrayInsert(val Coord, arr []Coord) {
	for i := 1; i < len(arr); i++ {
		if arr[len(arr)-1-i] > val {
			arr[len(arr)-i] = arr[len(arr)-1-i]
		} else {
			arr[len(arr)-i] = val
			return
		}
	}
	arr[0] = val
}

// arrayShift moves the contents of arr right by one slot; arr[0] is left
// untouched (the caller overwrites it next).
func arrayShift(arr []Coord) {
	for i := 1; i < len(arr); i++ {
		arr[len(arr)-i] = arr[len(arr)-1-i]
	}
}

// FromRawPCube converts a dense occupancy grid into a PointList, applying
// whichever of the six axis permutations brings the grid's dims into
// X>=Y>=Z order. The result is shape-normalised but not necessarily the
// exact canonical rotation — callers that need canonical form call
// Canonical afterwards.
func FromRawPCube(src *RawPCube) (PointList, Dim, error) {
	x, y, z := int(src.D1), int(src.D2), int(src.D3)
	if x == 0 || y == 0 || z == 0 {
		return PointList{}, Dim{}, fmt.Errorf("polycube: zero dimension in raw cube (%d,%d,%d)", x, y, z)
	}

	dim := Dim{X: x - 1, Y: y - 1, Z: z - 1}
	xCol, yCol, zCol, rdim := axisPermutationFor(dim.X, dim.Y, dim.Z)
	if rdim.X > axisMask {
		return PointList{}, Dim{}, fmt.Errorf("polycube: dimension %d exceeds 31 after axis sort", rdim.X)
	}

	var dst PointList
	idx := 0
	for dz := uint16(0); dz < uint16(z); dz++ {
		for dy := uint16(0); dy < uint16(y); dy++ {
			for dx := uint16(0); dx < uint16(x); dx++ {
				if !src.Get(uint8(dx), uint8(dy), uint8(dz)) {
					continue
				}
				cx := mapCoord(dx, dy, dz, dim, xCol)
				cy := mapCoord(dx, dy, dz, dim, yCol)
				cz := mapCoord(dx, dy, dz, dim, zCol)
				if int(cx) > rdim.X || int(cy) > rdim.Y || int(cz) > rdim.Z {
					return PointList{}, Dim{}, fmt.Errorf("polycube: illegal block placement (%d,%d,%d) for dim %v", cx, cy, cz, dim)
				}
				if idx >= MaxCapacity {
					return PointList{}, Dim{}, fmt.Errorf("polycube: cube count exceeds capacity %d", MaxCapacity)
				}
				dst.Cubes[idx] = pack(cx, cy, cz)
				idx++
			}
		}
	}
	sortCoords(dst.Cubes[:idx])
	dst.Count = idx
	return dst, rdim, nil
}

// ToRawPCube reverses FromRawPCube, using p.Count directly (unlike the
// array-only interchange form ExtrapolateCount/ExtrapolateDim are for).
func (p PointList) ToRawPCube() *RawPCube {
	dim := p.ExtrapolateDim(p.Count)

	dst := NewEmptyRawPCube(uint8(dim.X+1), uint8(dim.Y+1), uint8(dim.Z+1))
	for i := 0; i < p.Count; i++ {
		c := p.Cubes[i]
		dst.Set(uint8(unpackX(c)), uint8(unpackY(c)), uint8(unpackZ(c)), true)
	}
	return dst
}

// ToRawPCubeFromArray reconstructs a RawPCube from a bare count-less array
// (e.g. one just read off the wire from an implementation that doesn't
// carry a count alongside it), via ExtrapolateCount/ExtrapolateDim.
func ToRawPCubeFromArray(p PointList) *RawPCube {
	p.Count = p.ExtrapolateCount()
	return p.ToRawPCube()
}
