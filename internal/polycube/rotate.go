package polycube

import "fmt"

// MatrixCol names one column of a proper-rotation matrix: which signed axis
// of the source a rotated coordinate's axis is read from. A negated axis
// reads `dim.axis - coord` so the lattice stays in 0..dim.
type MatrixCol uint8

const (
	ColXP MatrixCol = iota
	ColXN
	ColYP
	ColYN
	ColZP
	ColZN
)

// mapCoord applies one MatrixCol to an unpacked (x,y,z) triple.
func mapCoord(x, y, z uint16, dim Dim, col MatrixCol) uint16 {
	switch col {
	case ColXP:
		return x
	case ColXN:
		return uint16(dim.X) - x
	case ColYP:
		return y
	case ColYN:
		return uint16(dim.Y) - y
	case ColZP:
		return z
	case ColZN:
		return uint16(dim.Z) - z
	default:
		panic(fmt.Sprintf("polycube: unhandled MatrixCol %d", col))
	}
}

// axisPermutationFor picks the six-case axis dispatch that brings a raw
// (d1,d2,d3)-shaped cube into X>=Y>=Z order, returning the MatrixCol to read
// for each of the normalised x/y/z axes and the resulting Dim (extents, not
// lengths — caller passes in lengths-1 or lengths as needed).
func axisPermutationFor(x, y, z int) (xCol, yCol, zCol MatrixCol, rdim Dim) {
	switch {
	case x >= y && y >= z:
		return ColXP, ColYP, ColZP, Dim{x, y, z}
	case x >= z && z >= y:
		return ColXP, ColZP, ColYN, Dim{x, z, y}
	case y >= x && x >= z:
		return ColYP, ColXP, ColZN, Dim{y, x, z}
	case y >= z && z >= x:
		return ColYP, ColZP, ColXP, Dim{y, z, x}
	case z >= x && x >= y:
		return ColZN, ColXP, ColYN, Dim{z, x, y}
	case z >= y && y >= x:
		return ColZP, ColYN, ColXP, Dim{z, y, x}
	default:
		panic(fmt.Sprintf("polycube: impossible dimension ordering (%d,%d,%d)", x, y, z))
	}
}

// rotateOne applies a single proper rotation, given as three MatrixCol
// choices for the resulting x/y/z axes, to the first count coordinates of p
// under the given shape. incumbentFirst is the caller's best first-coordinate
// so far; if this rotation's minimum word exceeds it, rotateOne returns a
// PointList whose first slot holds the sentinel, skipping the sort — the
// hot-path optimisation described in the rotation algebra.
func rotateOne(p PointList, shape Dim, count int, xCol, yCol, zCol MatrixCol, incumbentFirst Coord) PointList {
	var res PointList
	res.Count = count
	// 1024 is worse than any real minimum: shape-normalisation guarantees
	// some cube has original-axis coordinate == shape.<axis for col>, which
	// maps to 0 on whichever column is assigned the new z-axis, so the true
	// min packed word always has its z-field zero and is < 1024.
	minWord := Coord(1 << 10)
	for i := 0; i < count; i++ {
		c := p.Cubes[i]
		ix, iy, iz := unpackX(c), unpackY(c), unpackZ(c)
		dx := mapCoord(ix, iy, iz, shape, xCol)
		dy := mapCoord(ix, iy, iz, shape, yCol)
		dz := mapCoord(ix, iy, iz, shape, zCol)
		v := pack(dx, dy, dz)
		if v < minWord {
			minWord = v
		}
		res.Cubes[i] = v
	}

	if incumbentFirst < minWord {
		res.Cubes[0] = sentinelFirst
		return res
	}

	sortCoords(res.Cubes[:count])
	return res
}

// RotateOne exposes rotateOne to other packages (the hashless engine needs
// it for the equal-axes pre-rotation step that Expand performs internally
// for its own callers).
func RotateOne(p PointList, shape Dim, count int, xCol, yCol, zCol MatrixCol, incumbentFirst Coord) PointList {
	return rotateOne(p, shape, count, xCol, yCol, zCol, incumbentFirst)
}

// sortCoords sorts the first len(s) coordinates ascending as unsigned
// 16-bit integers. Insertion sort: count never exceeds 32, so this beats
// a general sort on allocation and constant factor.
func sortCoords(s []Coord) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}

// less reports whether a is lexicographically less than b over their first
// count coordinates.
func less(a, b PointList, count int) bool {
	for i := 0; i < count; i++ {
		if a.Cubes[i] != b.Cubes[i] {
			return a.Cubes[i] < b.Cubes[i]
		}
	}
	return false
}

func minPointList(a, b PointList, count int) PointList {
	if less(b, a, count) {
		return b
	}
	return a
}

// xyRotations applies the 4 rotations that preserve shape when X==Y.
func xyRotations(p PointList, shape Dim, count int, res *PointList) {
	*res = minPointList(*res, rotateOne(p, shape, count, ColYN, ColXN, ColZN, res.Cubes[0]), count)
	*res = minPointList(*res, rotateOne(p, shape, count, ColYP, ColXP, ColZN, res.Cubes[0]), count)
	*res = minPointList(*res, rotateOne(p, shape, count, ColYP, ColXN, ColZP, res.Cubes[0]), count)
	*res = minPointList(*res, rotateOne(p, shape, count, ColYN, ColXP, ColZP, res.Cubes[0]), count)
}

// yzRotations applies the 4 rotations that preserve shape when Y==Z.
func yzRotations(p PointList, shape Dim, count int, res *PointList) {
	*res = minPointList(*res, rotateOne(p, shape, count, ColXN, ColZP, ColYP, res.Cubes[0]), count)
	*res = minPointList(*res, rotateOne(p, shape, count, ColXN, ColZN, ColYN, res.Cubes[0]), count)
	*res = minPointList(*res, rotateOne(p, shape, count, ColXP, ColZP, ColYN, res.Cubes[0]), count)
	*res = minPointList(*res, rotateOne(p, shape, count, ColXP, ColZN, ColYP, res.Cubes[0]), count)
}

// xyzRotations applies the 12 rotations that preserve shape when X==Y==Z.
func xyzRotations(p PointList, shape Dim, count int, res *PointList) {
	rots := [12][3]MatrixCol{
		{ColZP, ColYP, ColXN},
		{ColZN, ColYN, ColXN},
		{ColZN, ColYP, ColXP},
		{ColZP, ColYN, ColXP},
		{ColZP, ColXN, ColYN},
		{ColYP, ColZP, ColXP},
		{ColYN, ColZN, ColXP},
		{ColZN, ColXP, ColYN},
		{ColYP, ColZN, ColXN},
		{ColYN, ColZP, ColXN},
		{ColZN, ColXN, ColYP},
		{ColZP, ColXP, ColYP},
	}
	for _, r := range rots {
		*res = minPointList(*res, rotateOne(p, shape, count, r[0], r[1], r[2], res.Cubes[0]), count)
	}
}

// Canonical reduces p to the lexicographically minimum of its 24 proper
// rotations. Because p has already been shape-normalised (X>=Y>=Z), only
// the rotations that preserve that shape's symmetry class need to be tried:
// the 3 always-valid 180-degree rotations, plus 4/4/12 extra rotations when
// two or three dims coincide.
func Canonical(p PointList, shape Dim, count int) PointList {
	res := p

	if shape.X == shape.Y && shape.X != 0 {
		xyRotations(p, shape, count, &res)
	}
	if shape.Y == shape.Z && shape.Y != 0 {
		yzRotations(p, shape, count, &res)
	}
	if shape.X == shape.Y && shape.Y == shape.Z && shape.X != 0 {
		xyzRotations(p, shape, count, &res)
	}

	res = minPointList(res, rotateOne(p, shape, count, ColXP, ColYN, ColZN, res.Cubes[0]), count)
	res = minPointList(res, rotateOne(p, shape, count, ColXN, ColYP, ColZN, res.Cubes[0]), count)
	res = minPointList(res, rotateOne(p, shape, count, ColXN, ColYN, ColZP, res.Cubes[0]), count)

	return res
}
