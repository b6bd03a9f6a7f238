package polycube

// isContinuous reports whether the first n coordinates of p form a single
// face-connected component, via flood fill from cubes[0]. Used by the
// hashless engine's canonical-root test after removing one cube: removing
// an interior articulation point can split a polycube into two pieces,
// and only cubes whose removal leaves it whole are valid parents.
func isContinuous(p PointList, n int) bool {
	var toExplore [MaxCapacity]Coord
	toExplore[0] = p.Cubes[0]
	head, tail := 1, 0

	for head > tail {
		c := toExplore[tail]
		tail++

		if unpackX(c) != 0 {
			tryExplore(&toExplore, &head, c-1, p, n)
		}
		if unpackX(c) != axisMask {
			tryExplore(&toExplore, &head, c+1, p, n)
		}
		if unpackY(c) != 0 {
			tryExplore(&toExplore, &head, c-(1<<shiftY), p, n)
		}
		if unpackY(c) != axisMask {
			tryExplore(&toExplore, &head, c+(1<<shiftY), p, n)
		}
		if unpackZ(c) != 0 {
			tryExplore(&toExplore, &head, c-(1<<shiftZ), p, n)
		}
		if unpackZ(c) != axisMask {
			tryExplore(&toExplore, &head, c+(1<<shiftZ), p, n)
		}
	}
	return head == n
}

func tryExplore(toExplore *[MaxCapacity]Coord, head *int, candidate Coord, p PointList, n int) {
	if contains(toExplore[:*head], candidate) {
		return
	}
	if !contains(p.Cubes[:n], candidate) {
		return
	}
	toExplore[*head] = candidate
	*head++
}

// removeCube drops the cube at index point from the first count+1 entries,
// translates the remaining count cubes so their minimum corner sits at the
// origin, and returns the resulting bounding Dim (extents, not lengths). The
// returned PointList keeps the input's order (subtracting the minimum corner
// preserves it) but is not shape-normalised — callers check isContinuous
// and renormalize before comparing it against a seed.
func removeCube(p PointList, point, count int) (PointList, Dim) {
	minCorner := Dim{X: axisMask, Y: axisMask, Z: axisMask}
	maxCorner := Dim{}
	var dst PointList
	idx := 0

	for i := 0; i <= count; i++ {
		if i == point {
			continue
		}
		pos := p.Cubes[i]
		x, y, z := int(unpackX(pos)), int(unpackY(pos)), int(unpackZ(pos))
		if x < minCorner.X {
			minCorner.X = x
		}
		if y < minCorner.Y {
			minCorner.Y = y
		}
		if z < minCorner.Z {
			minCorner.Z = z
		}
		if x > maxCorner.X {
			maxCorner.X = x
		}
		if y > maxCorner.Y {
			maxCorner.Y = y
		}
		if z > maxCorner.Z {
			maxCorner.Z = z
		}
		dst.Cubes[idx] = pos
		idx++
	}

	offset := pack(uint16(minCorner.X), uint16(minCorner.Y), uint16(minCorner.Z))
	for i := 0; i < count; i++ {
		dst.Cubes[i] -= offset
	}
	dst.Count = count
	return dst, Dim{
		X: maxCorner.X - minCorner.X,
		Y: maxCorner.Y - minCorner.Y,
		Z: maxCorner.Z - minCorner.Z,
	}
}

// renormalize applies whichever of the six axis permutations brings dim
// into X>=Y>=Z order, the same correction FromRawPCube applies on load —
// removeCube's output dim is a raw bounding box and may need it after a
// cube is stripped from one end of the shape's longest axis.
func renormalize(p PointList, dim Dim, count int) (PointList, Dim) {
	xCol, yCol, zCol, rdim := axisPermutationFor(dim.X, dim.Y, dim.Z)

	var dst PointList
	for i := 0; i < count; i++ {
		c := p.Cubes[i]
		ix, iy, iz := unpackX(c), unpackY(c), unpackZ(c)
		cx := mapCoord(ix, iy, iz, dim, xCol)
		cy := mapCoord(ix, iy, iz, dim, yCol)
		cz := mapCoord(ix, iy, iz, dim, zCol)
		dst.Cubes[i] = pack(cx, cy, cz)
	}
	dst.Count = count
	return dst, rdim
}

// IsCanonicalRoot reports whether seed (count cubes, already canonicalised)
// is the canonical root of p (a count+1-cube child): every cube's removal
// from p either disconnects the remainder, or its re-canonicalised form is
// not lexicographically less than seed. It does not check that some
// removal yields seed itself; callers pass children expanded from seed.
// The hashless engine uses this to recognise, without ever
// storing a visited set, that it is the one recursive call responsible
// for counting a given (N+1)-cube: each distinct polycube has exactly one
// canonical root among its N+1 possible parents (one per removable cube),
// so summing "does this seed count this child" across all seeds and all
// children, gated by this test, counts every child exactly once.
func IsCanonicalRoot(p PointList, count int, seed PointList) bool {
	for subCube := 0; subCube <= count; subCube++ {
		candidate, dim := removeCube(p, subCube, count)
		if !isContinuous(candidate, count) {
			continue
		}
		if dim.X < dim.Y || dim.Y < dim.Z || dim.X < dim.Z {
			candidate, dim = renormalize(candidate, dim, count)
			sortCoords(candidate.Cubes[:count])
		}
		candidate.Count = count
		mrp := Canonical(candidate, dim, count)
		if mrp.Less(seed) {
			return false
		}
	}
	return true
}
