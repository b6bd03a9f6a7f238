package polycube

// PointListMeta pairs a PointList with the bounding Dim and cube count that
// describe it — the three travel together through expansion since Dim and
// Count cannot be recovered cheaply mid-expansion the way ExtrapolateDim/
// ExtrapolateCount recover them from a finished, sorted PointList.
type PointListMeta struct {
	Points PointList
	Dim    Dim
	Count  int
}

// expandAxis grows meta by one cube along the axis selected by shift (0, 5,
// or 10 for x/y/z), appending both the "grow beyond the far face" and "grow
// before the near face" neighbour of each existing cube whenever that
// neighbour isn't already occupied. Growing before the near face when the
// cube already sits on axis 0 shifts every existing coordinate outward by
// one instead, since coordinates are unsigned and can't go negative.
//
// dimAxis reads/writes the one Dim field this axis controls.
func expandAxis(meta PointListMeta, shift uint, dimAxis func(*Dim) *int, yield func(PointListMeta)) {
	count := meta.Count
	for i := 0; i < count; i++ {
		coord := meta.Points.Cubes[i]
		plus := coord + (1 << shift)
		minus := coord - (1 << shift)

		if !contains(meta.Points.Cubes[i+1:count], plus) {
			newMap := meta.Points
			newShape := meta.Dim
			arrayInsert(plus, newMap.Cubes[i:count+1])
			newMap.Count = count + 1
			if v := int(((coord >> shift) + 1) & axisMask); v > *dimAxis(&newShape) {
				*dimAxis(&newShape) = v
			}
			yield(PointListMeta{Points: newMap, Dim: newShape, Count: count + 1})
		}

		newMap := meta.Points
		newShape := meta.Dim

		var insertCoord Coord
		if (coord>>shift)&axisMask != 0 {
			if contains(meta.Points.Cubes[0:i], minus) {
				continue
			}
			insertCoord = minus
		} else {
			*dimAxis(&newShape)++
			for j := 0; j < count; j++ {
				newMap.Cubes[j] += 1 << shift
			}
			insertCoord = coord
		}

		arrayShift(newMap.Cubes[i : count+1])
		arrayInsert(insertCoord, newMap.Cubes[0:i+1])
		newMap.Count = count + 1
		yield(PointListMeta{Points: newMap, Dim: newShape, Count: count + 1})
	}
}

func contains(s []Coord, v Coord) bool {
	for _, c := range s {
		if c == v {
			return true
		}
	}
	return false
}

func dimX(d *Dim) *int { return &d.X }
func dimY(d *Dim) *int { return &d.Y }
func dimZ(d *Dim) *int { return &d.Z }

// expandX grows along x (shift 0).
func expandX(meta PointListMeta, yield func(PointListMeta)) { expandAxis(meta, shiftX, dimX, yield) }

// expandY grows along y (shift 5).
func expandY(meta PointListMeta, yield func(PointListMeta)) { expandAxis(meta, shiftY, dimY, yield) }

// expandZ grows along z (shift 10).
func expandZ(meta PointListMeta, yield func(PointListMeta)) { expandAxis(meta, shiftZ, dimZ, yield) }

// doExpand runs the three axis expansions, skipping y/z when the
// X>=Y>=Z shape invariant already rules that axis's growth out (growing a
// strictly-smaller axis past a larger one can never appear in a
// shape-normalised result).
func doExpand(meta PointListMeta, yield func(PointListMeta)) {
	expandX(meta, yield)
	if meta.Dim.Y < meta.Dim.X {
		expandY(meta, yield)
	}
	if meta.Dim.Z < meta.Dim.Y {
		expandZ(meta, yield)
	}
}

// Expand enumerates every polycube reachable by adding one face-adjacent
// cube to meta. When two or three dims are equal, growth along the
// now-hidden axis would be missed by doExpand's strict X>dim.Y>dim.Z
// gating alone, so Expand also runs doExpand against up-front rotations
// that swap the equal axes (180 degrees for X==Y and Y==Z, 90 degrees about
// y for X==Z), surfacing the growth directions the
// gating would otherwise skip. Duplicate children across branches are
// expected and are eliminated later by canonicalisation and, in the hash
// engine, by dedup; the hashless engine instead relies on the
// canonical-root test to count each child's orbit exactly once.
func Expand(meta PointListMeta, yield func(PointListMeta)) {
	if meta.Dim.X == meta.Dim.Y && meta.Dim.X > 0 {
		rot := rotateOne(meta.Points, meta.Dim, meta.Count, ColYN, ColXN, ColZN, 1025)
		doExpand(PointListMeta{Points: rot, Dim: meta.Dim, Count: meta.Count}, yield)
	}
	if meta.Dim.Y == meta.Dim.Z && meta.Dim.Y > 0 {
		rot := rotateOne(meta.Points, meta.Dim, meta.Count, ColXN, ColZP, ColYP, 1025)
		doExpand(PointListMeta{Points: rot, Dim: meta.Dim, Count: meta.Count}, yield)
	}
	if meta.Dim.X == meta.Dim.Z && meta.Dim.X > 0 {
		rot := rotateOne(meta.Points, meta.Dim, meta.Count, ColZP, ColYP, ColXN, 1025)
		doExpand(PointListMeta{Points: rot, Dim: meta.Dim, Count: meta.Count}, yield)
	}
	doExpand(meta, yield)
}

// FromRawPCubeMeta is the PointListMeta-producing counterpart of
// FromRawPCube, used by callers (cache loaders, conversion commands) that
// need Dim and Count alongside the point list rather than recomputed via
// ExtrapolateCount/ExtrapolateDim.
func FromRawPCubeMeta(src *RawPCube) (PointListMeta, error) {
	points, dim, err := FromRawPCube(src)
	if err != nil {
		return PointListMeta{}, err
	}
	return PointListMeta{Points: points, Dim: dim, Count: points.Count}, nil
}
