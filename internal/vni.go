package internal

import "slices"

// Ear bookkeeping for one ear clipping call. Every polygon vertex has a VNI.
// Besides the counts stored on the VNIs, two index lists are kept:
//
//   - inner[e] holds the ring vertices currently inside the ear triangle of e.
//     This is authoritative for VNIs[e].InnerCount.
//   - inclusions[v] holds the ears that counted v at some point. When v is
//     clipped, only these ears need their counts fixed, instead of all n. The
//     list may hold stale entries for ears that have since been recomputed;
//     those are skipped because v is no longer in their inner list.
type earIndex struct {
	points     []Point
	VNIs       []VNI
	inner      [][]int
	inclusions [][]int
}

// Build the VNIs for a polygon. Clockwise polygons are walked in reverse, so
// that convexity is always "counterclockwise positive" and every emitted ear is
// counterclockwise.
func newEarIndex(points []Point) *earIndex {
	n := len(points)
	ccw := Polygon{points}.SignedArea() >= 0
	idx := &earIndex{
		points:     points,
		VNIs:       make([]VNI, n),
		inner:      make([][]int, n),
		inclusions: make([][]int, n),
	}
	for i := range idx.VNIs {
		left, right := CircularIndex(i-1, n), CircularIndex(i+1, n)
		if !ccw {
			left, right = right, left
		}
		idx.VNIs[i] = VNI{Left: left, Right: right, Index: i}
	}
	for i := range idx.VNIs {
		idx.refresh(i)
	}
	return idx
}

// BuildVNIs returns the initial ear descriptors for a polygon, or nil if it has
// fewer than three vertices.
func BuildVNIs(points []Point) []VNI {
	if len(points) < 3 {
		return nil
	}
	return newEarIndex(points).VNIs
}

func (idx *earIndex) earTriangle(i int) [3]Point {
	v := &idx.VNIs[i]
	return [3]Point{idx.points[v.Left], idx.points[i], idx.points[v.Right]}
}

func (idx *earIndex) isEar(i int) bool {
	v := &idx.VNIs[i]
	return !v.Retired && v.IsConvex && v.InnerCount == 0
}

// Recompute convexity and the inner vertex list of ear i against the current
// ring.
func (idx *earIndex) refresh(i int) {
	v := &idx.VNIs[i]
	tri := idx.earTriangle(i)
	v.IsConvex = Orientation(tri[0], tri[1], tri[2]) > 0

	idx.inner[i] = idx.inner[i][:0]
	for j := range idx.VNIs {
		if j == i || j == v.Left || j == v.Right || idx.VNIs[j].Retired {
			continue
		}
		if PointInTriangle(tri, idx.points[j]) {
			idx.inner[i] = append(idx.inner[i], j)
			idx.inclusions[j] = append(idx.inclusions[j], i)
		}
	}
	v.InnerCount = len(idx.inner[i])
}

// First valid ear in scan order, retired on the way out. -1 if there is none.
func (idx *earIndex) findEar() int {
	for i := range idx.VNIs {
		if idx.isEar(i) {
			idx.VNIs[i].Retired = true
			return i
		}
	}
	return -1
}

// Remove retired vertex i from the ring.
func (idx *earIndex) clip(i int) {
	v := &idx.VNIs[i]
	left, right := v.Left, v.Right
	idx.VNIs[left].Right = right
	idx.VNIs[right].Left = left

	// The clipped vertex no longer exists to be contained
	for _, e := range idx.inclusions[i] {
		if k := slices.Index(idx.inner[e], i); k >= 0 {
			idx.inner[e] = slices.Delete(idx.inner[e], k, k+1)
			idx.VNIs[e].InnerCount--
		}
	}
	idx.inclusions[i] = nil

	// The ear triangles of both neighbors changed shape
	idx.refresh(left)
	idx.refresh(right)
}
