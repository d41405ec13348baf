package sweep

import (
	"golang.org/x/image/math/fixed"
)

// FixedSegments returns the segments between consecutive points of an outline in 26.6 fixed point coordinates, such as a glyph contour. A closed outline gets a segment back to its first point unless that point is repeated at the end.
func FixedSegments(ps []fixed.Point26_6, closed bool) []Segment[fixed.Int26_6] {
	pts := make([]Point[fixed.Int26_6], len(ps), len(ps)+1)
	for i, p := range ps {
		pts[i] = Point[fixed.Int26_6]{p.X, p.Y}
	}
	if closed && 2 < len(pts) && !pts[0].Equals(pts[len(pts)-1]) {
		pts = append(pts, pts[0])
	}
	return Segments(pts...)
}

// FixedIntersection returns the intersection point of two fixed point segments, rounded to 26.6 precision.
func FixedIntersection(a, b Segment[fixed.Int26_6]) (fixed.Point26_6, bool) {
	p, ok := a.Intersection(b)
	if !ok {
		return fixed.Point26_6{}, false
	}
	return fixed.Point26_6{X: toI26_6(p.X), Y: toI26_6(p.Y)}, true
}

func toI26_6(f float64) fixed.Int26_6 {
	if f < 0.0 {
		return fixed.Int26_6(f - 0.5)
	}
	return fixed.Int26_6(f + 0.5)
}
