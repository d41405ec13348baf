package sweep

import (
	"fmt"
)

// Segment is a line segment between two points. Tail always comes before Head in (x,y) order, so that a segment can be labeled regardless of the order its endpoints were given in.
type Segment[T Number] struct {
	Tail, Head Point[T]
}

// NewSegment returns a segment between a and b with its endpoints normalized.
func NewSegment[T Number](a, b Point[T]) Segment[T] {
	if b.Less(a) {
		a, b = b, a
	}
	return Segment[T]{a, b}
}

// Seg is a shorthand for NewSegment(Pt(x0, y0), Pt(x1, y1)).
func Seg[T Number](x0, y0, x1, y1 T) Segment[T] {
	return NewSegment(Point[T]{x0, y0}, Point[T]{x1, y1})
}

// IsDegenerate returns true for zero-length segments.
func (s Segment[T]) IsDegenerate() bool {
	return s.Tail.Equals(s.Head)
}

// Bounds returns the bounding box.
func (s Segment[T]) Bounds() Rect[T] {
	r := Rect[T]{s.Tail.X, s.Tail.Y, s.Head.X, s.Head.Y}
	if r.Y1 < r.Y0 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// MinY returns the lowest y-coordinate.
func (s Segment[T]) MinY() T {
	return min(s.Tail.Y, s.Head.Y)
}

// MaxY returns the highest y-coordinate.
func (s Segment[T]) MaxY() T {
	return max(s.Tail.Y, s.Head.Y)
}

// Intersects returns true if s and o share at least one point, which includes touching at endpoints and collinear overlaps. The result is exact.
func (s Segment[T]) Intersects(o Segment[T]) bool {
	if !s.Bounds().Overlaps(o.Bounds()) {
		return false
	}
	o1 := Orientation(s.Tail, s.Head, o.Tail)
	o2 := Orientation(s.Tail, s.Head, o.Head)
	o3 := Orientation(o.Tail, o.Head, s.Tail)
	o4 := Orientation(o.Tail, o.Head, s.Head)
	// collinear segments with overlapping bounds always share a point
	return o1*o2 <= 0 && o3*o4 <= 0
}

// Crosses returns true if s and o intersect transversally in a single point that is interior to both segments.
func (s Segment[T]) Crosses(o Segment[T]) bool {
	if !s.Bounds().Overlaps(o.Bounds()) {
		return false
	}
	o1 := Orientation(s.Tail, s.Head, o.Tail)
	o2 := Orientation(s.Tail, s.Head, o.Head)
	o3 := Orientation(o.Tail, o.Head, s.Tail)
	o4 := Orientation(o.Tail, o.Head, s.Head)
	return o1*o2 < 0 && o3*o4 < 0
}

// Intersection returns the point where s and o intersect. For collinear overlaps it returns the leftmost shared point.
func (s Segment[T]) Intersection(o Segment[T]) (Point[float64], bool) {
	if !s.Intersects(o) {
		return Point[float64]{}, false
	}

	a0, a1 := s.Tail.Float64(), s.Head.Float64()
	b0, b1 := o.Tail.Float64(), o.Head.Float64()
	da, db := a1.Sub(a0), b1.Sub(b0)
	div := da.PerpDot(db)
	if div == 0.0 {
		// parallel, or one of the segments is a point
		if s.Tail.Less(o.Tail) {
			return b0, true
		}
		return a0, true
	}

	// handle common cases with endpoints to avoid numerical issues
	if s.Tail.Equals(o.Tail) || s.Tail.Equals(o.Head) {
		return a0, true
	} else if s.Head.Equals(o.Tail) || s.Head.Equals(o.Head) {
		return a1, true
	}

	ta := db.PerpDot(a0.Sub(b0)) / div
	ta = max(0.0, min(1.0, ta))
	return Point[float64]{a0.X + ta*da.X, a0.Y + ta*da.Y}, true
}

func (s Segment[T]) String() string {
	return fmt.Sprintf("[%v, %v]", s.Tail, s.Head)
}

// Segments returns the segments between consecutive points of a polyline.
func Segments[T Number](ps ...Point[T]) []Segment[T] {
	if len(ps) < 2 {
		return nil
	}
	segs := make([]Segment[T], 0, len(ps)-1)
	for i := 1; i < len(ps); i++ {
		segs = append(segs, NewSegment(ps[i-1], ps[i]))
	}
	return segs
}
