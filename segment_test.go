package sweep

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestSegment(t *testing.T) {
	s := Seg(4, 4, 0, 0)
	test.T(t, s.Tail, Pt(0, 0))
	test.T(t, s.Head, Pt(4, 4))
	test.T(t, Seg(1, 5, 1, 2).Tail, Pt(1, 2))
	test.T(t, NewSegment(Pt(3, 0), Pt(-1, 2)), Segment[int]{Pt(-1, 2), Pt(3, 0)})

	s = Seg(0, 4, 4, 0)
	test.T(t, s.Bounds(), Rect[int]{0, 0, 4, 4})
	test.T(t, s.MinY(), 0)
	test.T(t, s.MaxY(), 4)
	test.T(t, s.IsDegenerate(), false)
	test.T(t, Seg(1, 1, 1, 1).IsDegenerate(), true)
	test.String(t, s.String(), "[(0, 4), (4, 0)]")
}

func TestSegmentIntersects(t *testing.T) {
	var tts = []struct {
		a, b                Segment[int]
		intersects, crosses bool
	}{
		{Seg(0, 0, 4, 4), Seg(0, 4, 4, 0), true, true},
		{Seg(0, 0, 4, 0), Seg(2, 0, 2, 3), true, false},        // T junction
		{Seg(0, 0, 2, 2), Seg(0, 0, 2, -2), true, false},       // shared endpoint
		{Seg(0, 0, 4, 0), Seg(2, 0, 6, 0), true, false},        // collinear overlap
		{Seg(0, 0, 1, 0), Seg(2, 0, 3, 0), false, false},       // collinear apart
		{Seg(0, 0, 4, 0), Seg(0, 1, 4, 1), false, false},       // parallel
		{Seg(0, 0, 4, 4), Seg(3, 0, 5, 1), false, false},       // overlapping bounds
		{Seg(1, 1, 1, 1), Seg(0, 0, 2, 2), true, false},        // point on segment
		{Seg(-14, 6, -10, 3), Seg(-9, 5, -1, 3), false, false}, // disjoint bounds
		{Seg(-6, 6, -5, 3), Seg(-8, 3, -5, 4), true, true},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, tt.a.Intersects(tt.b), tt.intersects)
			test.T(t, tt.b.Intersects(tt.a), tt.intersects)
			test.T(t, tt.a.Crosses(tt.b), tt.crosses)
			test.T(t, tt.b.Crosses(tt.a), tt.crosses)
		})
	}
}

func TestSegmentIntersection(t *testing.T) {
	var tts = []struct {
		a, b Segment[int]
		p    Point[float64]
		ok   bool
	}{
		{Seg(0, 0, 4, 4), Seg(0, 4, 4, 0), Pt(2.0, 2.0), true},
		{Seg(0, 0, 4, 0), Seg(2, 0, 2, 3), Pt(2.0, 0.0), true},
		{Seg(0, 0, 2, 2), Seg(0, 0, 2, -2), Pt(0.0, 0.0), true},
		{Seg(0, 0, 4, 0), Seg(2, 0, 6, 0), Pt(2.0, 0.0), true},
		{Seg(0, 0, 4, 0), Seg(0, 1, 4, 1), Pt(0.0, 0.0), false},
		{Seg(-14, 6, -10, 3), Seg(-9, 5, -1, 3), Pt(0.0, 0.0), false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p, ok := tt.a.Intersection(tt.b)
			test.T(t, ok, tt.ok)
			test.Float(t, p.X, tt.p.X)
			test.Float(t, p.Y, tt.p.Y)
		})
	}
}

func TestSegments(t *testing.T) {
	test.T(t, len(Segments(Pt(0, 0))), 0)
	test.T(t, Segments(Pt(0, 0), Pt(1, 1), Pt(0, 1)), []Segment[int]{Seg(0, 0, 1, 1), Seg(0, 1, 1, 1)})
}
