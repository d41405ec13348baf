package sweep

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestLeftOf(t *testing.T) {
	var tts = []struct {
		a, b Segment[int]
		cmp  int
	}{
		{Seg(0, 0, 2, 1), Seg(0, 1, 2, 3), -1}, // disjoint y-extents
		{Seg(0, 0, 4, 0), Seg(0, 2, 4, 2), -1},
		{Seg(0, 0, 4, 4), Seg(0, 4, 4, 0), 0},
		{Seg(0, 0, 4, 0), Seg(1, -1, 3, 1), 0},
		{Seg(0, 0, 2, 2), Seg(0, 0, 2, -2), 1}, // shared tail
		{Seg(0, 3, 6, 3), Seg(2, 0, 3, 4), 0},
		{Seg(0, 0, 10, 1), Seg(2, 5, 3, -5), 0},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, compare(LeftOf[int], tt.a, tt.b), tt.cmp)
			test.T(t, compare(LeftOf[int], tt.b, tt.a), -tt.cmp)
			test.T(t, compare(LeftOfArea[int], tt.a, tt.b), tt.cmp)
			test.T(t, compare(LeftOfArea[int], tt.b, tt.a), -tt.cmp)
		})
	}
}

func TestLeftOfIntransitive(t *testing.T) {
	// a < b < c < a while no reverse holds
	var tts = []struct {
		less    Less[int]
		a, b, c Segment[int]
	}{
		{LeftOf[int], Seg(0, 0, 3, 4), Seg(0, 3, 2, 3), Seg(3, 3, 4, 5)},
		{LeftOfArea[int], Seg(2, 2, 4, 5), Seg(4, 6, 6, 0), Seg(6, 2, 6, 6)},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.That(t, tt.less(tt.a, tt.b))
			test.That(t, tt.less(tt.b, tt.c))
			test.That(t, tt.less(tt.c, tt.a))
			test.That(t, !tt.less(tt.b, tt.a))
			test.That(t, !tt.less(tt.c, tt.b))
			test.That(t, !tt.less(tt.a, tt.c))
		})
	}
}

func TestLeftOfFloat(t *testing.T) {
	a, b := Seg(0.0, 0.0, 1.0, 0.5), Seg(0.0, 0.5, 1.0, 1.5)
	test.That(t, LeftOf(a, b))
	test.That(t, !LeftOf(b, a))
	test.That(t, LeftOfArea(a, b))
	test.That(t, !LeftOfArea(b, a))
}
