package sweep

// Less reports whether segment a should be ordered strictly before segment b in the active set.
//
// A Less is not required to be a strict weak ordering, and neither LeftOf nor LeftOfArea is one for arbitrary segments. Their order is only consistent among segments that span the sweep line over a common y-extent and do not cross each other at the query point. Two segments for which neither is less than the other collide, and the sweep reports them as an intersecting pair.
type Less[T Number] func(a, b Segment[T]) bool

// LeftOf orders a before b when a lies below or to the left of b. Segments whose y-extents do not overlap are accepted by their bounding boxes alone; otherwise both the tail and the head of a must lie on the correct side of b, with ties in x broken by comparing y.
func LeftOf[T Number](a, b Segment[T]) bool {
	t1, h1 := a.Tail, a.Head
	t2, h2 := b.Tail, b.Head
	if max(t1.Y, h1.Y) <= min(t2.Y, h2.Y) {
		return true
	}

	if t1.X < t2.X {
		if 0 <= SignedArea(t2, h1, t1) {
			return false
		}
	} else if t2.X < t1.X {
		if SignedArea(t1, h2, t2) <= 0 {
			return false
		}
	} else if t2.Y < t1.Y {
		return false
	}

	if h1.X < h2.X {
		if SignedArea(h1, h2, t2) <= 0 {
			return false
		}
	} else if h2.X < h1.X {
		if 0 <= SignedArea(h2, h1, t1) {
			return false
		}
	} else if h2.Y < h1.Y {
		return false
	}
	return true
}

// LeftOfArea is the symmetric formulation of LeftOf using signed areas only: a is before b when both endpoints of b lie to the same side of a, or both endpoints of a lie to the same side of b. It shares the bounding box fast path of LeftOf.
func LeftOfArea[T Number](a, b Segment[T]) bool {
	t1, h1 := a.Tail, a.Head
	t2, h2 := b.Tail, b.Head
	if max(t1.Y, h1.Y) <= min(t2.Y, h2.Y) {
		return true
	}
	return SignedArea(h1, t2, h2) < 0 && SignedArea(t1, t2, h2) < 0 ||
		0 < SignedArea(t1, h1, h2) && 0 < SignedArea(t1, h1, t2)
}

// compare returns -1 if a is less than b, 1 if b is less than a and 0 if they collide.
func compare[T Number](less Less[T], a, b Segment[T]) int {
	if less(a, b) {
		return -1
	} else if less(b, a) {
		return 1
	}
	return 0
}
