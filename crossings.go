package sweep

// BruteForce tests all pairs of segments for intersection and returns the pairs (i,j) with i < j that intersect, touching included. It takes O(n^2) time and serves as a reference.
func BruteForce[T Number](segs []Segment[T]) Pairs {
	var ps Pairs
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			if segs[i].Intersects(segs[j]) {
				ps = append(ps, Pair{i, j})
			}
		}
	}
	return ps
}

// Intersections returns all pairs (i,j) with i < j of segments that intersect, touching included, sorted. Segments are swept along x, with the active set ordered by their lowest y-coordinate. A segment entering the sweep is tested exactly against the active segments whose y-extents overlap with its own, so that every intersecting pair is found exactly once.
func Intersections[T Number](segs []Segment[T]) Pairs {
	log := Logger()

	queue := NewEvents[T](2*len(segs), false)
	for h, s := range segs {
		queue.Add(Event[T]{s.Tail.X, StartEvent, h})
		queue.Add(Event[T]{s.Head.X, EndEvent, h})
	}
	queue.Init()

	status := NewStatus(len(segs), func(a, b int) int {
		if ya, yb := segs[a].MinY(), segs[b].MinY(); ya < yb {
			return -1
		} else if yb < ya {
			return 1
		}
		return a - b
	})

	var ps Pairs
	tests := 0
	for 0 < queue.Len() {
		e := queue.Pop()
		if e.Kind == EndEvent {
			status.Remove(e.Handle)
			continue
		}

		s := segs[e.Handle]
		maxY := s.MaxY()
		for h := status.First(); h != -1; h = status.Next(h) {
			t := segs[h]
			if maxY < t.MinY() {
				break // active set is ordered by lowest y
			} else if t.MaxY() < s.MinY() {
				continue
			}
			tests++
			if s.Intersects(t) {
				ps = append(ps, Pair{h, e.Handle}.Normalize())
			}
		}
		status.Insert(e.Handle)
	}
	ps.Sort()

	log.Debug("intersections", "segments", len(segs), "tests", tests, "pairs", len(ps))
	return ps
}
