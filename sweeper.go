package sweep

import (
	"context"
	"log/slog"
)

// CollisionPolicy decides what remains in the active set after two segments collide.
type CollisionPolicy int

const (
	// Retain keeps the segment that reaches furthest along the sweep. When that is the new segment, the found one is removed and the new segment is probed again, so that it can collide with more than one active segment before it is inserted.
	Retain CollisionPolicy = iota
	// Classic removes the found segment and does not insert the new one, so neither stays active. A segment that crosses more than one other segment at the same sweep position can have its later crossings go unreported.
	Classic
)

func (p CollisionPolicy) String() string {
	switch p {
	case Retain:
		return "retain"
	case Classic:
		return "classic"
	}
	return "unknown"
}

// Options configures a Sweeper.
type Options struct {
	Policy    CollisionPolicy
	EndsFirst bool // at equal keys, process end events before start events; a segment whose keys are equal is then probed but not inserted
}

// DefaultOptions are used when nil options are passed to NewSweeper.
var DefaultOptions = Options{
	Policy:    Retain,
	EndsFirst: false,
}

// KeyFunc returns the sweep key of a segment.
type KeyFunc[T Number] func(Segment[T]) T

// TailX returns the x-coordinate of the tail, the default start key.
func TailX[T Number](s Segment[T]) T {
	return s.Tail.X
}

// HeadX returns the x-coordinate of the head, the default end key.
func HeadX[T Number](s Segment[T]) T {
	return s.Head.X
}

type share[T Number] struct {
	seg        Segment[T]
	start, end T
}

// Sweeper finds intersecting segments by sweeping over them in order of their keys. Segments enter the active set at their start key and leave it at their end key. A segment that collides with an active segment, ie. neither is less than the other, forms an intersecting pair.
//
// The start key of a segment must not be greater than its end key, otherwise the segment is never removed from the active set.
type Sweeper[T Number] struct {
	shares []share[T]
	less   Less[T]
	opts   Options
}

// NewSweeper returns a sweeper over segs ordered by less in the active set. Start and end return the keys at which a segment enters and leaves the active set, and default to TailX and HeadX when nil. Segments are referred to by their index in segs.
func NewSweeper[T Number](segs []Segment[T], less Less[T], start, end KeyFunc[T], opts *Options) *Sweeper[T] {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	if start == nil {
		start = TailX[T]
	}
	if end == nil {
		end = HeadX[T]
	}

	shares := make([]share[T], len(segs))
	for i, s := range segs {
		shares[i] = share[T]{s, start(s), end(s)}
	}
	return &Sweeper[T]{
		shares: shares,
		less:   less,
		opts:   *opts,
	}
}

// Len returns the number of segments.
func (s *Sweeper[T]) Len() int {
	return len(s.shares)
}

// Segment returns the segment with handle h.
func (s *Sweeper[T]) Segment(h int) Segment[T] {
	return s.shares[h].seg
}

func (s *Sweeper[T]) events() *Events[T] {
	q := NewEvents[T](2*len(s.shares), s.opts.EndsFirst)
	for h, sh := range s.shares {
		q.Add(Event[T]{sh.start, StartEvent, h})
		q.Add(Event[T]{sh.end, EndEvent, h})
	}
	q.Init()
	return q
}

// Scan runs the sweep and returns the colliding pairs in order of discovery, each as (active segment, new segment). Every call starts from scratch.
func (s *Sweeper[T]) Scan() Pairs {
	ps, _ := s.ScanContext(context.Background())
	return ps
}

// ScanContext is like Scan but stops between events when ctx is done, returning the pairs found so far and the context's error.
func (s *Sweeper[T]) ScanContext(ctx context.Context) (Pairs, error) {
	log := Logger()
	log.Debug("sweep start", "segments", len(s.shares), "policy", s.opts.Policy, "endsFirst", s.opts.EndsFirst)

	queue := s.events()
	status := NewStatus(len(s.shares), func(a, b int) int {
		return compare(s.less, s.shares[a].seg, s.shares[b].seg)
	})

	var ps Pairs
	ended := make([]bool, len(s.shares))
	for 0 < queue.Len() {
		if err := ctx.Err(); err != nil {
			log.Debug("sweep canceled", "pairs", len(ps), "err", err)
			return ps, err
		}

		e := queue.Pop()
		if e.Kind == EndEvent {
			// segments that collided may already be gone
			ended[e.Handle] = true
			status.Remove(e.Handle)
			continue
		}

		// with EndsFirst, a segment with equal keys ends before it starts: probe but never insert
		insert := !ended[e.Handle]
		for {
			h := status.Find(e.Handle)
			if h == -1 {
				break
			}
			ps = append(ps, Pair{h, e.Handle})
			if log.Enabled(ctx, slog.LevelDebug) {
				log.Debug("sweep collision", "key", e.Key, "active", s.shares[h].seg, "new", s.shares[e.Handle].seg)
			}

			if s.opts.Policy == Classic {
				status.Remove(h)
				insert = false
				break
			} else if s.shares[h].end < s.shares[e.Handle].end {
				status.Remove(h)
			} else {
				insert = false
				break
			}
		}
		if insert {
			status.Insert(e.Handle)
		}
	}

	log.Debug("sweep done", "pairs", len(ps))
	return ps, nil
}

// Intersect inserts the segments one at a time in input order into a set ordered by less. A segment that collides with one already in the set is reported as the pair (new segment, found segment) and the found segment is removed, otherwise it is inserted. No events are used, the input order stands in for the sweep order, so the result is only meaningful for input that is already sorted consistently with less.
func Intersect[T Number](segs []Segment[T], less Less[T]) Pairs {
	status := NewStatus(len(segs), func(a, b int) int {
		return compare(less, segs[a], segs[b])
	})

	var ps Pairs
	for i := range segs {
		if j := status.Find(i); j != -1 {
			ps = append(ps, Pair{i, j})
			status.Remove(j)
		} else {
			status.Insert(i)
		}
	}
	return ps
}
