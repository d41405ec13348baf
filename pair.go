package sweep

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Pair is a pair of segment handles (indices into the input) reported as intersecting.
type Pair struct {
	A, B int
}

// Normalize returns the pair with A < B.
func (p Pair) Normalize() Pair {
	if p.B < p.A {
		p.A, p.B = p.B, p.A
	}
	return p
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.A, p.B)
}

// Pairs is a list of intersecting pairs in discovery order.
type Pairs []Pair

// Normalize returns a sorted copy with every pair normalized.
func (ps Pairs) Normalize() Pairs {
	if ps == nil {
		return nil
	}
	qs := make(Pairs, len(ps))
	for i, p := range ps {
		qs[i] = p.Normalize()
	}
	qs.Sort()
	return qs
}

// Sort sorts the pairs by A and then by B, in place.
func (ps Pairs) Sort() {
	slices.SortFunc(ps, func(a, b Pair) int {
		if a.A != b.A {
			return a.A - b.A
		}
		return a.B - b.B
	})
}

// Contains returns true if the unordered pair {a,b} is in the list.
func (ps Pairs) Contains(a, b int) bool {
	for _, p := range ps {
		if p.A == a && p.B == b || p.A == b && p.B == a {
			return true
		}
	}
	return false
}

func (ps Pairs) String() string {
	sb := strings.Builder{}
	sb.WriteByte('[')
	for i, p := range ps {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Fprint writes the pairs as human-readable text, one "<segment> and <segment>" line per pair, or "No intersect" when there are none.
func Fprint[T Number](w io.Writer, ps Pairs, segs []Segment[T]) error {
	if len(ps) == 0 {
		_, err := fmt.Fprintln(w, "No intersect")
		return err
	}
	for _, p := range ps {
		if _, err := fmt.Fprintf(w, "%v and %v\n", segs[p.A], segs[p.B]); err != nil {
			return err
		}
	}
	return nil
}
