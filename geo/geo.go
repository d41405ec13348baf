// Package geo finds intersecting edges in orb geometries.
package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"github.com/tdewolff/sweep"
	"github.com/wroge/wgs84/v2"
)

// Edge identifies a segment of a geometry: the index of its line string or ring in walk order, and the index of the segment along it.
type Edge struct {
	Line, Index int
}

// Crossing is an intersection between two edges.
type Crossing struct {
	A, B  Edge
	Point orb.Point
}

type edges struct {
	segs   []sweep.Segment[float64]
	edges  []Edge
	closed []bool // by line
	n      []int  // edges per line
}

func (e *edges) addLine(ps []orb.Point, closed bool) {
	line := len(e.n)
	index := 0
	for i := 1; i < len(ps); i++ {
		if ps[i-1].Equal(ps[i]) {
			continue
		}
		e.segs = append(e.segs, sweep.Seg(ps[i-1][0], ps[i-1][1], ps[i][0], ps[i][1]))
		e.edges = append(e.edges, Edge{line, index})
		index++
	}
	if closed && 2 < len(ps) && !ps[0].Equal(ps[len(ps)-1]) {
		last := ps[len(ps)-1]
		e.segs = append(e.segs, sweep.Seg(last[0], last[1], ps[0][0], ps[0][1]))
		e.edges = append(e.edges, Edge{line, index})
		index++
	}
	e.closed = append(e.closed, closed)
	e.n = append(e.n, index)
}

func (e *edges) add(g orb.Geometry) {
	switch g := g.(type) {
	case orb.LineString:
		e.addLine(g, false)
	case orb.MultiLineString:
		for _, ls := range g {
			e.addLine(ls, false)
		}
	case orb.Ring:
		e.addLine(g, true)
	case orb.Polygon:
		for _, r := range g {
			e.addLine(r, true)
		}
	case orb.MultiPolygon:
		for _, p := range g {
			for _, r := range p {
				e.addLine(r, true)
			}
		}
	case orb.Bound:
		e.addLine(g.ToRing(), true)
	case orb.Collection:
		for _, c := range g {
			e.add(c)
		}
	}
}

// adjacent returns true if edges a and b follow each other along the same line.
func (e *edges) adjacent(a, b Edge) bool {
	if a.Line != b.Line {
		return false
	} else if a.Index+1 == b.Index || b.Index+1 == a.Index {
		return true
	}
	n := e.n[a.Line]
	return e.closed[a.Line] && 2 < n && (a.Index == 0 && b.Index == n-1 || b.Index == 0 && a.Index == n-1)
}

// Edges returns the segments of all line strings and rings in g, and for each segment the edge it came from. Points are ignored, rings are closed and repeated points are skipped.
func Edges(g orb.Geometry) ([]sweep.Segment[float64], []Edge) {
	e := &edges{}
	e.add(g)
	return e.segs, e.edges
}

func (e *edges) crossing(p sweep.Pair) Crossing {
	z, _ := e.segs[p.A].Intersection(e.segs[p.B])
	return Crossing{e.edges[p.A], e.edges[p.B], orb.Point{z.X, z.Y}}
}

// foldsBack returns true if adjacent segments a and b overlap beyond their shared vertex.
func foldsBack(a, b sweep.Segment[float64]) bool {
	var shared, p, q sweep.Point[float64]
	switch {
	case a.Tail.Equals(b.Tail):
		shared, p, q = a.Tail, a.Head, b.Head
	case a.Tail.Equals(b.Head):
		shared, p, q = a.Tail, a.Head, b.Tail
	case a.Head.Equals(b.Tail):
		shared, p, q = a.Head, a.Tail, b.Head
	case a.Head.Equals(b.Head):
		shared, p, q = a.Head, a.Tail, b.Tail
	default:
		return true
	}
	if sweep.Orientation(p, q, shared) != 0 {
		return false
	}
	u, v := p.Sub(shared), q.Sub(shared)
	return 0.0 < u.X*v.X+u.Y*v.Y
}

// SelfIntersections returns the crossings between edges of g, which includes crossings between different lines. Adjacent edges that only share their common vertex are not reported.
func SelfIntersections(g orb.Geometry) []Crossing {
	e := &edges{}
	e.add(g)

	var zs []Crossing
	for _, p := range sweep.Intersections(e.segs) {
		if e.adjacent(e.edges[p.A], e.edges[p.B]) && !foldsBack(e.segs[p.A], e.segs[p.B]) {
			continue
		}
		zs = append(zs, e.crossing(p))
	}
	return zs
}

// IsSimple returns true if g has no self intersections.
func IsSimple(g orb.Geometry) bool {
	return len(SelfIntersections(g)) == 0
}

// Crossings returns the crossings between edges of a and edges of b. The A edge of each crossing belongs to a and the B edge to b, their line indices count from the start of each geometry.
func Crossings(a, b orb.Geometry) []Crossing {
	e := &edges{}
	e.add(a)
	na, nl := len(e.segs), len(e.n)
	e.add(b)

	var zs []Crossing
	for _, p := range sweep.Intersections(e.segs) {
		if p.A < na && na <= p.B {
			z := e.crossing(p)
			z.B.Line -= nl
			zs = append(zs, z)
		}
	}
	return zs
}

// Project transforms the coordinates of g between coordinate reference systems given by their EPSG codes, eg. from WGS84 longitude/latitude (4326) to a UTM zone, so that edges are straight in the plane they are tested in. The input is not modified.
func Project(g orb.Geometry, fromEPSG, toEPSG int) orb.Geometry {
	transform := wgs84.Transform(wgs84.EPSG(fromEPSG), wgs84.EPSG(toEPSG))
	return project.Geometry(orb.Clone(g), func(p orb.Point) orb.Point {
		x, y, _ := transform(p[0], p[1], 0.0)
		return orb.Point{x, y}
	})
}
