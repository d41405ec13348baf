package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/sweep"
	"github.com/tdewolff/test"
)

var square = orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
var bowtie = orb.Ring{{0, 0}, {2, 2}, {2, 0}, {0, 2}, {0, 0}}

func TestEdges(t *testing.T) {
	segs, edges := Edges(square)
	test.T(t, len(segs), 4)
	test.T(t, edges, []Edge{{0, 0}, {0, 1}, {0, 2}, {0, 3}})
	test.T(t, segs[3], sweep.Seg(0.0, 0.0, 0.0, 1.0))

	// open ring is closed, repeated points are skipped
	segs, edges = Edges(orb.Collection{orb.Point{5, 5}, orb.Ring{{0, 0}, {1, 0}, {1, 0}, {1, 1}}, orb.LineString{{3, 3}, {4, 4}}})
	test.T(t, len(segs), 4)
	test.T(t, edges, []Edge{{0, 0}, {0, 1}, {0, 2}, {1, 0}})
	test.T(t, segs[2], sweep.Seg(0.0, 0.0, 1.0, 1.0))

	segs, edges = Edges(orb.Point{1, 1})
	test.T(t, len(segs), 0)
	test.T(t, len(edges), 0)
}

func TestSelfIntersections(t *testing.T) {
	test.That(t, IsSimple(square))
	test.That(t, IsSimple(orb.LineString{{0, 0}, {1, 0}, {1, 1}}))
	test.That(t, !IsSimple(bowtie))

	zs := SelfIntersections(bowtie)
	test.T(t, len(zs), 1)
	test.T(t, zs[0].A, Edge{0, 0})
	test.T(t, zs[0].B, Edge{0, 2})
	test.Float(t, zs[0].Point[0], 1.0)
	test.Float(t, zs[0].Point[1], 1.0)

	// folding back onto itself
	zs = SelfIntersections(orb.LineString{{0, 0}, {2, 0}, {1, 0}})
	test.T(t, len(zs), 1)
	test.T(t, zs[0].Point, orb.Point{1, 0})

	// holes touching the exterior
	poly := orb.Polygon{square[0], {{0, 0}, {0.5, 0.25}, {0.5, 0.5}, {0, 0}}}
	test.That(t, !IsSimple(poly))
}

func TestCrossings(t *testing.T) {
	a := orb.LineString{{0, 0}, {2, 2}}
	b := orb.MultiLineString{{{5, 5}, {6, 6}}, {{0, 2}, {2, 0}}, {{0, 1}, {5, 1}}}
	zs := Crossings(a, b)
	test.T(t, len(zs), 2)
	test.T(t, zs[0].A, Edge{0, 0})
	test.T(t, zs[0].B, Edge{1, 0})
	test.T(t, zs[0].Point, orb.Point{1, 1})
	test.T(t, zs[1].B, Edge{2, 0})
	test.T(t, zs[1].Point, orb.Point{1, 1})

	test.T(t, len(Crossings(a, orb.LineString{{3, 0}, {3, 3}})), 0)
}

func TestProject(t *testing.T) {
	ls := orb.LineString{{15, 0}, {15, 10}}
	utm := Project(ls, 4326, 32633).(orb.LineString)
	test.T(t, ls[0], orb.Point{15, 0}, "input unchanged")
	test.That(t, math.Abs(utm[0][0]-500000.0) < 0.01, utm[0])
	test.That(t, math.Abs(utm[0][1]) < 0.01, utm[0])
	test.That(t, math.Abs(utm[1][0]-500000.0) < 0.01, utm[1])
	test.That(t, 1100000.0 < utm[1][1] && utm[1][1] < 1110000.0, utm[1])
	test.That(t, IsSimple(utm))
}
