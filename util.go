package sweep

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"unsafe"
)

// Number is the coordinate type of points and segments.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

var (
	// ErrOverflow is returned by CheckRange when integer coordinates are too large for SignedArea to be exact.
	ErrOverflow = errors.New("coordinate out of range")
	// ErrNonFinite is returned by CheckRange for NaN or infinite coordinates.
	ErrNonFinite = errors.New("coordinate not finite")
)

func isFloat[T Number]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

// maxCoord returns the exclusive bound on the magnitude of integer coordinates for which SignedArea does not overflow.
func maxCoord[T Number]() float64 {
	var x T
	bits := int(unsafe.Sizeof(x)) * 8
	return math.Ldexp(1.0, bits/2-2)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. Points are ordered lexicographically by (x,y), which makes the x-axis the sweep axis.
type Point[T Number] struct {
	X, Y T
}

// Pt is a shorthand to construct a point.
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{x, y}
}

// Less returns true if P comes before Q in (x,y) order.
func (p Point[T]) Less(q Point[T]) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Equals returns true if P and Q are exactly equal.
func (p Point[T]) Equals(q Point[T]) bool {
	return p.X == q.X && p.Y == q.Y
}

// Sub subtracts Q from P, ie. the vector from Q to P.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point[T]) PerpDot(q Point[T]) T {
	return p.X*q.Y - p.Y*q.X
}

// Float64 converts P to float64 coordinates.
func (p Point[T]) Float64() Point[float64] {
	return Point[float64]{float64(p.X), float64(p.Y)}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// SignedArea returns twice the signed area of triangle PQR, ie. the cross product of P-R and Q-R. It is zero when the points are collinear and positive when P, Q, R turn counter clockwise. For integer coordinates the result may silently overflow unless CheckRange holds.
func SignedArea[T Number](p, q, r Point[T]) T {
	return p.Sub(r).PerpDot(q.Sub(r))
}

// error bound for the float64 orientation filter, see J.R. Shewchuk, "Adaptive Precision Floating-Point Arithmetic and Fast Robust Geometric Predicates", 1997
const orientErrBound = (3.0 + 16.0*0x1p-53) * 0x1p-53

// Orientation returns the exact sign of SignedArea(p, q, r) as -1, 0 or 1, for any coordinates.
func Orientation[T Number](p, q, r Point[T]) int {
	if isFloat[T]() || inExactRange(p, q, r) {
		pr := p.Float64().Sub(r.Float64())
		qr := q.Float64().Sub(r.Float64())
		left, right := pr.X*qr.Y, pr.Y*qr.X
		det := left - right
		if math.IsNaN(det) || math.IsInf(det, 0) {
			if !isFinite(p, q, r) {
				return sign(det) // zero for NaN
			}
		} else if bound := orientErrBound * (math.Abs(left) + math.Abs(right)); bound < det || det < -bound {
			return sign(det)
		}
	}
	return orientationExact(p, q, r)
}

func isFinite[T Number](ps ...Point[T]) bool {
	for _, p := range ps {
		if x, y := float64(p.X), float64(p.Y); math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			return false
		}
	}
	return true
}

func inExactRange[T Number](ps ...Point[T]) bool {
	const maxExact = 0x1p53
	for _, p := range ps {
		if maxExact <= math.Abs(float64(p.X)) || maxExact <= math.Abs(float64(p.Y)) {
			return false
		}
	}
	return true
}

func toRat[T Number](v T) *big.Rat {
	if isFloat[T]() {
		return new(big.Rat).SetFloat64(float64(v))
	}
	return new(big.Rat).SetInt64(int64(v))
}

func orientationExact[T Number](p, q, r Point[T]) int {
	rx, ry := toRat(r.X), toRat(r.Y)
	ax := new(big.Rat).Sub(toRat(p.X), rx)
	ay := new(big.Rat).Sub(toRat(p.Y), ry)
	bx := new(big.Rat).Sub(toRat(q.X), rx)
	by := new(big.Rat).Sub(toRat(q.Y), ry)
	ax.Mul(ax, by)
	ay.Mul(ay, bx)
	return ax.Cmp(ay)
}

func sign(f float64) int {
	if f < 0.0 {
		return -1
	} else if 0.0 < f {
		return 1
	}
	return 0
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned bounding box.
type Rect[T Number] struct {
	X0, Y0, X1, Y1 T
}

// Overlaps returns true if both rectangles share at least one point, boundaries included.
func (r Rect[T]) Overlaps(q Rect[T]) bool {
	return r.X0 <= q.X1 && q.X0 <= r.X1 && r.Y0 <= q.Y1 && q.Y0 <= r.Y1
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("(%v, %v)-(%v, %v)", r.X0, r.Y0, r.X1, r.Y1)
}

// CheckRange returns an error if the coordinates of a segment would make SignedArea overflow (integer types) or are not finite (floating point types).
func CheckRange[T Number](segs []Segment[T]) error {
	if isFloat[T]() {
		for i, s := range segs {
			for _, c := range [4]T{s.Tail.X, s.Tail.Y, s.Head.X, s.Head.Y} {
				if f := float64(c); math.IsNaN(f) || math.IsInf(f, 0) {
					return fmt.Errorf("segment %d %v: %w", i, s, ErrNonFinite)
				}
			}
		}
		return nil
	}

	bound := maxCoord[T]()
	for i, s := range segs {
		for _, c := range [4]T{s.Tail.X, s.Tail.Y, s.Head.X, s.Head.Y} {
			if bound <= math.Abs(float64(c)) {
				return fmt.Errorf("segment %d %v: %w: |%v| must be below %g", i, s, ErrOverflow, c, bound)
			}
		}
	}
	return nil
}
