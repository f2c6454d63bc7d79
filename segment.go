package curvedit

import (
	"iter"
	"slices"
)

// Segment is one piece of a curve, parametrized over t ∈ [0, 1].
//
// Eval must be pure: it never modifies the segment or the curve it was taken
// from.
type Segment interface {
	Eval(t float64) Point
	Start() Point
	End() Point
}

var _ Segment = BezierSegment(nil)
var _ Segment = HermiteSegment{}

// BezierSegment is a Bézier curve of degree len(seg)-1, evaluated with de
// Casteljau's algorithm. It must contain at least two points.
type BezierSegment []Point

func (seg BezierSegment) Degree() int {
	return len(seg) - 1
}

// Eval evaluates the segment at t. See [DeCasteljau].
func (seg BezierSegment) Eval(t float64) Point {
	return DeCasteljau(seg, t)
}

func (seg BezierSegment) Start() Point {
	return seg[0]
}

func (seg BezierSegment) End() Point {
	return seg[len(seg)-1]
}

// Evaluations of up to this many control points use a stack buffer.
const deCasteljauStack = 8

// DeCasteljau evaluates the Bézier curve with control points pts at t by
// repeated linear interpolation. The degree of the curve is len(pts)-1; pts
// is not modified.
//
// Each interpolation is computed as (1-t)·a + t·b, which makes the result
// exactly pts[0] at t = 0 and exactly pts[len(pts)-1] at t = 1.
//
// DeCasteljau panics if pts is empty.
func DeCasteljau(pts []Point, t float64) Point {
	switch len(pts) {
	case 0:
		panic("curvedit: de Casteljau evaluation of an empty point set")
	case 1:
		return pts[0]
	}

	var buf [deCasteljauStack]Point
	var work []Point
	if len(pts) <= len(buf) {
		work = buf[:len(pts)]
	} else {
		work = make([]Point, len(pts))
	}
	copy(work, pts)

	mt := 1 - t
	for n := len(work) - 1; n > 0; n-- {
		for k := range n {
			work[k] = Point(Vec2(work[k]).Mul(mt).Add(Vec2(work[k+1]).Mul(t)))
		}
	}
	return work[0]
}

// HermiteSegment is a cubic Hermite curve between two positions with
// explicit tangents.
type HermiteSegment struct {
	P0 Point
	T0 Vec2
	P1 Point
	T1 Vec2
}

// Eval evaluates
//
//	H(t) = h00(t)·P0 + h10(t)·T0 + h01(t)·P1 + h11(t)·T1
//
// with h00 = 2t³−3t²+1, h10 = t³−2t²+t, h01 = −2t³+3t² and h11 = t³−t².
func (h HermiteSegment) Eval(t float64) Point {
	// The endpoints are returned as is so that infinite tangents cannot
	// turn them into NaN through 0·∞.
	switch t {
	case 0:
		return h.P0
	case 1:
		return h.P1
	}
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	v := Vec2(h.P0).Mul(h00).
		Add(h.T0.Mul(h10)).
		Add(Vec2(h.P1).Mul(h01)).
		Add(h.T1.Mul(h11))
	return Point(v)
}

func (h HermiteSegment) Start() Point {
	return h.P0
}

func (h HermiteSegment) End() Point {
	return h.P1
}

// Bezier returns the cubic Bézier describing the same curve.
func (h HermiteSegment) Bezier() BezierSegment {
	return BezierSegment{
		h.P0,
		h.P0.Translate(h.T0.Div(3)),
		h.P1.Translate(h.T1.Div(3).Negate()),
		h.P1,
	}
}

// Samples returns n+1 evenly spaced evaluations of seg, at t = k/n for
// k = 0, …, n. Values of n below 1 are treated as 1, which yields just the
// two endpoints.
func Samples(seg Segment, n int) iter.Seq[Point] {
	n = max(n, 1)
	return func(yield func(Point) bool) {
		if !yield(seg.Start()) {
			return
		}
		for k := 1; k < n; k++ {
			if !yield(seg.Eval(float64(k) / float64(n))) {
				return
			}
		}
		yield(seg.End())
	}
}

// Polyline samples every segment of c with n intervals per segment and
// yields one slice of points per segment. It reads the curve as it is at the
// time of iteration and is the hook renderers call once per frame.
func Polyline(c Curve, n int) iter.Seq[[]Point] {
	return func(yield func([]Point) bool) {
		for seg := range c.Segments() {
			if !yield(slices.Collect(Samples(seg, n))) {
				return
			}
		}
	}
}
