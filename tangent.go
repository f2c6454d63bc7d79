package curvedit

import "iter"

// tangentList implements the point operations shared by curves whose points
// carry tangents. Moving a point never affects its neighbors.
type tangentList struct {
	pointList
}

func (l *tangentList) AddPoint(pos Point) int {
	return l.AddPointTangent(pos, Vec2{})
}

func (l *tangentList) AddPointTangent(pos Point, tangent Vec2) int {
	return l.add(ControlPoint{Position: pos, Tangent: tangent})
}

func (l *tangentList) UpdatePointPosition(idx int, pos Point) {
	l.points[idx].Position = pos
}

func (l *tangentList) UpdatePointTangent(idx int, tangent Vec2) {
	l.points[idx].Tangent = tangent
}

// pairs calls fn for every pair of consecutive points.
func (l *tangentList) pairs(fn func(p0, p1 ControlPoint) Segment) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := 1; i < len(l.points); i++ {
			if !yield(fn(l.points[i-1], l.points[i])) {
				return
			}
		}
	}
}

var _ TangentCurve = (*Hermite)(nil)
var _ TangentCurve = (*TangentBezier)(nil)

// Hermite is a cubic Hermite spline: consecutive points are joined by a
// [HermiteSegment] using both points' tangents. Because neighboring segments
// share a point's tangent, the curve is always C1 continuous.
type Hermite struct {
	tangentList
}

// NewHermite returns an empty Hermite spline using cfg's hit radius.
func NewHermite(cfg Config) *Hermite {
	return &Hermite{tangentList{newPointList(cfg.PointRadius)}}
}

func (h *Hermite) Kind() Kind { return KindHermite }

func (h *Hermite) Segments() iter.Seq[Segment] {
	return h.pairs(func(p0, p1 ControlPoint) Segment {
		return HermiteSegment{
			P0: p0.Position,
			T0: p0.Tangent,
			P1: p1.Position,
			T1: p1.Tangent,
		}
	})
}

// TangentBezier is a cubic Bézier spline in which every point carries its
// own handles: the segment from p to q uses p.Position+p.Tangent/3 as its
// first handle and q.Position−q.Tangent/3 as its second. It traces the same
// curve as a [Hermite] spline over the same points but is evaluated with de
// Casteljau's algorithm.
type TangentBezier struct {
	tangentList
}

// NewTangentBezier returns an empty tangent Bézier spline using cfg's hit
// radius.
func NewTangentBezier(cfg Config) *TangentBezier {
	return &TangentBezier{tangentList{newPointList(cfg.PointRadius)}}
}

func (b *TangentBezier) Kind() Kind { return KindTangentBezier }

func (b *TangentBezier) Segments() iter.Seq[Segment] {
	return b.pairs(func(p0, p1 ControlPoint) Segment {
		return HermiteSegment{
			P0: p0.Position,
			T0: p0.Tangent,
			P1: p1.Position,
			T1: p1.Tangent,
		}.Bezier()
	})
}
