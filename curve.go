package curvedit

import (
	"fmt"
	"iter"
)

// Kind selects how a curve interprets its control points. A curve's kind is
// fixed when it is constructed.
type Kind uint8

const (
	// KindBezier is a Bézier spline of adjustable degree whose segments
	// share their boundary knots.
	KindBezier Kind = iota + 1
	// KindTangentBezier is a cubic Bézier spline whose inner control points
	// are derived from per-point tangents.
	KindTangentBezier
	// KindHermite is a cubic Hermite spline.
	KindHermite
)

var kindNames = map[Kind]string{
	KindBezier:        "bezier",
	KindTangentBezier: "tangent-bezier",
	KindHermite:       "hermite",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the kind named s, as printed by [Kind.String].
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown curve kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown curve kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ControlPoint is a user-placed anchor.
type ControlPoint struct {
	Position Point
	// Tangent is used by tangent-carrying kinds and is zero otherwise.
	Tangent Vec2
	// Focused marks the point the user is currently editing. It only affects
	// rendering.
	Focused bool
}

// Curve is an ordered sequence of control points together with the rule that
// turns them into segments.
//
// Indices passed to Curve methods must satisfy 0 ≤ idx < Len(). Violating
// this is a programming error and panics.
type Curve interface {
	Kind() Kind
	Len() int

	// Point returns a reference to the control point at idx. Writing the
	// position through it bypasses smooth mode.
	Point(idx int) *ControlPoint
	Points() iter.Seq2[int, ControlPoint]

	// AddPoint appends a control point and returns its index. Tangent
	// kinds give it a zero tangent.
	AddPoint(pos Point) int
	UpdatePointPosition(idx int, pos Point)
	// DeleteLastPoint removes the last control point and returns the new
	// number of points. It panics if the curve is empty.
	DeleteLastPoint() int

	// HitPoint returns the lowest index whose squared distance to pos is
	// strictly less than the squared hit radius.
	HitPoint(pos Point) (int, bool)

	// Segments yields the curve's segments in traversal order. Curves with
	// fewer than two points have none.
	Segments() iter.Seq[Segment]
}

// TangentCurve is implemented by curves whose control points carry explicit
// tangents.
type TangentCurve interface {
	Curve
	AddPointTangent(pos Point, tangent Vec2) int
	// UpdatePointTangent replaces the tangent of a point. Tangent edits never
	// affect other points.
	UpdatePointTangent(idx int, tangent Vec2)
}

// DegreeCurve is implemented by curves with an adjustable degree and an
// optional smooth mode.
type DegreeCurve interface {
	Curve
	Degree() int
	IncrementDegree()
	DecrementDegree()
	SmoothMode() bool
	SetSmoothMode(on bool)
	ToggleSmoothMode()
}

// NewCurve returns an empty curve of the kind named by cfg.Kind. It panics
// if the kind is unknown; configurations obtained from [DecodeConfig] are
// always valid.
func NewCurve(cfg Config) Curve {
	switch cfg.Kind {
	case KindBezier:
		return NewBezier(cfg)
	case KindTangentBezier:
		return NewTangentBezier(cfg)
	case KindHermite:
		return NewHermite(cfg)
	default:
		panic(fmt.Sprintf("curvedit: unknown curve kind %s", cfg.Kind))
	}
}

// pointList implements the parts of [Curve] that don't depend on the kind.
type pointList struct {
	points []ControlPoint
	// hitRadius2 is the squared hit radius.
	hitRadius2 float64
}

func newPointList(hitRadius float64) pointList {
	return pointList{hitRadius2: hitRadius * hitRadius}
}

func (l *pointList) Len() int {
	return len(l.points)
}

func (l *pointList) Point(idx int) *ControlPoint {
	return &l.points[idx]
}

func (l *pointList) Points() iter.Seq2[int, ControlPoint] {
	return func(yield func(int, ControlPoint) bool) {
		for i, cp := range l.points {
			if !yield(i, cp) {
				return
			}
		}
	}
}

func (l *pointList) add(cp ControlPoint) int {
	idx := len(l.points)
	l.points = append(l.points, cp)
	return idx
}

func (l *pointList) DeleteLastPoint() int {
	if len(l.points) == 0 {
		panic("curvedit: DeleteLastPoint called on an empty curve")
	}
	l.points[len(l.points)-1] = ControlPoint{}
	l.points = l.points[:len(l.points)-1]
	return len(l.points)
}

func (l *pointList) HitPoint(pos Point) (int, bool) {
	for i, cp := range l.points {
		if pos.DistanceSquared(cp.Position) < l.hitRadius2 {
			return i, true
		}
	}
	return 0, false
}
