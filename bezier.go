package curvedit

import "iter"

const (
	// MinDegree and MaxDegree bound the degree of a [Bezier]. Degree changes
	// beyond them are clamped.
	MinDegree = 1
	MaxDegree = 6
	// MinSmoothDegree is the lowest degree at which smooth mode can be
	// enabled. Below it a segment has no handle on each side of a knot.
	MinSmoothDegree = 3
)

var _ DegreeCurve = (*Bezier)(nil)

// Bezier is a Bézier spline of degree 1 to 6. Each segment spans degree+1
// consecutive control points and consecutive segments share their boundary
// point: point i·degree is the knot between segment i-1 and segment i.
// Trailing points that don't complete a segment are kept but not drawn.
//
// In smooth mode (degree ≥ 3) the handles on either side of every shared knot
// are kept mirrored across it, which makes the curve C1 continuous. See
// [Bezier.UpdatePointPosition] for the exact rule.
type Bezier struct {
	pointList
	degree int
	smooth bool
}

// NewBezier returns an empty Bézier spline using cfg's degree, smooth mode
// and hit radius.
func NewBezier(cfg Config) *Bezier {
	b := &Bezier{
		pointList: newPointList(cfg.PointRadius),
		degree:    clamp(cfg.Degree, MinDegree, MaxDegree),
	}
	b.SetSmoothMode(cfg.Smooth)
	return b
}

func (b *Bezier) Kind() Kind { return KindBezier }

func (b *Bezier) Degree() int { return b.degree }

func (b *Bezier) SmoothMode() bool { return b.smooth }

// AddPoint appends a point. In smooth mode, if the new point is the outgoing
// handle of a shared knot, the incoming handle on the other side of the knot
// is mirrored to match it.
func (b *Bezier) AddPoint(pos Point) int {
	idx := b.add(ControlPoint{Position: pos})
	if b.smooth {
		smoothMove(b.points, idx, pos, b.degree)
	}
	return idx
}

// UpdatePointPosition moves the point at idx to pos.
//
// In smooth mode, with d the degree, the neighbors of idx are adjusted first:
//
//   - idx is a shared knot (idx mod d = 0, idx > 0): the points at idx-1 and
//     idx+1 move along with it.
//   - idx is an incoming handle (idx mod d = d-1): the point at idx+2 is
//     mirrored across the knot at idx+1.
//   - idx is an outgoing handle (idx mod d = 1, idx > 1): the point at idx-2
//     is mirrored across the knot at idx-1.
//
// Other points are interior handles and move alone.
func (b *Bezier) UpdatePointPosition(idx int, pos Point) {
	if b.smooth {
		smoothMove(b.points, idx, pos, b.degree)
	}
	b.points[idx].Position = pos
}

// IncrementDegree raises the degree by one, up to [MaxDegree].
func (b *Bezier) IncrementDegree() { b.setDegree(b.degree + 1) }

// DecrementDegree lowers the degree by one, down to [MinDegree]. Dropping
// below [MinSmoothDegree] turns smooth mode off.
func (b *Bezier) DecrementDegree() { b.setDegree(b.degree - 1) }

func (b *Bezier) setDegree(d int) {
	d = clamp(d, MinDegree, MaxDegree)
	if d == b.degree {
		return
	}
	b.degree = d
	if d < MinSmoothDegree {
		b.smooth = false
	}
	// Knots and handles sit at different indices under the new degree.
	if b.smooth {
		smoothAll(b.points, b.degree)
	}
	Logger().Debug("curvedit: degree changed", "degree", b.degree, "smooth", b.smooth)
}

// SetSmoothMode enables or disables smooth mode. Enabling it re-mirrors every
// outgoing handle against its incoming handle. It cannot be enabled below
// [MinSmoothDegree]. Disabling it leaves all points where they are.
func (b *Bezier) SetSmoothMode(on bool) {
	if on && b.degree < MinSmoothDegree {
		Logger().Debug("curvedit: smooth mode needs a cubic or higher degree", "degree", b.degree)
		on = false
	}
	if on == b.smooth {
		return
	}
	b.smooth = on
	if on {
		smoothAll(b.points, b.degree)
	}
	Logger().Debug("curvedit: smooth mode changed", "smooth", b.smooth)
}

func (b *Bezier) ToggleSmoothMode() { b.SetSmoothMode(!b.smooth) }

// Segments yields one [BezierSegment] for every knot-aligned window
// [i, i+degree], stepping i by the degree.
func (b *Bezier) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		d := b.degree
		for i := 0; i+d < len(b.points); i += d {
			seg := make(BezierSegment, d+1)
			for j := range seg {
				seg[j] = b.points[i+j].Position
			}
			if !yield(seg) {
				return
			}
		}
	}
}
