package curvedit

import "iter"

// State is the state of an [Editor]'s input state machine.
type State uint8

const (
	StateDefault State = iota
	StateMovingPoint
	// StateMovingTangent and StateCreatingPoint only occur with curves
	// implementing [TangentCurve].
	StateMovingTangent
	StateCreatingPoint
)

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateMovingPoint:
		return "moving point"
	case StateMovingTangent:
		return "moving tangent"
	case StateCreatingPoint:
		return "creating point"
	default:
		return "unknown state"
	}
}

// Editor drives all mutations of a curve from pointer and key events. It owns
// the curve; renderers read it through [Editor.Curve] or [Editor.Frame]
// between events.
//
// Pressing the left button on a point selects it and starts moving it.
// Pressing near the tangent indicator of the focused point (tangent curves
// only) starts editing its tangent. Pressing anywhere else creates a point,
// and with tangent curves, dragging right after defines the new point's
// tangent. Keys are only honored while no drag is in progress.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	curve Curve
	cfg   Config
	state State
	focus option[int]
}

// NewEditor returns an editor for c, using cfg's tangent scale, hit radius,
// sample count and release behavior. c should have been created with the
// same configuration.
func NewEditor(c Curve, cfg Config) *Editor {
	return &Editor{
		curve: c,
		cfg:   cfg,
	}
}

func (e *Editor) Curve() Curve { return e.curve }

func (e *Editor) Config() Config { return e.cfg }

func (e *Editor) State() State { return e.state }

// Focused returns the index of the focused point, if any.
func (e *Editor) Focused() (int, bool) { return e.focus.get() }

// TangentIndicator returns where the tangent handle of the point at idx is
// drawn and hit-tested: its position offset by its tangent times the tangent
// scale.
func (e *Editor) TangentIndicator(idx int) Point {
	cp := e.curve.Point(idx)
	return cp.Position.Translate(cp.Tangent.Mul(e.cfg.TangentScale))
}

// Frame samples the curve for drawing, using the configured number of
// samples per segment.
func (e *Editor) Frame() iter.Seq[[]Point] {
	return Polyline(e.curve, e.cfg.SamplesPerSegment)
}

// Handle dispatches ev to the matching event method.
func (e *Editor) Handle(ev Event) {
	switch ev.Kind {
	case EventMouseMoved:
		e.MouseMoved(ev.Pos)
	case EventButtonPressed:
		e.ButtonPressed(ev.Button, ev.Pos)
	case EventButtonReleased:
		e.ButtonReleased(ev.Button, ev.Pos)
	case EventKeyPressed:
		e.KeyPressed(ev.Key)
	case EventKeyReleased:
		e.KeyReleased(ev.Key)
	default:
		Logger().Debug("curvedit: ignoring event", "event", ev)
	}
}

func (e *Editor) setState(s State) {
	if s == e.state {
		return
	}
	Logger().Debug("curvedit: state transition", "from", e.state, "to", s)
	e.state = s
}

func (e *Editor) setFocus(idx int) {
	e.clearFocus()
	e.curve.Point(idx).Focused = true
	e.focus.set(idx)
}

func (e *Editor) clearFocus() {
	if idx, ok := e.focus.get(); ok {
		e.curve.Point(idx).Focused = false
	}
	e.focus.clear()
}

func (e *Editor) tangentCurve() (TangentCurve, bool) {
	tc, ok := e.curve.(TangentCurve)
	return tc, ok
}

// finite reports whether pos can be stored in the model. Hosts can produce
// NaN or infinite positions when mapping through a degenerate view.
func finite(pos Point) bool {
	if pos.IsNaN() || pos.IsInf() {
		Logger().Debug("curvedit: ignoring non-finite position", "pos", pos)
		return false
	}
	return true
}

func (e *Editor) ButtonPressed(btn Button, pos Point) {
	if btn != ButtonLeft || !finite(pos) {
		return
	}

	if idx, ok := e.curve.HitPoint(pos); ok {
		e.setFocus(idx)
		e.setState(StateMovingPoint)
		return
	}

	tc, isTangent := e.tangentCurve()
	if idx, ok := e.focus.get(); ok && isTangent {
		r := e.cfg.PointRadius
		if pos.DistanceSquared(e.TangentIndicator(idx)) < r*r {
			e.setState(StateMovingTangent)
			return
		}
	}

	var idx int
	if isTangent {
		idx = tc.AddPointTangent(pos, Vec2{})
	} else {
		idx = e.curve.AddPoint(pos)
	}
	Logger().Debug("curvedit: point created", "index", idx, "pos", pos)
	e.setFocus(idx)
	if isTangent {
		e.setState(StateCreatingPoint)
	} else {
		// Plain Bézier points have no tangent to define, so the new point is
		// dragged directly.
		e.setState(StateMovingPoint)
	}
}

func (e *Editor) MouseMoved(pos Point) {
	idx, ok := e.focus.get()
	if !ok || !finite(pos) {
		return
	}
	switch e.state {
	case StateMovingPoint:
		e.curve.UpdatePointPosition(idx, pos)
	case StateMovingTangent, StateCreatingPoint:
		tc, ok := e.tangentCurve()
		if !ok {
			return
		}
		tangent := pos.Sub(e.curve.Point(idx).Position).Div(e.cfg.TangentScale)
		if tangent.IsInf() {
			Logger().Debug("curvedit: ignoring tangent overflow", "index", idx, "pos", pos)
			return
		}
		tc.UpdatePointTangent(idx, tangent)
	}
}

// ButtonReleased ends any drag. With [Config.ClearFocusOnRelease] set, it
// also clears the focus, which means that a tangent can only be edited right
// after creating its point.
func (e *Editor) ButtonReleased(btn Button, pos Point) {
	if btn != ButtonLeft {
		return
	}
	e.setState(StateDefault)
	if e.cfg.ClearFocusOnRelease {
		e.clearFocus()
	}
}

func (e *Editor) KeyPressed(key Key) {
	if e.state != StateDefault {
		Logger().Debug("curvedit: ignoring key during drag", "key", key, "state", e.state)
		return
	}
	switch key {
	case KeyS:
		if dc, ok := e.curve.(DegreeCurve); ok {
			dc.ToggleSmoothMode()
		}
	case KeyZ:
		if e.curve.Len() == 0 {
			return
		}
		n := e.curve.DeleteLastPoint()
		Logger().Debug("curvedit: point deleted", "index", n)
		if idx, ok := e.focus.get(); ok && idx == n {
			e.focus.clear()
		}
	case KeyLeft:
		if dc, ok := e.curve.(DegreeCurve); ok {
			dc.DecrementDegree()
		}
	case KeyRight:
		if dc, ok := e.curve.(DegreeCurve); ok {
			dc.IncrementDegree()
		}
	}
}

func (e *Editor) KeyReleased(key Key) {}
