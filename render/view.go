package render

import "honnef.co/go/curvedit"

// View maps between window pixels and the editor's logical coordinates.
// Hosts use ToModel on every pointer position before handing it to the
// editor; the renderer uses ToWindow when drawing. Resizing a window only
// replaces the View, never the curve.
type View struct {
	toWindow curvedit.Affine
	toModel  curvedit.Affine
}

// IdentityView maps window pixels one to one onto logical coordinates.
func IdentityView() View {
	return View{curvedit.Identity, curvedit.Identity}
}

// NewView returns a view applying aff to go from logical to window
// coordinates. aff must be invertible.
func NewView(aff curvedit.Affine) View {
	if !aff.IsInvertible() {
		panic("render: view transform is not invertible")
	}
	return View{aff, aff.Invert()}
}

// FitView returns a view that scales and centers the logical rectangle r,
// inflated by margin on every side, into a width×height window, keeping the
// aspect ratio. Degenerate rectangles are treated as having unit size.
func FitView(r curvedit.Rect, margin float64, width, height int) View {
	r = r.Abs().Inflate(margin, margin)
	w := max(r.Width(), 1)
	h := max(r.Height(), 1)
	s := min(float64(width)/w, float64(height)/h)
	c := r.Center()
	aff := curvedit.Translate(curvedit.Vec(-c.X, -c.Y)).
		ThenScale(s, s).
		ThenTranslate(curvedit.Vec(float64(width)/2, float64(height)/2))
	return NewView(aff)
}

func (v View) ToWindow(pt curvedit.Point) curvedit.Point {
	return pt.Transform(v.toWindow)
}

func (v View) ToModel(pt curvedit.Point) curvedit.Point {
	return pt.Transform(v.toModel)
}

// MapEvent converts the position of a pointer event from window to logical
// coordinates. Key events are returned unchanged.
func (v View) MapEvent(ev curvedit.Event) curvedit.Event {
	switch ev.Kind {
	case curvedit.EventMouseMoved, curvedit.EventButtonPressed, curvedit.EventButtonReleased:
		ev.Pos = v.ToModel(ev.Pos)
	}
	return ev
}
