// Package render draws the state of a curve editor with gg.
//
// The renderer owns no curve data. Each call to [Renderer.Draw] reads the
// editor's control points and samples its segments afresh, so a frame always
// shows the model as it is after all of the frame's input events.
package render

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/gogpu/gg"
	"honnef.co/go/curvedit"
)

type palette struct {
	background gg.RGBA
	point      gg.RGBA
	focus      gg.RGBA
	tangent    gg.RGBA
	curve      gg.RGBA
}

// Renderer draws editor frames according to a [curvedit.Style].
type Renderer struct {
	style  curvedit.Style
	colors palette
}

// New returns a renderer for cfg.Style. It fails if a color is not a valid
// hex string.
func New(cfg curvedit.Config) (*Renderer, error) {
	st := cfg.Style
	var p palette
	for _, c := range []struct {
		name string
		hex  string
		dst  *gg.RGBA
	}{
		{"background", st.Background, &p.background},
		{"point", st.PointColor, &p.point},
		{"focus", st.FocusColor, &p.focus},
		{"tangent", st.TangentColor, &p.tangent},
		{"curve", st.CurveColor, &p.curve},
	} {
		col, err := parseColor(c.hex)
		if err != nil {
			return nil, fmt.Errorf("%s color: %w", c.name, err)
		}
		*c.dst = col
	}
	return &Renderer{style: st, colors: p}, nil
}

// parseColor accepts the formats gg.Hex does, but reports malformed input
// instead of silently returning black.
func parseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("malformed hex color %q", s)
		}
	}
	return gg.Hex(hex), nil
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// Draw draws one frame: the background, every sampled segment as a
// polyline, then the control points. The focused point is highlighted and,
// for curves with tangents, gets its tangent indicator drawn beneath it.
func (r *Renderer) Draw(dc *gg.Context, ed *curvedit.Editor, view View) error {
	dc.ClearWithColor(r.colors.background)

	if err := r.drawCurve(dc, ed.Frame(), view); err != nil {
		return err
	}

	_, hasTangents := ed.Curve().(curvedit.TangentCurve)
	for i, cp := range ed.Curve().Points() {
		pt := view.ToWindow(cp.Position)
		if !cp.Focused {
			setColor(dc, r.colors.point)
			dc.DrawCircle(pt.X, pt.Y, r.style.PointRadius)
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("drawing point %d: %w", i, err)
			}
			continue
		}
		if hasTangents {
			ind := view.ToWindow(ed.TangentIndicator(i))
			setColor(dc, r.colors.tangent)
			dc.DrawCircle(ind.X, ind.Y, r.style.IndicatorRadius)
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("drawing tangent indicator of point %d: %w", i, err)
			}
		}
		setColor(dc, r.colors.focus)
		dc.DrawCircle(pt.X, pt.Y, r.style.PointRadius)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("drawing point %d: %w", i, err)
		}
	}
	return nil
}

func (r *Renderer) drawCurve(dc *gg.Context, frame iter.Seq[[]curvedit.Point], view View) error {
	if r.style.LineWidth == 0 {
		return nil
	}
	var drawn bool
	for pts := range frame {
		for i, p := range pts {
			w := view.ToWindow(p)
			if i == 0 {
				dc.MoveTo(w.X, w.Y)
			} else {
				dc.LineTo(w.X, w.Y)
			}
		}
		drawn = true
	}
	if !drawn {
		return nil
	}
	setColor(dc, r.colors.curve)
	dc.SetLineWidth(r.style.LineWidth)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("drawing curve: %w", err)
	}
	return nil
}

// EncodePNG draws a width×height frame and writes it to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer, ed *curvedit.Editor, view View, width, height int) error {
	dc := gg.NewContext(width, height)
	defer dc.Close()
	if err := r.Draw(dc, ed, view); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// Bounds returns the rectangle enclosing the editor's control points and
// sampled curve, for use with [FitView]. It reports false for an empty
// curve.
func Bounds(ed *curvedit.Editor) (curvedit.Rect, bool) {
	return curvedit.BoundingBox(func(yield func(curvedit.Point) bool) {
		for _, cp := range ed.Curve().Points() {
			if !yield(cp.Position) {
				return
			}
		}
		for pts := range ed.Frame() {
			for _, p := range pts {
				if !yield(p) {
					return
				}
			}
		}
	})
}
