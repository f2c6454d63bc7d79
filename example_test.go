package curvedit_test

import (
	"fmt"

	"honnef.co/go/curvedit"
)

func ExampleDeCasteljau() {
	pts := []curvedit.Point{curvedit.Pt(0, 0), curvedit.Pt(50, 100), curvedit.Pt(100, 0)}
	for _, t := range []float64{0, 0.5, 1} {
		fmt.Println(curvedit.DeCasteljau(pts, t))
	}
	// Output:
	// (0, 0)
	// (50, 50)
	// (100, 0)
}

func ExampleHermiteSegment() {
	seg := curvedit.HermiteSegment{
		P0: curvedit.Pt(0, 0),
		T0: curvedit.Vec(100, 0),
		P1: curvedit.Pt(100, 0),
		T1: curvedit.Vec(100, 0),
	}
	fmt.Println(seg.Eval(0.5))
	// Output:
	// (50, 0)
}

func ExampleEditor() {
	cfg := curvedit.DefaultConfig()
	ed := curvedit.NewEditor(curvedit.NewCurve(cfg), cfg)

	// Click three points, then drag the middle one.
	for _, p := range []curvedit.Point{curvedit.Pt(0, 0), curvedit.Pt(50, 50), curvedit.Pt(100, 0)} {
		ed.Handle(curvedit.ButtonPressed(curvedit.ButtonLeft, p))
		ed.Handle(curvedit.ButtonReleased(curvedit.ButtonLeft, p))
	}
	ed.Handle(curvedit.ButtonPressed(curvedit.ButtonLeft, curvedit.Pt(52, 48)))
	ed.Handle(curvedit.MouseMoved(curvedit.Pt(50, 100)))
	ed.Handle(curvedit.ButtonReleased(curvedit.ButtonLeft, curvedit.Pt(50, 100)))

	for i, cp := range ed.Curve().Points() {
		fmt.Println(i, cp.Position, cp.Focused)
	}
	for seg := range ed.Curve().Segments() {
		fmt.Println(seg.Eval(0.5))
	}
	// Output:
	// 0 (0, 0) false
	// 1 (50, 100) true
	// 2 (100, 0) false
	// (50, 50)
}
