// Package curvedit implements the core of an interactive 2D curve editor: a
// curve model made of user-placed control points, the evaluation of the
// curve those points describe, and the input state machine that turns
// pointer and key events into edits.
//
// Windowing, OS event translation and rasterization are left to the host.
// The host maps pointer positions into the editor's logical coordinate space,
// feeds events to an [Editor] and, once per frame, draws the control points
// and the polylines produced by [Polyline]. The render sub-package provides
// such a renderer for gg.
//
// # Curve kinds
//
// Three kinds of curves are supported, each selected when the curve is
// constructed (see [NewCurve] and [Kind]):
//
//   - [Bezier] joins Bézier segments of degree 1 to 6, evaluated with
//     [DeCasteljau]. Each segment spans degree+1 control points, and
//     consecutive segments share their boundary knot.
//   - [TangentBezier] joins cubic Bézier segments whose inner control points
//     are derived from per-point tangents.
//   - [Hermite] joins cubic [HermiteSegment]s between consecutive points.
//
// All curves implement [Curve]. Optional capabilities are expressed as
// separate interfaces: [TangentCurve] for curves whose points carry tangents,
// and [DegreeCurve] for curves with an adjustable degree and smooth mode.
//
// # Smooth mode
//
// With smooth mode enabled on a [Bezier] of degree 3 or higher, the handles on
// either side of every shared knot are kept mirrored across that knot, so
// that adjoining segments meet with matching first derivatives. Dragging a
// knot drags its handles along; dragging a handle mirrors the handle on the
// other side of the knot. Enabling smooth mode or changing the degree
// re-mirrors the whole curve.
//
// # Contracts
//
// There are no recoverable errors in the editing core. Indices must be in
// range, and [Curve.DeleteLastPoint] must not be called on an empty curve;
// violations panic. Degenerate input, such as hit-testing an empty curve or
// sampling a curve with a single point, simply produces nothing.
package curvedit
