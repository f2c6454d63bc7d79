package curvedit

// smoothMove adjusts the neighbors of points[idx] for a move of that point to
// pos, so that handles stay mirrored across shared knots. points[idx] itself
// is not written. degree must be at least MinSmoothDegree.
func smoothMove(points []ControlPoint, idx int, pos Point, degree int) {
	switch r := idx % degree; {
	case r == 0:
		if idx == 0 {
			return
		}
		delta := pos.Sub(points[idx].Position)
		points[idx-1].Position = points[idx-1].Position.Translate(delta)
		if idx+1 < len(points) {
			points[idx+1].Position = points[idx+1].Position.Translate(delta)
		}
	case r == degree-1:
		if idx+2 < len(points) {
			points[idx+2].Position = pos.Mirror(points[idx+1].Position)
		}
	case r == 1 && idx > 1:
		points[idx-2].Position = pos.Mirror(points[idx-1].Position)
	}
}

// smoothAll mirrors the outgoing handle of every shared knot against its
// incoming handle.
func smoothAll(points []ControlPoint, degree int) {
	for k := degree; k+1 < len(points); k += degree {
		points[k+1].Position = points[k-1].Position.Mirror(points[k].Position)
	}
}
