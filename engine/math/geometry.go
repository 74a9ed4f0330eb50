package math

// CubeVertices are the corners of the unit cube spanned by +X, +Y and +Z
// from the origin. Bit 0 of the index selects +Z, bit 1 +X, bit 2 +Y.
var CubeVertices = [8]Vec3{
	{0, 0, 0},
	{0, 0, 1},
	{1, 0, 0},
	{1, 0, 1},
	{0, 1, 0},
	{0, 1, 1},
	{1, 1, 0},
	{1, 1, 1},
}

// CubeEdgeIndices pairs CubeVertices into the 12 cube edges, grouped by the
// axis they run along: four along X, four along Y, four along Z.
var CubeEdgeIndices = [12][2]int{
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
}

// CubeEdges maps the unit cube through the matrix and returns its edges in
// CubeEdgeIndices order.
func CubeEdges(mt Mat4) []Segment {
	var corners [8]Vec3
	for i, v := range CubeVertices {
		corners[i] = mt.MulPoint(v)
	}

	edges := make([]Segment, 0, len(CubeEdgeIndices))
	for _, e := range CubeEdgeIndices {
		edges = append(edges, Segment{From: corners[e[0]], To: corners[e[1]]})
	}
	return edges
}

// Length returns the distance between the segment end points.
func (s Segment) Length() float32 {
	return s.From.Distance(s.To)
}
