package state

// Point is a single sampled position on the notebook surface, in
// surface-local pixels with the origin at the top-left. Immutable once
// created.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// DistSq returns the squared Euclidean distance between p and q.
func (p Point) DistSq(q Point) float32 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Path is the committed, immutable result of one completed gesture.
// A committed Path always holds at least one point; its points are in
// capture order.
type Path struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
}
