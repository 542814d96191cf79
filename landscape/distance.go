package landscape

import "gonum.org/v1/gonum/spatial/r2"

// Distance returns the Euclidean distance between the centres of a and b in
// physical units: sqrt(Δcol² + Δrow²) × CellLength.
// It is symmetric and zero iff a == b.
func (g *Grid) Distance(a, b Location) float64 {
	return CellDistance(a, b) * g.cellLength
}

// CellDistance is the unscaled Euclidean distance between a and b in cells.
func CellDistance(a, b Location) float64 {
	pa := r2.Vec{X: float64(a.Column), Y: float64(a.Row)}
	pb := r2.Vec{X: float64(b.Column), Y: float64(b.Row)}
	return r2.Norm(r2.Sub(pa, pb))
}
