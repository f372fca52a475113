package geometry

import "math"

// Accumulator collects the statistics every mesh parser reports: triangle
// count, per-axis extrema and enclosed volume. The zero value is ready to use.
//
// Volume is the sum of signed tetrahedron volumes against the origin. The sum
// is compensated (Neumaier) so that large meshes far away from the origin do
// not lose the small residual that remains once opposite faces cancel.
type Accumulator struct {
	bounds    BoundingBox
	triangles int
	sum       float64
	comp      float64
}

// AddTriangle folds a triangle into the running statistics
func (a *Accumulator) AddTriangle(t Triangle) {
	if a.triangles == 0 {
		a.bounds = NewBoundingBox()
	}
	a.triangles++

	a.bounds.Extend(t.V1)
	a.bounds.Extend(t.V2)
	a.bounds.Extend(t.V3)

	v := t.SignedVolume()
	s := a.sum + v
	if math.Abs(a.sum) >= math.Abs(v) {
		a.comp += (a.sum - s) + v
	} else {
		a.comp += (v - s) + a.sum
	}
	a.sum = s
}

// Triangles returns the number of triangles added so far
func (a *Accumulator) Triangles() int {
	return a.triangles
}

// SignedVolume returns the raw signed sum; its sign only reflects winding
func (a *Accumulator) SignedVolume() float64 {
	return a.sum + a.comp
}

// Volume returns the enclosed volume, independent of winding
func (a *Accumulator) Volume() float64 {
	return math.Abs(a.SignedVolume())
}

// Bounds returns the bounding box of every vertex added so far, or the zero
// box when no triangle was added.
func (a *Accumulator) Bounds() BoundingBox {
	if a.triangles == 0 {
		return BoundingBox{}
	}
	return a.bounds
}
