package mesh

import (
	"math"

	"github.com/philipparndt/stlquote/pkg/geometry"
)

// Mesh is the result of a successful parse: a flat triangle soup plus the
// statistics needed for quoting. It is never modified after parsing.
type Mesh struct {
	// Vertices holds nine coordinates per triangle (x1, y1, z1, ..., z3).
	// Vertices are not shared between triangles.
	Vertices []float32

	TriangleCount int
	Bounds        geometry.BoundingBox

	// Volume is the enclosed volume in mm³, always >= 0.
	Volume float64
}

// builder collects triangles for one parse call
type builder struct {
	vertices []float32
	acc      geometry.Accumulator
}

func newBuilder(triangles int) *builder {
	return &builder{
		vertices: make([]float32, 0, triangles*9),
	}
}

// add appends one triangle given as nine coordinates
func (b *builder) add(c []float32) {
	b.vertices = append(b.vertices, c[:9]...)
	b.acc.AddTriangle(geometry.TriangleFromFloats(c))
}

func (b *builder) mesh() *Mesh {
	return &Mesh{
		Vertices:      b.vertices,
		TriangleCount: b.acc.Triangles(),
		Bounds:        b.acc.Bounds(),
		Volume:        b.acc.Volume(),
	}
}

// finite reports whether every coordinate is a real number
func finite(c ...float32) bool {
	for _, v := range c {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}
