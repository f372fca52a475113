package geometry

// Triangle represents a triangular facet in 3D space.
// Normals are not stored; winding order alone decides the sign of SignedVolume.
type Triangle struct {
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{
		V1: v1,
		V2: v2,
		V3: v3,
	}
}

// TriangleFromFloats builds a triangle from nine consecutive coordinates
// (x1, y1, z1, x2, ..., z3). It panics if fewer than nine values are given.
func TriangleFromFloats(c []float32) Triangle {
	_ = c[8]
	return Triangle{
		V1: NewVector3(float64(c[0]), float64(c[1]), float64(c[2])),
		V2: NewVector3(float64(c[3]), float64(c[4]), float64(c[5])),
		V3: NewVector3(float64(c[6]), float64(c[7]), float64(c[8])),
	}
}

// SignedVolume returns the signed volume of the tetrahedron spanned by the
// triangle and the coordinate origin: V1 · (V2 × V3) / 6.
func (t Triangle) SignedVolume() float64 {
	return t.V1.Dot(t.V2.Cross(t.V3)) / 6.0
}

