package geometry

import (
	"math"
	"testing"
)

// cubeTriangles returns the 12 outward-facing triangles of an axis-aligned
// cube with the given edge length whose minimum corner sits at origin.
func cubeTriangles(origin Vector3, edge float64) []Triangle {
	p := func(x, y, z float64) Vector3 {
		return origin.Add(NewVector3(x*edge, y*edge, z*edge))
	}
	return []Triangle{
		// bottom (z=0), normal -Z
		NewTriangle(p(0, 0, 0), p(0, 1, 0), p(1, 1, 0)),
		NewTriangle(p(0, 0, 0), p(1, 1, 0), p(1, 0, 0)),
		// top (z=1), normal +Z
		NewTriangle(p(0, 0, 1), p(1, 0, 1), p(1, 1, 1)),
		NewTriangle(p(0, 0, 1), p(1, 1, 1), p(0, 1, 1)),
		// front (y=0), normal -Y
		NewTriangle(p(0, 0, 0), p(1, 0, 0), p(1, 0, 1)),
		NewTriangle(p(0, 0, 0), p(1, 0, 1), p(0, 0, 1)),
		// back (y=1), normal +Y
		NewTriangle(p(0, 1, 0), p(0, 1, 1), p(1, 1, 1)),
		NewTriangle(p(0, 1, 0), p(1, 1, 1), p(1, 1, 0)),
		// left (x=0), normal -X
		NewTriangle(p(0, 0, 0), p(0, 0, 1), p(0, 1, 1)),
		NewTriangle(p(0, 0, 0), p(0, 1, 1), p(0, 1, 0)),
		// right (x=1), normal +X
		NewTriangle(p(1, 0, 0), p(1, 1, 0), p(1, 1, 1)),
		NewTriangle(p(1, 0, 0), p(1, 1, 1), p(1, 0, 1)),
	}
}

func TestAccumulatorCubeVolume(t *testing.T) {
	var acc Accumulator
	for _, tri := range cubeTriangles(NewVector3(0, 0, 0), 10) {
		acc.AddTriangle(tri)
	}

	if acc.Triangles() != 12 {
		t.Errorf("Triangles failed: expected 12, got %d", acc.Triangles())
	}
	if math.Abs(acc.Volume()-1000) > 1e-9 {
		t.Errorf("Volume failed: expected 1000, got %v", acc.Volume())
	}
	if acc.SignedVolume() <= 0 {
		t.Errorf("outward winding should give a positive signed volume, got %v", acc.SignedVolume())
	}

	bounds := acc.Bounds()
	if bounds.Min != NewVector3(0, 0, 0) || bounds.Max != NewVector3(10, 10, 10) {
		t.Errorf("Bounds failed: got %v", bounds)
	}
}

func TestAccumulatorReversedWinding(t *testing.T) {
	var acc Accumulator
	for _, tri := range cubeTriangles(NewVector3(0, 0, 0), 1) {
		acc.AddTriangle(NewTriangle(tri.V1, tri.V3, tri.V2))
	}

	if acc.SignedVolume() >= 0 {
		t.Errorf("inward winding should give a negative signed volume, got %v", acc.SignedVolume())
	}
	if math.Abs(acc.Volume()-1) > 1e-12 {
		t.Errorf("Volume failed: expected 1, got %v", acc.Volume())
	}
}

func TestAccumulatorTranslationInvariant(t *testing.T) {
	var acc Accumulator
	for _, tri := range cubeTriangles(NewVector3(100, -200, 300), 2) {
		acc.AddTriangle(tri)
	}

	if math.Abs(acc.Volume()-8) > 1e-6 {
		t.Errorf("Volume far from origin failed: expected 8, got %v", acc.Volume())
	}
}

func TestAccumulatorEmpty(t *testing.T) {
	var acc Accumulator

	if acc.Triangles() != 0 {
		t.Errorf("expected no triangles, got %d", acc.Triangles())
	}
	if acc.Volume() != 0 {
		t.Errorf("expected zero volume, got %v", acc.Volume())
	}
	if acc.Bounds() != (BoundingBox{}) {
		t.Errorf("expected zero bounds, got %v", acc.Bounds())
	}
}
