package geometry

import (
	"math"
	"testing"
)

func TestTriangleSignedVolume(t *testing.T) {
	// Unit right tetrahedron with the origin as fourth corner
	tri := NewTriangle(
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(0, 0, 1),
	)

	volume := tri.SignedVolume()
	expected := 1.0 / 6.0

	if math.Abs(volume-expected) > 1e-12 {
		t.Errorf("SignedVolume failed: expected %v, got %v", expected, volume)
	}
}

func TestTriangleSignedVolumeWinding(t *testing.T) {
	tri := NewTriangle(
		NewVector3(1, 0, 0),
		NewVector3(0, 0, 1),
		NewVector3(0, 1, 0),
	)

	volume := tri.SignedVolume()
	expected := -1.0 / 6.0

	if math.Abs(volume-expected) > 1e-12 {
		t.Errorf("Reversed winding failed: expected %v, got %v", expected, volume)
	}
}

func TestTriangleSignedVolumeThroughOrigin(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	if volume := tri.SignedVolume(); volume != 0 {
		t.Errorf("Flat triangle through origin: expected 0, got %v", volume)
	}
}

func TestTriangleFromFloats(t *testing.T) {
	tri := TriangleFromFloats([]float32{1, 2, 3, 4, 5, 6, 7, 8, 9})

	if tri.V1 != NewVector3(1, 2, 3) {
		t.Errorf("V1 failed: got %v", tri.V1)
	}
	if tri.V2 != NewVector3(4, 5, 6) {
		t.Errorf("V2 failed: got %v", tri.V2)
	}
	if tri.V3 != NewVector3(7, 8, 9) {
		t.Errorf("V3 failed: got %v", tri.V3)
	}
}
