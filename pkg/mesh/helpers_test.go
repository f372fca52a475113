package mesh

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// cube returns the 12 outward-facing triangles of an axis-aligned cube with
// its minimum corner at the origin, nine coordinates per triangle.
func cube(edge float32) [][9]float32 {
	quads := [][4][3]float32{
		{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}, // bottom
		{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, // top
		{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // front
		{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}, // back
		{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, // left
		{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}, // right
	}

	var tris [][9]float32
	for _, q := range quads {
		for _, idx := range [][3]int{{0, 1, 2}, {0, 2, 3}} {
			var t [9]float32
			for v, i := range idx {
				for c := 0; c < 3; c++ {
					t[v*3+c] = q[i][c] * edge
				}
			}
			tris = append(tris, t)
		}
	}
	return tris
}

// encodeBinary serializes triangles as a binary STL with the given header text
func encodeBinary(header string, tris [][9]float32) []byte {
	var buf bytes.Buffer
	var h [80]byte
	copy(h[:], header)
	buf.Write(h[:])
	binary.Write(&buf, binary.LittleEndian, uint32(len(tris)))
	for _, t := range tris {
		binary.Write(&buf, binary.LittleEndian, [3]float32{}) // normal
		binary.Write(&buf, binary.LittleEndian, t)
		binary.Write(&buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

// encodeASCII serializes triangles as an ASCII STL
func encodeASCII(name string, tris [][9]float32) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "solid %s\n", name)
	for _, t := range tris {
		sb.WriteString("  facet normal 0 0 0\n    outer loop\n")
		for v := 0; v < 3; v++ {
			fmt.Fprintf(&sb, "      vertex %g %g %g\n", t[v*3], t[v*3+1], t[v*3+2])
		}
		sb.WriteString("    endloop\n  endfacet\n")
	}
	fmt.Fprintf(&sb, "endsolid %s\n", name)
	return sb.String()
}
