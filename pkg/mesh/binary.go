package mesh

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ParseBinary decodes a binary STL: an 80-byte header, a little-endian
// uint32 triangle count and one 50-byte record per triangle (normal, three
// vertices, attribute byte count). Normals and attributes are ignored; a NaN
// or infinite vertex coordinate fails with ErrMalformedMesh.
func (p *Parser) ParseBinary(data []byte) (*Mesh, error) {
	if len(data) < preambleSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d byte binary STL header",
			ErrTruncatedFile, len(data), preambleSize)
	}

	n := binary.LittleEndian.Uint32(data[headerSize:preambleSize])
	if n > p.MaxTriangles {
		return nil, fmt.Errorf("%w: %d triangles (max %d)", ErrFileTooLarge, n, p.MaxTriangles)
	}

	need := int64(preambleSize) + int64(recordSize)*int64(n)
	if int64(len(data)) < need {
		return nil, fmt.Errorf("%w: %d triangles need %d bytes, got %d",
			ErrTruncatedFile, n, need, len(data))
	}

	b := newBuilder(int(n))
	var tri [9]float32
	offset := preambleSize
	for i := 0; i < int(n); i++ {
		record := data[offset : offset+recordSize]
		const start = 3 * 4 // Skip normal
		for c := range tri {
			tri[c] = math.Float32frombits(binary.LittleEndian.Uint32(record[start+4*c:]))
		}
		if !finite(tri[:]...) {
			return nil, fmt.Errorf("%w: triangle %d has a non-finite coordinate", ErrMalformedMesh, i)
		}
		b.add(tri[:])
		offset += recordSize
	}

	return b.mesh(), nil
}
