package mesh

import (
	"fmt"
	"regexp"
	"strconv"
)

// vertexPattern matches "vertex x y z". Facet and loop keywords are not
// validated; vertex triples alone carry the geometry.
var vertexPattern = regexp.MustCompile(`vertex\s+([-+\d.eE]+)\s+([-+\d.eE]+)\s+([-+\d.eE]+)`)

// ParseASCII parses ASCII STL text. Every three vertex lines form a
// triangle; a vertex count that is not a multiple of three is an error.
func (p *Parser) ParseASCII(text string) (*Mesh, error) {
	// Ask for one vertex more than the ceiling allows so oversized input is
	// detected without collecting all of it.
	limit := int(p.MaxTriangles)*3 + 1
	matches := vertexPattern.FindAllStringSubmatchIndex(text, limit)

	if len(matches) > int(p.MaxTriangles)*3 {
		return nil, fmt.Errorf("%w: more than %d triangles", ErrFileTooLarge, p.MaxTriangles)
	}

	coords := len(matches) * 3
	if coords%9 != 0 {
		return nil, fmt.Errorf("%w: %d vertex coordinates do not form whole triangles",
			ErrMalformedMesh, coords)
	}

	b := newBuilder(coords / 9)
	var tri [9]float32
	for i, m := range matches {
		for c := 0; c < 3; c++ {
			token := text[m[2+2*c]:m[3+2*c]]
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: vertex %d: invalid coordinate %q", ErrMalformedMesh, i, token)
			}
			f := float32(v)
			if !finite(f) {
				return nil, fmt.Errorf("%w: vertex %d: coordinate %q out of range", ErrMalformedMesh, i, token)
			}
			tri[(i%3)*3+c] = f
		}
		if i%3 == 2 {
			b.add(tri[:])
		}
	}

	return b.mesh(), nil
}
