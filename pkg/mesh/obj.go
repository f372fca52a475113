package mesh

import (
	"strconv"
	"strings"
)

// objVertex is one entry of the OBJ position table. Lines that fail to
// parse still take up an index so later faces stay aligned.
type objVertex struct {
	pos [3]float32
	ok  bool
}

// ParseOBJ parses OBJ text (v and f records). Faces are fan-triangulated
// from their first vertex. A face that references a vertex outside the table
// declared so far, or a vertex that failed to parse, is skipped on its own;
// ParseOBJ never fails as a whole. Text without usable faces yields an empty
// mesh. Parsing stops at the first face that would take the mesh past
// MaxTriangles; the faces before it are kept.
func (p *Parser) ParseOBJ(text string) *Mesh {
	var vertices []objVertex
	b := newBuilder(0)

	var tri [9]float32
	var indices []int

	for line := range strings.Lines(text) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vertices = append(vertices, parseOBJVertex(fields[1:]))

		case "f":
			indices = parseOBJFace(fields[1:], vertices, indices[:0])
			if indices == nil {
				continue
			}
			if b.acc.Triangles()+len(indices)-2 > int(p.MaxTriangles) {
				return b.mesh()
			}
			for i := 1; i < len(indices)-1; i++ {
				copy(tri[0:3], vertices[indices[0]].pos[:])
				copy(tri[3:6], vertices[indices[i]].pos[:])
				copy(tri[6:9], vertices[indices[i+1]].pos[:])
				b.add(tri[:])
			}
		}
	}

	return b.mesh()
}

func parseOBJVertex(args []string) objVertex {
	var v objVertex
	if len(args) < 3 {
		return v
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil || !finite(float32(f)) {
			return v
		}
		v.pos[i] = float32(f)
	}
	v.ok = true
	return v
}

// parseOBJFace resolves the 1-based position indices of a face into
// 0-based table indices, appending them to dst. Only the first field of
// "v/vt/vn" tokens is used. It returns nil when the face must be dropped.
func parseOBJFace(args []string, vertices []objVertex, dst []int) []int {
	if len(args) < 3 {
		return nil
	}
	for _, arg := range args {
		ref, _, _ := strings.Cut(arg, "/")
		idx, err := strconv.Atoi(ref)
		if err != nil || idx <= 0 || idx > len(vertices) || !vertices[idx-1].ok {
			return nil
		}
		dst = append(dst, idx-1)
	}
	return dst
}
