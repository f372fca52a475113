package mesh

import "errors"

var (
	// ErrFileTooLarge is returned when the declared or implied triangle count
	// exceeds the parser's ceiling.
	ErrFileTooLarge = errors.New("file too large")

	// ErrTruncatedFile is returned when a binary STL is shorter than the
	// record stream its header declares.
	ErrTruncatedFile = errors.New("truncated file")

	// ErrMalformedMesh is returned when ASCII STL vertex data does not form
	// whole triangles.
	ErrMalformedMesh = errors.New("malformed mesh")

	// ErrUnsupportedFormat is returned for file extensions other than .stl and .obj.
	ErrUnsupportedFormat = errors.New("unsupported file type")
)
