package mesh

import (
	"fmt"
	"os"
)

const (
	// DefaultMaxTriangles bounds memory use for hostile triangle counts
	// (about 180 MB of vertex data).
	DefaultMaxTriangles = 5_000_000

	// DefaultBinarySizeTolerance absorbs the trailing padding some exporters
	// append to binary STL files. It is a heuristic, not a format rule.
	DefaultBinarySizeTolerance = 256
)

// Parser turns raw model files into meshes. A Parser holds only limits and
// is safe for concurrent use; every call owns its own output.
type Parser struct {
	// MaxTriangles is the largest triangle count accepted from binary or
	// ASCII STL input. OBJ parsing stops once it is reached.
	MaxTriangles uint32

	// BinarySizeTolerance is the allowed difference in bytes between a
	// binary STL's length and the length implied by its triangle count.
	BinarySizeTolerance int
}

// NewParser creates a parser with the default limits
func NewParser() *Parser {
	return &Parser{
		MaxTriangles:        DefaultMaxTriangles,
		BinarySizeTolerance: DefaultBinarySizeTolerance,
	}
}

// Parse parses data as the given format
func (p *Parser) Parse(data []byte, format Format) (*Mesh, error) {
	switch format {
	case FormatBinary:
		return p.ParseBinary(data)
	case FormatASCII:
		return p.ParseASCII(string(data))
	case FormatOBJ:
		return p.ParseOBJ(string(data)), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// ParseSTL detects whether data is a binary or ASCII STL and parses it
func (p *Parser) ParseSTL(data []byte) (*Mesh, Format, error) {
	format := p.DetectFormat(data)
	m, err := p.Parse(data, format)
	if err != nil {
		return nil, format, err
	}
	return m, format, nil
}

// ParseFile reads a model file and parses it according to its extension.
// The returned format is the one that was actually parsed.
func (p *Parser) ParseFile(filename string) (*Mesh, Format, error) {
	format, sniff, err := FormatForPath(filename)
	if err != nil {
		return nil, 0, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read file: %w", err)
	}

	if sniff {
		return p.ParseSTL(data)
	}

	m, err := p.Parse(data, format)
	if err != nil {
		return nil, format, err
	}
	return m, format, nil
}

// DetectFormat classifies an STL buffer using the default limits
func DetectFormat(data []byte) Format {
	return NewParser().DetectFormat(data)
}

// ParseBinary parses a binary STL buffer using the default limits
func ParseBinary(data []byte) (*Mesh, error) {
	return NewParser().ParseBinary(data)
}

// ParseASCII parses ASCII STL text using the default limits
func ParseASCII(text string) (*Mesh, error) {
	return NewParser().ParseASCII(text)
}

// ParseOBJ parses OBJ text. Malformed faces are skipped, never reported.
func ParseOBJ(text string) *Mesh {
	return NewParser().ParseOBJ(text)
}
