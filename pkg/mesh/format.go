package mesh

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies which parser handles a buffer
type Format int

const (
	FormatBinary Format = iota
	FormatASCII
	FormatOBJ
)

// String returns a human readable format name
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary STL"
	case FormatASCII:
		return "ASCII STL"
	case FormatOBJ:
		return "OBJ"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

const (
	headerSize = 80
	// preambleSize is the header plus the uint32 triangle count.
	preambleSize = headerSize + 4
	recordSize   = 50
)

// DetectFormat classifies an STL buffer as binary or ASCII.
//
// A buffer is ASCII only if its header starts with "solid" and it does not
// look like a binary STL by size; some binary exporters write "solid" into
// the 80-byte header.
func (p *Parser) DetectFormat(data []byte) Format {
	header := data[:min(len(data), headerSize)]
	if bytes.HasPrefix(bytes.TrimSpace(header), []byte("solid")) && !p.isBinarySized(data) {
		return FormatASCII
	}
	return FormatBinary
}

// isBinarySized reports whether the buffer length matches the triangle count
// declared at offset 80, within the configured tolerance.
func (p *Parser) isBinarySized(data []byte) bool {
	if len(data) < preambleSize {
		return false
	}
	n := binary.LittleEndian.Uint32(data[headerSize:preambleSize])
	expected := int64(preambleSize) + int64(recordSize)*int64(n)
	diff := int64(len(data)) - expected
	if diff < 0 {
		diff = -diff
	}
	return diff < int64(p.BinarySizeTolerance)
}

// FormatForPath maps a file name to a format using its extension.
// STL files still need content sniffing, so sniff is true for them and the
// caller should use DetectFormat on the contents. Any extension other than .stl and .obj
// yields ErrUnsupportedFormat.
func FormatForPath(path string) (format Format, sniff bool, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".stl":
		return FormatBinary, true, nil
	case ".obj":
		return FormatOBJ, false, nil
	default:
		return 0, false, fmt.Errorf("%w: %q (expected .stl or .obj)", ErrUnsupportedFormat, ext)
	}
}
