package mesh

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormatASCII(t *testing.T) {
	text := encodeASCII("cube", cube(1))
	assert.Equal(t, FormatASCII, DetectFormat([]byte(text)))
}

func TestDetectFormatASCIILeadingWhitespace(t *testing.T) {
	text := "\n  \t" + encodeASCII("cube", cube(1))
	assert.Equal(t, FormatASCII, DetectFormat([]byte(text)))
}

func TestDetectFormatBinary(t *testing.T) {
	data := encodeBinary("exported by a tool", cube(1))
	assert.Equal(t, FormatBinary, DetectFormat(data))
}

func TestDetectFormatBinaryWithSolidHeader(t *testing.T) {
	// Some exporters start the binary header with "solid"
	data := encodeBinary("solid part", cube(1))
	assert.Equal(t, FormatBinary, DetectFormat(data))
}

func TestDetectFormatBinaryWithPadding(t *testing.T) {
	data := encodeBinary("solid padded", cube(1))
	data = append(data, make([]byte, 200)...)
	assert.Equal(t, FormatBinary, DetectFormat(data))

	data = append(data, make([]byte, 100)...)
	assert.Equal(t, FormatASCII, DetectFormat(data), "300 bytes of padding exceeds the tolerance")
}

func TestDetectFormatTolerance(t *testing.T) {
	data := encodeBinary("solid padded", cube(1))
	data = append(data, make([]byte, 20)...)

	p := NewParser()
	p.BinarySizeTolerance = 16
	assert.Equal(t, FormatASCII, p.DetectFormat(data))

	p.BinarySizeTolerance = 32
	assert.Equal(t, FormatBinary, p.DetectFormat(data))
}

func TestDetectFormatShortBuffer(t *testing.T) {
	assert.Equal(t, FormatBinary, DetectFormat(nil))
	assert.Equal(t, FormatBinary, DetectFormat(make([]byte, 83)))
	assert.Equal(t, FormatASCII, DetectFormat([]byte("solid x\nendsolid x\n")))
}

func TestDetectFormatHugeDeclaredCount(t *testing.T) {
	data := make([]byte, 84)
	copy(data, "solid")
	binary.LittleEndian.PutUint32(data[80:], 0xFFFFFFFF)
	assert.Equal(t, FormatASCII, DetectFormat(data))
}

func TestFormatForPath(t *testing.T) {
	format, sniff, err := FormatForPath("models/Part.STL")
	require.NoError(t, err)
	assert.True(t, sniff)
	assert.Equal(t, FormatBinary, format)

	format, sniff, err = FormatForPath("bracket.obj")
	require.NoError(t, err)
	assert.False(t, sniff)
	assert.Equal(t, FormatOBJ, format)

	_, _, err = FormatForPath("drawing.3mf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, _, err = FormatForPath("noextension")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "binary STL", FormatBinary.String())
	assert.Equal(t, "ASCII STL", FormatASCII.String())
	assert.Equal(t, "OBJ", FormatOBJ.String())
	assert.Equal(t, "Format(7)", Format(7).String())
}
