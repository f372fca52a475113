package analysis

import (
	"fmt"

	"github.com/philipparndt/stlquote/pkg/geometry"
	"github.com/philipparndt/stlquote/pkg/mesh"
	"github.com/philipparndt/stlquote/pkg/pricing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MeasurementResult contains the model figures shown next to a quote
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	VolumeMm3     float64
	VolumeCm3     float64
	TriangleCount int
}

// AnalyzeMesh collects the displayable measurements of a parsed mesh
func AnalyzeMesh(m *mesh.Mesh) *MeasurementResult {
	return &MeasurementResult{
		BoundingBox:   m.Bounds,
		Dimensions:    m.Bounds.Size(),
		VolumeMm3:     m.Volume,
		VolumeCm3:     m.Volume / 1000,
		TriangleCount: m.TriangleCount,
	}
}

// Formatter renders measurements and quotes for display. All rounding
// happens here; the parsers and the pricing engine never round.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter using the number conventions of lang
func NewFormatter(lang language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(lang)}
}

// FormatDimensions formats the bounding box size, e.g. "12.0 × 3.5 × 4.0 mm"
func (f *Formatter) FormatDimensions(size geometry.Vector3) string {
	return f.printer.Sprintf("%.1f × %.1f × %.1f mm", size.X, size.Y, size.Z)
}

// FormatVolume formats a volume given in mm³ as cm³
func (f *Formatter) FormatVolume(volumeMm3 float64) string {
	return f.printer.Sprintf("%.1f cm³", volumeMm3/1000)
}

// FormatTriangles formats a triangle count with digit grouping
func (f *Formatter) FormatTriangles(count int) string {
	return f.printer.Sprintf("%d", count)
}

// FormatMass formats a mass in grams
func (f *Formatter) FormatMass(grams float64) string {
	return f.printer.Sprintf("%.1f g", grams)
}

// FormatRate formats a price per gram in cents
func (f *Formatter) FormatRate(ratePerGram float64) string {
	return f.printer.Sprintf("%.0f¢/g", ratePerGram*100)
}

// FormatPrice formats a price in dollars
func (f *Formatter) FormatPrice(price float64) string {
	return f.printer.Sprintf("$%.2f", price)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// QuoteLines returns label/value pairs describing a quote, in display order.
// The quantity line is only present for more than one print.
func (f *Formatter) QuoteLines(sel pricing.Selection, q pricing.Quote) [][2]string {
	lines := [][2]string{
		{"Order", fmt.Sprintf("%s, %s", sel.Channel, sel.Tier)},
		{"Infill", fmt.Sprintf("%d%%", sel.InfillPercent)},
		{"Estimated weight", f.FormatMass(q.EstimatedMassGrams)},
		{"Material rate", f.FormatRate(q.UnitRate)},
		{"Base fee", f.FormatPrice(q.BaseFee)},
		{"Unit price", f.FormatPrice(q.UnitPrice)},
	}
	if q.Quantity > 1 {
		lines = append(lines, [2]string{"Quantity", fmt.Sprintf("× %d", q.Quantity)})
	}
	lines = append(lines, [2]string{"Total", f.FormatPrice(q.TotalPrice)})
	return lines
}
