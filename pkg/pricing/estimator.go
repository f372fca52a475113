package pricing

// Material describes the filament a print is estimated in
type Material struct {
	Name string

	// Density in g/cm³
	Density float64

	// ShellFraction is the share of the volume printed solid (walls, top
	// and bottom layers) regardless of infill.
	ShellFraction float64
}

// PLA is the standard material
var PLA = Material{
	Name:          "PLA",
	Density:       1.24,
	ShellFraction: 0.12,
}

// Estimator converts model volume into printed mass
type Estimator struct {
	Material Material
}

// NewEstimator creates an estimator for the given material
func NewEstimator(m Material) *Estimator {
	return &Estimator{Material: m}
}

// EffectiveFill returns the fraction of the model volume that ends up as
// material for the given infill percentage.
func (e *Estimator) EffectiveFill(infillPercent uint8) float64 {
	shell := e.Material.ShellFraction
	return shell + (1-shell)*(float64(infillPercent)/100)
}

// EstimateMass returns the estimated printed mass in grams
func (e *Estimator) EstimateMass(volumeMm3 float64, infillPercent uint8) float64 {
	volumeCm3 := volumeMm3 / 1000
	return volumeCm3 * e.Material.Density * e.EffectiveFill(infillPercent)
}

// EstimateMass estimates the mass of a PLA print in grams
func EstimateMass(volumeMm3 float64, infillPercent uint8) float64 {
	return NewEstimator(PLA).EstimateMass(volumeMm3, infillPercent)
}
