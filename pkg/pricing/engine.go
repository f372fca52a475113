package pricing

import (
	"fmt"
	"math"
)

// DefaultBaseFee is charged once per printed unit
const DefaultBaseFee = 4.00

// RateTable maps channel and tier to a price per gram
type RateTable map[Channel]map[Tier]float64

// DefaultRates returns the standard PLA rates per gram
func DefaultRates() RateTable {
	return RateTable{
		WalkIn: {Student: 0.10, Faculty: 0.25, General: 0.35},
		Online: {Student: 0.12, Faculty: 0.30, General: 0.42},
	}
}

// Rate looks up the price per gram for a channel and tier
func (r RateTable) Rate(c Channel, t Tier) (float64, error) {
	rate, ok := r[c][t]
	if !ok {
		return 0, fmt.Errorf("%w: no rate for %v/%v", ErrInvalidSelection, c, t)
	}
	return rate, nil
}

// Quote is a price for a number of identical prints
type Quote struct {
	EstimatedMassGrams float64
	UnitRate           float64 // price per gram
	BaseFee            float64
	UnitPrice          float64
	Quantity           int
	TotalPrice         float64
}

// Engine prices a mass. It performs no rounding; that is left to display.
type Engine struct {
	BaseFee float64
	Rates   RateTable
}

// NewEngine creates an engine with the given base fee and rates
func NewEngine(baseFee float64, rates RateTable) *Engine {
	return &Engine{
		BaseFee: baseFee,
		Rates:   rates,
	}
}

// DefaultEngine creates an engine with the standard fee and rates
func DefaultEngine() *Engine {
	return NewEngine(DefaultBaseFee, DefaultRates())
}

// Quote prices quantity prints of massGrams each. Quantity is not clamped;
// anything below one is rejected.
func (e *Engine) Quote(massGrams float64, c Channel, t Tier, quantity int) (Quote, error) {
	if math.IsNaN(massGrams) || math.IsInf(massGrams, 0) || massGrams < 0 {
		return Quote{}, fmt.Errorf("%w: mass %v", ErrInvalidSelection, massGrams)
	}
	if quantity < MinQuantity {
		return Quote{}, fmt.Errorf("%w: quantity %d", ErrInvalidSelection, quantity)
	}
	rate, err := e.Rates.Rate(c, t)
	if err != nil {
		return Quote{}, err
	}

	unit := e.BaseFee + massGrams*rate
	return Quote{
		EstimatedMassGrams: massGrams,
		UnitRate:           rate,
		BaseFee:            e.BaseFee,
		UnitPrice:          unit,
		Quantity:           quantity,
		TotalPrice:         unit * float64(quantity),
	}, nil
}

// NewQuote prices a mass with the standard fee and rates
func NewQuote(massGrams float64, c Channel, t Tier, quantity int) (Quote, error) {
	return DefaultEngine().Quote(massGrams, c, t, quantity)
}

// Calculator turns a model volume and a selection into a quote
type Calculator struct {
	Estimator *Estimator
	Engine    *Engine
}

// NewCalculator combines an estimator and an engine
func NewCalculator(est *Estimator, eng *Engine) *Calculator {
	return &Calculator{Estimator: est, Engine: eng}
}

// Calculate validates the selection, estimates the mass and prices it
func (c *Calculator) Calculate(volumeMm3 float64, sel Selection) (Quote, error) {
	if err := sel.Validate(); err != nil {
		return Quote{}, err
	}
	mass := c.Estimator.EstimateMass(volumeMm3, sel.InfillPercent)
	return c.Engine.Quote(mass, sel.Channel, sel.Tier, sel.Quantity)
}
