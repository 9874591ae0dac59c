package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks an out-of-domain parameter rejected at the boundary.
var ErrInvalidInput = errors.New("invalid input")

// Default calculation settings.
const (
	DefaultLifetimeYears     = 25
	DefaultDegradationRate   = 0.01
	DefaultDepreciationYears = 20

	// MaxLifetimeYears bounds the horizon accepted at the boundary.
	MaxLifetimeYears = 1000
)

// Economics defines the economic parameters of an asset.
// Units:
// - Capex: currency per unit capacity (e.g. €/kW)
// - Opex: currency per unit capacity per year (e.g. €/kW/year)
// - TaxRate, DiscountRate, OpexEscalationRate: percent (25 means 25%)
type Economics struct {
	Capex              float64
	Opex               float64
	TaxRate            float64
	DiscountRate       float64
	OpexEscalationRate float64
}

// CalcConfig holds the horizon settings of a calculation.
// DegradationRate is a fraction per year (0.01 means 1% per year).
type CalcConfig struct {
	LifetimeYears     int
	DegradationRate   float64
	DepreciationYears int
}

func DefaultCalcConfig() CalcConfig {
	return CalcConfig{
		LifetimeYears:     DefaultLifetimeYears,
		DegradationRate:   DefaultDegradationRate,
		DepreciationYears: DefaultDepreciationYears,
	}
}

// Validate checks the economics for physically meaningful values.
// The calculator never calls it; callers run it before computing.
func (e Economics) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"Capex", e.Capex},
		{"Opex", e.Opex},
		{"TaxRate", e.TaxRate},
		{"DiscountRate", e.DiscountRate},
		{"OpexEscalationRate", e.OpexEscalationRate},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidInput, f.name)
		}
	}
	if e.Capex < 0 {
		return fmt.Errorf("%w: Capex must be >= 0", ErrInvalidInput)
	}
	if e.Opex < 0 {
		return fmt.Errorf("%w: Opex must be >= 0", ErrInvalidInput)
	}
	if e.DiscountRate <= -100 {
		return fmt.Errorf("%w: DiscountRate must be > -100", ErrInvalidInput)
	}
	return nil
}

func (c CalcConfig) Validate() error {
	if c.LifetimeYears < 1 || c.LifetimeYears > MaxLifetimeYears {
		return fmt.Errorf("%w: LifetimeYears must be in [1, %d]", ErrInvalidInput, MaxLifetimeYears)
	}
	if c.DepreciationYears < 1 {
		return fmt.Errorf("%w: DepreciationYears must be >= 1", ErrInvalidInput)
	}
	if math.IsNaN(c.DegradationRate) || c.DegradationRate < 0 || c.DegradationRate >= 1 {
		return fmt.Errorf("%w: DegradationRate must be in [0, 1)", ErrInvalidInput)
	}
	return nil
}

// ValidateYield checks the annual yield before degradation.
func ValidateYield(annualYield float64) error {
	if math.IsNaN(annualYield) || math.IsInf(annualYield, 0) || annualYield <= 0 {
		return fmt.Errorf("%w: annual yield must be a positive finite number", ErrInvalidInput)
	}
	return nil
}
