// Package lcoe computes the Levelized Cost of Energy of a generating asset.
//
// Percent fields of model.Economics are percentages (25 means 25%) and are
// divided by 100 inside every formula step. Failures are reported as errors
// wrapping ErrInvalidDivisor rather than as an infinite or NaN result; NaN or
// infinite inputs are not rejected and propagate through the arithmetic.
package lcoe

import (
	"errors"
	"fmt"
	"math"

	"lcoe/internal/model"
)

// ErrInvalidDivisor is returned when the calculation would divide by zero:
// a non-positive depreciation period or a discounted energy sum of zero.
var ErrInvalidDivisor = errors.New("invalid divisor")

// Compute returns the LCOE in currency per unit of energy for an asset
// producing annualYield per unit capacity in year one, before degradation.
//
// Year 0 carries the undiscounted capex. For each year 1..LifetimeYears:
//  1. numerator += after-tax escalated opex, discounted
//  2. numerator -= depreciation tax shield, discounted (only while year <= DepreciationYears)
//  3. denominator += degraded yield, discounted
//
// The steps run in that order so results are reproducible bit for bit.
// A DepreciationYears larger than LifetimeYears applies the shield in every year.
func Compute(annualYield float64, econ model.Economics, cfg model.CalcConfig) (float64, error) {
	if cfg.DepreciationYears <= 0 {
		return 0, fmt.Errorf("%w: depreciation years must be > 0, got %d", ErrInvalidDivisor, cfg.DepreciationYears)
	}
	depreciation := econ.Capex / float64(cfg.DepreciationYears)

	num := econ.Capex
	den := 0.0
	for year := 1; year <= cfg.LifetimeYears; year++ {
		y := float64(year)
		df := math.Pow(1+econ.DiscountRate/100, y)

		num += econ.Opex * (1 - econ.TaxRate/100) * math.Pow(1+econ.OpexEscalationRate/100, y) / df
		if year <= cfg.DepreciationYears {
			num -= depreciation * econ.TaxRate / 100 / df
		}
		den += annualYield * math.Pow(1-cfg.DegradationRate, y) / df
	}

	if den == 0 {
		return 0, fmt.Errorf("%w: discounted energy over %d years sums to zero", ErrInvalidDivisor, cfg.LifetimeYears)
	}
	return num / den, nil
}
