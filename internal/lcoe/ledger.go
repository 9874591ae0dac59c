package lcoe

import (
	"fmt"
	"math"

	"lcoe/internal/model"
)

// YearRow is one year of the discounted cash/energy ledger.
// Cost and energy fields are already discounted unless named otherwise.
type YearRow struct {
	Year int

	DiscountFactor float64

	OpexCost  float64
	TaxShield float64

	Energy           float64 // degraded, undiscounted
	DiscountedEnergy float64

	CumCost   float64
	CumEnergy float64
}

// Result bundles the LCOE with the per-year ledger that produced it.
type Result struct {
	LCOE   float64
	Ledger []YearRow

	// Depreciation is the straight-line annual depreciation amount.
	Depreciation float64

	TotalCost      float64 // capex + discounted opex - discounted tax shield
	TotalEnergy    float64
	TotalOpex      float64
	TotalTaxShield float64
}

// Run walks the same yearly loop as Compute and records every step.
// Result.LCOE is identical to what Compute returns for the same inputs.
func Run(annualYield float64, econ model.Economics, cfg model.CalcConfig) (*Result, error) {
	if cfg.DepreciationYears <= 0 {
		return nil, fmt.Errorf("%w: depreciation years must be > 0, got %d", ErrInvalidDivisor, cfg.DepreciationYears)
	}
	depreciation := econ.Capex / float64(cfg.DepreciationYears)

	n := cfg.LifetimeYears
	if n < 0 {
		n = 0
	}
	if n > model.MaxLifetimeYears {
		n = model.MaxLifetimeYears
	}
	res := &Result{
		Ledger:       make([]YearRow, 0, n),
		Depreciation: depreciation,
	}

	num := econ.Capex
	den := 0.0
	for year := 1; year <= cfg.LifetimeYears; year++ {
		y := float64(year)
		df := math.Pow(1+econ.DiscountRate/100, y)

		opex := econ.Opex * (1 - econ.TaxRate/100) * math.Pow(1+econ.OpexEscalationRate/100, y) / df
		num += opex

		shield := 0.0
		if year <= cfg.DepreciationYears {
			shield = depreciation * econ.TaxRate / 100 / df
			num -= shield
		}

		energy := annualYield * math.Pow(1-cfg.DegradationRate, y)
		discounted := energy / df
		den += discounted

		res.TotalOpex += opex
		res.TotalTaxShield += shield
		res.Ledger = append(res.Ledger, YearRow{
			Year:             year,
			DiscountFactor:   df,
			OpexCost:         opex,
			TaxShield:        shield,
			Energy:           energy,
			DiscountedEnergy: discounted,
			CumCost:          num,
			CumEnergy:        den,
		})
	}

	if den == 0 {
		return nil, fmt.Errorf("%w: discounted energy over %d years sums to zero", ErrInvalidDivisor, cfg.LifetimeYears)
	}
	res.TotalCost = num
	res.TotalEnergy = den
	res.LCOE = num / den
	return res, nil
}
