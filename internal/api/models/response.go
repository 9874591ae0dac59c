package models

import "time"

// LCOEResponse represents the response from an LCOE computation
type LCOEResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	LCOE      float64     `json:"lcoe"`
	Inputs    LCOEInputs  `json:"inputs"`
	Summary   LCOESummary `json:"summary"`
	Ledger    []LedgerRow `json:"ledger,omitempty"`
}

// LCOEInputs echoes the inputs after presets and defaults were applied
type LCOEInputs struct {
	AnnualYield float64     `json:"annual_yield"`
	Economics   Economics   `json:"economics"`
	Calculation Calculation `json:"calculation"`
}

// Economics is the resolved economic parameters. Rates are percentages.
type Economics struct {
	Capex              float64 `json:"capex"`
	Opex               float64 `json:"opex"`
	TaxRate            float64 `json:"tax_rate"`
	DiscountRate       float64 `json:"discount_rate"`
	OpexEscalationRate float64 `json:"opex_escalation_rate"`
}

// Calculation is the resolved horizon settings
type Calculation struct {
	LifetimeYears     int     `json:"lifetime_years"`
	DegradationRate   float64 `json:"degradation_rate"`
	DepreciationYears int     `json:"depreciation_years"`
}

// LCOESummary contains the discounted totals behind the LCOE
type LCOESummary struct {
	Depreciation   float64 `json:"depreciation"`
	TotalCost      float64 `json:"total_cost"`
	TotalEnergy    float64 `json:"total_energy"`
	TotalOpex      float64 `json:"total_opex"`
	TotalTaxShield float64 `json:"total_tax_shield"`
}

// LedgerRow represents one year in the LCOE ledger
type LedgerRow struct {
	Year             int     `json:"year"`
	DiscountFactor   float64 `json:"discount_factor"`
	OpexCost         float64 `json:"opex_cost"`
	TaxShield        float64 `json:"tax_shield"`
	Energy           float64 `json:"energy"`
	DiscountedEnergy float64 `json:"discounted_energy"`
	CumCost          float64 `json:"cum_cost"`
	CumEnergy        float64 `json:"cum_energy"`
}

// LedgerResponse is returned by GET /api/v1/lcoe/:id/ledger
type LedgerResponse struct {
	ID     string      `json:"id"`
	LCOE   float64     `json:"lcoe"`
	Ledger []LedgerRow `json:"ledger"`
}

// AssetInfo represents information about an asset preset
type AssetInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Technology  string    `json:"technology,omitempty"`
	AnnualYield float64   `json:"annual_yield"`
	Economics   Economics `json:"economics"`
}

// ParameterInfo describes a calculation parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Group       string      `json:"group"` // "input", "economics", "calculation"
	Type        string      `json:"type"`  // "float", "int"
	Unit        string      `json:"unit"`
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
