package models

// LCOERequest represents the request body for computing an LCOE.
// Either AssetID or AnnualYield+Economics must be given; explicit values override the asset preset.
type LCOERequest struct {
	Name          string           `json:"name,omitempty"`
	AssetID       string           `json:"asset_id,omitempty"`
	AnnualYield   *float64         `json:"annual_yield,omitempty"` // energy per unit capacity per year, before degradation
	Economics     *EconomicsInput  `json:"economics,omitempty"`
	Calculation   CalculationInput `json:"calculation,omitempty"`
	IncludeLedger bool             `json:"include_ledger,omitempty"`

	// SkipValidation passes the inputs to the calculator as-is.
	SkipValidation bool `json:"skip_validation,omitempty"`
}

// EconomicsInput holds the economic parameters. Rates are percentages (25 = 25%).
// Every non-nil field, including an explicit 0, replaces the preset value; nil fields keep it.
type EconomicsInput struct {
	Capex              *float64 `json:"capex,omitempty"`
	Opex               *float64 `json:"opex,omitempty"`
	TaxRate            *float64 `json:"tax_rate,omitempty"`
	DiscountRate       *float64 `json:"discount_rate,omitempty"`
	OpexEscalationRate *float64 `json:"opex_escalation_rate,omitempty"`
}

// CalculationInput holds optional horizon settings; nil fields take the defaults.
type CalculationInput struct {
	LifetimeYears     *int     `json:"lifetime_years,omitempty"`
	DegradationRate   *float64 `json:"degradation_rate,omitempty"`
	DepreciationYears *int     `json:"depreciation_years,omitempty"`
}
