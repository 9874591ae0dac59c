package handlers

import (
	"net/http"

	"lcoe/internal/api/models"
	"lcoe/internal/model"

	"github.com/gin-gonic/gin"
)

// ParameterHandler documents the calculation inputs
type ParameterHandler struct{}

// NewParameterHandler creates a new parameter handler
func NewParameterHandler() *ParameterHandler {
	return &ParameterHandler{}
}

// ListParameters handles GET /api/v1/parameters
func (h *ParameterHandler) ListParameters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"parameters": parameterCatalog()})
}

func parameterCatalog() []models.ParameterInfo {
	return []models.ParameterInfo{
		{
			Name:        "annual_yield",
			Group:       "input",
			Type:        "float",
			Unit:        "kWh/kW/year",
			Description: "Yearly energy yield per unit capacity before degradation",
		},
		{
			Name:        "capex",
			Group:       "economics",
			Type:        "float",
			Unit:        "currency/kW",
			Description: "Capital expenditure, spent at year 0 and not discounted",
		},
		{
			Name:        "opex",
			Group:       "economics",
			Type:        "float",
			Unit:        "currency/kW/year",
			Description: "Yearly operation and maintenance cost in year-0 terms",
		},
		{
			Name:        "tax_rate",
			Group:       "economics",
			Type:        "float",
			Unit:        "%",
			Description: "Corporate tax rate applied to opex and to the depreciation shield",
		},
		{
			Name:        "discount_rate",
			Group:       "economics",
			Type:        "float",
			Unit:        "%",
			Description: "Rate used to discount yearly costs and energy",
		},
		{
			Name:        "opex_escalation_rate",
			Group:       "economics",
			Type:        "float",
			Unit:        "%",
			Description: "Yearly growth of opex",
		},
		{
			Name:        "lifetime_years",
			Group:       "calculation",
			Type:        "int",
			Unit:        "year",
			Description: "Number of operating years",
			Default:     model.DefaultLifetimeYears,
		},
		{
			Name:        "degradation_rate",
			Group:       "calculation",
			Type:        "float",
			Unit:        "1/year",
			Description: "Fractional yearly decline in output (0.01 = 1%)",
			Default:     model.DefaultDegradationRate,
		},
		{
			Name:        "depreciation_years",
			Group:       "calculation",
			Type:        "int",
			Unit:        "year",
			Description: "Straight-line tax depreciation period; longer than the lifetime means every year is depreciated",
			Default:     model.DefaultDepreciationYears,
		},
	}
}
