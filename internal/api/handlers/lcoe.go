package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"lcoe/internal/api/models"
	"lcoe/internal/config"
	"lcoe/internal/lcoe"
	"lcoe/internal/model"
	"lcoe/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LCOEHandler handles LCOE computation requests
type LCOEHandler struct {
	results *store.ResultStore
	assets  *AssetHandler
	logger  zerolog.Logger
}

// NewLCOEHandler creates a new LCOE handler
func NewLCOEHandler(results *store.ResultStore, assets *AssetHandler, logger zerolog.Logger) *LCOEHandler {
	return &LCOEHandler{
		results: results,
		assets:  assets,
		logger:  logger,
	}
}

// ComputeLCOE handles POST /api/v1/lcoe
func (h *LCOEHandler) ComputeLCOE(c *gin.Context) {
	var req models.LCOERequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	name, yield, econ, err := h.resolveInputs(req)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			return
		}
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}
	calc := config.CalculationConfig{
		LifetimeYears:     req.Calculation.LifetimeYears,
		DegradationRate:   req.Calculation.DegradationRate,
		DepreciationYears: req.Calculation.DepreciationYears,
	}.ToModel()

	// The ledger holds one row per year, so the horizon is bounded even without validation.
	if calc.LifetimeYears > model.MaxLifetimeYears {
		writeError(c, http.StatusBadRequest, "INVALID_INPUT", fmt.Sprintf("lifetime_years must be <= %d, got %d", model.MaxLifetimeYears, calc.LifetimeYears), nil)
		return
	}
	if !req.SkipValidation {
		if err := validateInputs(yield, econ, calc); err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error(), nil)
			return
		}
	}

	res, err := lcoe.Run(yield, econ, calc)
	if err != nil {
		if errors.Is(err, lcoe.ErrInvalidDivisor) {
			writeError(c, http.StatusUnprocessableEntity, "INVALID_DIVISOR", err.Error(), nil)
			return
		}
		h.logger.Error().Err(err).Msg("LCOEHandler: computation failed")
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}
	if math.IsNaN(res.LCOE) || math.IsInf(res.LCOE, 0) {
		writeError(c, http.StatusUnprocessableEntity, "NON_FINITE_RESULT", "computation produced a non-finite LCOE", map[string]interface{}{
			"total_cost":   finiteOrNil(res.TotalCost),
			"total_energy": finiteOrNil(res.TotalEnergy),
		})
		return
	}

	rec := store.Record{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		AnnualYield: yield,
		Economics:   econ,
		Calc:        calc,
		Result:      res,
	}
	h.results.Put(rec)

	h.logger.Info().
		Str("id", rec.ID).
		Str("name", name).
		Float64("lcoe", res.LCOE).
		Int("lifetime_years", calc.LifetimeYears).
		Msg("LCOEHandler: computed")

	c.JSON(http.StatusOK, buildResponse(rec, name, req.IncludeLedger))
}

// GetLedger handles GET /api/v1/lcoe/:id/ledger
func (h *LCOEHandler) GetLedger(c *gin.Context) {
	id := c.Param("id")
	rec, ok := h.results.Get(id)
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "no computation with id "+id, nil)
		return
	}
	c.JSON(http.StatusOK, models.LedgerResponse{
		ID:     rec.ID,
		LCOE:   rec.Result.LCOE,
		Ledger: ledgerRows(rec.Result.Ledger),
	})
}

func (h *LCOEHandler) resolveInputs(req models.LCOERequest) (string, float64, model.Economics, error) {
	name := req.Name
	var base config.EconomicsConfig
	var yield float64
	haveYield, haveEcon := false, false

	if req.AssetID != "" {
		asset, err := h.assets.Load(req.AssetID)
		if err != nil {
			return "", 0, model.Economics{}, err
		}
		if name == "" {
			name = asset.Name
		}
		base = asset.Economics
		yield = asset.AnnualYield
		haveYield, haveEcon = true, true
	}
	if req.AnnualYield != nil {
		yield = *req.AnnualYield
		haveYield = true
	}
	if req.Economics != nil {
		base = overlayEconomics(base, *req.Economics)
		haveEcon = true
	}

	if !haveYield {
		return "", 0, model.Economics{}, errors.New("annual_yield or asset_id is required")
	}
	if !haveEcon {
		return "", 0, model.Economics{}, errors.New("economics or asset_id is required")
	}
	return name, yield, base.ToModel(), nil
}

// overlayEconomics replaces every field the request sets, zero included.
func overlayEconomics(base config.EconomicsConfig, in models.EconomicsInput) config.EconomicsConfig {
	out := base
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&out.Capex, in.Capex)
	set(&out.Opex, in.Opex)
	set(&out.TaxRate, in.TaxRate)
	set(&out.DiscountRate, in.DiscountRate)
	set(&out.OpexEscalationRate, in.OpexEscalationRate)
	return out
}

func validateInputs(yield float64, econ model.Economics, calc model.CalcConfig) error {
	if err := model.ValidateYield(yield); err != nil {
		return err
	}
	if err := econ.Validate(); err != nil {
		return err
	}
	return calc.Validate()
}

func buildResponse(rec store.Record, name string, includeLedger bool) models.LCOEResponse {
	res := rec.Result
	out := models.LCOEResponse{
		ID:        rec.ID,
		Name:      name,
		CreatedAt: rec.CreatedAt,
		LCOE:      res.LCOE,
		Inputs: models.LCOEInputs{
			AnnualYield: rec.AnnualYield,
			Economics: models.Economics{
				Capex:              rec.Economics.Capex,
				Opex:               rec.Economics.Opex,
				TaxRate:            rec.Economics.TaxRate,
				DiscountRate:       rec.Economics.DiscountRate,
				OpexEscalationRate: rec.Economics.OpexEscalationRate,
			},
			Calculation: models.Calculation{
				LifetimeYears:     rec.Calc.LifetimeYears,
				DegradationRate:   rec.Calc.DegradationRate,
				DepreciationYears: rec.Calc.DepreciationYears,
			},
		},
		Summary: models.LCOESummary{
			Depreciation:   res.Depreciation,
			TotalCost:      res.TotalCost,
			TotalEnergy:    res.TotalEnergy,
			TotalOpex:      res.TotalOpex,
			TotalTaxShield: res.TotalTaxShield,
		},
	}
	if includeLedger {
		out.Ledger = ledgerRows(res.Ledger)
	}
	return out
}

func ledgerRows(ledger []lcoe.YearRow) []models.LedgerRow {
	rows := make([]models.LedgerRow, 0, len(ledger))
	for _, r := range ledger {
		rows = append(rows, models.LedgerRow{
			Year:             r.Year,
			DiscountFactor:   r.DiscountFactor,
			OpexCost:         r.OpexCost,
			TaxShield:        r.TaxShield,
			Energy:           r.Energy,
			DiscountedEnergy: r.DiscountedEnergy,
			CumCost:          r.CumCost,
			CumEnergy:        r.CumEnergy,
		})
	}
	return rows
}

func writeError(c *gin.Context, status int, code, msg string, details map[string]interface{}) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: msg,
			Details: details,
		},
	})
}

// finiteOrNil keeps NaN and Inf out of JSON bodies.
func finiteOrNil(x float64) interface{} {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return x
}
