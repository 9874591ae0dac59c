package lcoe

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcoe/internal/model"
)

func referenceEconomics() model.Economics {
	return model.Economics{
		Capex:              1000,
		Opex:               20,
		TaxRate:            25,
		DiscountRate:       5,
		OpexEscalationRate: 2,
	}
}

func TestCompute_Golden(t *testing.T) {
	tests := []struct {
		name  string
		yield float64
		econ  model.Economics
		cfg   model.CalcConfig
		want  float64
	}{
		{
			name:  "utility pv defaults",
			yield: 1500,
			econ:  referenceEconomics(),
			cfg:   model.DefaultCalcConfig(),
			want:  0.05807153835892489,
		},
		{
			name:  "depreciation longer than lifetime",
			yield: 1200,
			econ: model.Economics{
				Capex:              800,
				Opex:               15,
				TaxRate:            30,
				DiscountRate:       6,
				OpexEscalationRate: 1.5,
			},
			cfg:  model.CalcConfig{LifetimeYears: 30, DegradationRate: 0.005, DepreciationYears: 35},
			want: 0.056218518327088386,
		},
		{
			name:  "short horizon with depreciation cutoff",
			yield: 1500,
			econ:  referenceEconomics(),
			cfg:   model.CalcConfig{LifetimeYears: 3, DegradationRate: 0.01, DepreciationYears: 2},
			want:  0.20225857434082667,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.yield, tt.econ, tt.cfg)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-9)
		})
	}
}

func TestCompute_NoCostsReducesToSimpleRatio(t *testing.T) {
	econ := model.Economics{Capex: 1000}
	cfg := model.CalcConfig{LifetimeYears: 25, DegradationRate: 0, DepreciationYears: 20}

	got, err := Compute(1000, econ, cfg)
	require.NoError(t, err)
	assert.Equal(t, econ.Capex/(1000*float64(cfg.LifetimeYears)), got)
}

func TestCompute_MonotonicInCapex(t *testing.T) {
	cfg := model.DefaultCalcConfig()
	prev := math.Inf(-1)
	for _, capex := range []float64{0, 500, 1000, 1500, 3000} {
		econ := referenceEconomics()
		econ.Capex = capex
		got, err := Compute(1500, econ, cfg)
		require.NoError(t, err)
		assert.Greater(t, got, prev, "capex=%v", capex)
		prev = got
	}
}

func TestCompute_MonotonicInYield(t *testing.T) {
	cfg := model.DefaultCalcConfig()
	prev := math.Inf(1)
	for _, yield := range []float64{500, 1000, 1500, 2200} {
		got, err := Compute(yield, referenceEconomics(), cfg)
		require.NoError(t, err)
		assert.Less(t, got, prev, "yield=%v", yield)
		prev = got
	}
}

func TestCompute_MonotonicInDegradation(t *testing.T) {
	prev := math.Inf(-1)
	for _, deg := range []float64{0, 0.005, 0.01, 0.02, 0.05} {
		cfg := model.DefaultCalcConfig()
		cfg.DegradationRate = deg
		got, err := Compute(1500, referenceEconomics(), cfg)
		require.NoError(t, err)
		assert.Greater(t, got, prev, "deg=%v", deg)
		prev = got
	}
}

func TestCompute_DepreciationCutoff(t *testing.T) {
	cfg := model.CalcConfig{LifetimeYears: 10, DegradationRate: 0.01, DepreciationYears: 4}
	res, err := Run(1500, referenceEconomics(), cfg)
	require.NoError(t, err)

	for _, row := range res.Ledger {
		if row.Year <= cfg.DepreciationYears {
			assert.Greater(t, row.TaxShield, 0.0, "year %d", row.Year)
		} else {
			assert.Zero(t, row.TaxShield, "year %d", row.Year)
		}
	}

	full := cfg
	full.DepreciationYears = cfg.LifetimeYears
	econ := referenceEconomics()
	econ.Opex = 0
	shielded, err := Compute(1500, econ, full)
	require.NoError(t, err)

	econ.TaxRate = 0
	unshielded, err := Compute(1500, econ, full)
	require.NoError(t, err)
	assert.Greater(t, unshielded, shielded)
}

func TestCompute_DepreciationBeyondLifetimeAppliesEveryYear(t *testing.T) {
	cfg := model.CalcConfig{LifetimeYears: 5, DegradationRate: 0.01, DepreciationYears: 8}
	res, err := Run(1500, referenceEconomics(), cfg)
	require.NoError(t, err)
	require.Len(t, res.Ledger, 5)
	for _, row := range res.Ledger {
		assert.Greater(t, row.TaxShield, 0.0, "year %d", row.Year)
	}
	assert.InDelta(t, 1000.0/8, res.Depreciation, 1e-12)
}

func TestCompute_InvalidDivisor(t *testing.T) {
	tests := []struct {
		name  string
		yield float64
		cfg   model.CalcConfig
	}{
		{"zero yield", 0, model.DefaultCalcConfig()},
		{"zero depreciation years", 1500, model.CalcConfig{LifetimeYears: 25, DegradationRate: 0.01, DepreciationYears: 0}},
		{"negative depreciation years", 1500, model.CalcConfig{LifetimeYears: 25, DegradationRate: 0.01, DepreciationYears: -3}},
		{"zero lifetime", 1500, model.CalcConfig{LifetimeYears: 0, DegradationRate: 0.01, DepreciationYears: 20}},
		{"total degradation", 1500, model.CalcConfig{LifetimeYears: 25, DegradationRate: 1, DepreciationYears: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.yield, referenceEconomics(), tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDivisor)
			assert.Zero(t, got)

			res, err := Run(tt.yield, referenceEconomics(), tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidDivisor)
			assert.Nil(t, res)
		})
	}
}

func TestCompute_PermissiveInputs(t *testing.T) {
	t.Run("negative yield passes through", func(t *testing.T) {
		got, err := Compute(-1500, referenceEconomics(), model.DefaultCalcConfig())
		require.NoError(t, err)
		assert.InEpsilon(t, -0.05807153835892489, got, 1e-9)
	})

	t.Run("NaN propagates", func(t *testing.T) {
		got, err := Compute(math.NaN(), referenceEconomics(), model.DefaultCalcConfig())
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	})

	t.Run("infinite capex yields NaN", func(t *testing.T) {
		econ := referenceEconomics()
		econ.Capex = math.Inf(1)
		got, err := Compute(1500, econ, model.DefaultCalcConfig())
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	})
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	econ := referenceEconomics()
	cfg := model.DefaultCalcConfig()
	_, err := Compute(1500, econ, cfg)
	require.NoError(t, err)
	assert.Equal(t, referenceEconomics(), econ)
	assert.Equal(t, model.DefaultCalcConfig(), cfg)
}

func TestCompute_ConcurrentCallsAgree(t *testing.T) {
	want, err := Compute(1500, referenceEconomics(), model.DefaultCalcConfig())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Compute(1500, referenceEconomics(), model.DefaultCalcConfig())
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
