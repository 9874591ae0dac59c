package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lcoe/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML).
type Config struct {
	Name string `yaml:"name"`
	// Optional: load yield and economics from an asset preset (e.g. examples/assets/*.yaml).
	// Non-zero fields set directly in the scenario override the preset.
	AssetFile   string            `yaml:"asset_file"`
	AnnualYield float64           `yaml:"annual_yield"`
	Economics   EconomicsConfig   `yaml:"economics"`
	Calculation CalculationConfig `yaml:"calculation"`
}

// EconomicsConfig mirrors model.Economics. Rates are percentages.
type EconomicsConfig struct {
	Capex              float64 `yaml:"capex"`
	Opex               float64 `yaml:"opex"`
	TaxRate            float64 `yaml:"tax_rate"`
	DiscountRate       float64 `yaml:"discount_rate"`
	OpexEscalationRate float64 `yaml:"opex_escalation_rate"`
}

// CalculationConfig uses pointers so an explicit 0 is distinguishable from unset.
type CalculationConfig struct {
	LifetimeYears     *int     `yaml:"lifetime_years"`
	DegradationRate   *float64 `yaml:"degradation_rate"`
	DepreciationYears *int     `yaml:"depreciation_years"`
}

// AssetConfig is the shape of an asset preset file under the `asset` key.
type AssetConfig struct {
	Name        string          `yaml:"name"`
	Technology  string          `yaml:"technology"`
	AnnualYield float64         `yaml:"annual_yield"`
	Economics   EconomicsConfig `yaml:"economics"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.AssetFile != "" {
		assetPath := c.AssetFile
		if !filepath.IsAbs(assetPath) {
			// Prefer paths relative to the scenario file, then fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), assetPath)
			if _, err := os.Stat(cand); err == nil {
				assetPath = cand
			}
		}
		asset, err := LoadAssetFile(assetPath)
		if err != nil {
			return nil, err
		}
		if c.Name == "" {
			c.Name = asset.Name
		}
		if c.AnnualYield == 0 {
			c.AnnualYield = asset.AnnualYield
		}
		c.Economics = MergeEconomics(asset.Economics, c.Economics)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := model.ValidateYield(c.AnnualYield); err != nil {
		return fmt.Errorf("annual_yield: %w", err)
	}
	if err := c.Economics.ToModel().Validate(); err != nil {
		return fmt.Errorf("economics: %w", err)
	}
	if err := c.Calculation.ToModel().Validate(); err != nil {
		return fmt.Errorf("calculation: %w", err)
	}
	return nil
}

func (e EconomicsConfig) ToModel() model.Economics {
	return model.Economics{
		Capex:              e.Capex,
		Opex:               e.Opex,
		TaxRate:            e.TaxRate,
		DiscountRate:       e.DiscountRate,
		OpexEscalationRate: e.OpexEscalationRate,
	}
}

// ToModel fills unset fields from model.DefaultCalcConfig.
func (c CalculationConfig) ToModel() model.CalcConfig {
	out := model.DefaultCalcConfig()
	if c.LifetimeYears != nil {
		out.LifetimeYears = *c.LifetimeYears
	}
	if c.DegradationRate != nil {
		out.DegradationRate = *c.DegradationRate
	}
	if c.DepreciationYears != nil {
		out.DepreciationYears = *c.DepreciationYears
	}
	return out
}

type assetFileWrapper struct {
	Asset AssetConfig `yaml:"asset"`
}

func LoadAssetFile(path string) (AssetConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return AssetConfig{}, err
	}
	var w assetFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return AssetConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Asset, nil
}

// MergeEconomics overlays non-zero fields from override onto base.
// A rate cannot be forced back to 0 through an override; set it in the preset instead.
func MergeEconomics(base, override EconomicsConfig) EconomicsConfig {
	out := base
	if override.Capex != 0 {
		out.Capex = override.Capex
	}
	if override.Opex != 0 {
		out.Opex = override.Opex
	}
	if override.TaxRate != 0 {
		out.TaxRate = override.TaxRate
	}
	if override.DiscountRate != 0 {
		out.DiscountRate = override.DiscountRate
	}
	if override.OpexEscalationRate != 0 {
		out.OpexEscalationRate = override.OpexEscalationRate
	}
	return out
}
