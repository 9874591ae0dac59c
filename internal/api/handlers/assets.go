package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lcoe/internal/api/models"
	"lcoe/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrAssetNotFound is returned when no preset file matches an asset id.
var ErrAssetNotFound = errors.New("asset not found")

// AssetHandler serves asset presets stored as YAML files in a directory
type AssetHandler struct {
	assetDir string
	logger   zerolog.Logger
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetDir string, logger zerolog.Logger) *AssetHandler {
	logger.Info().Str("asset_dir", assetDir).Msg("AssetHandler: using asset directory")
	return &AssetHandler{
		assetDir: assetDir,
		logger:   logger,
	}
}

// ListAssets handles GET /api/v1/assets
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets := []models.AssetInfo{}

	entries, err := os.ReadDir(h.assetDir)
	if err != nil {
		h.logger.Warn().Err(err).Str("asset_dir", h.assetDir).Msg("AssetHandler: cannot read asset directory")
		c.JSON(http.StatusOK, gin.H{"assets": assets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".yaml")
		asset, err := h.Load(id)
		if err != nil {
			h.logger.Warn().Err(err).Str("file", entry.Name()).Msg("AssetHandler: skipping invalid asset file")
			continue
		}
		assets = append(assets, assetInfo(id, asset))
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })

	h.logger.Debug().Int("count", len(assets)).Msg("AssetHandler: returning assets")
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// Load reads one preset by id (the file name without .yaml).
func (h *AssetHandler) Load(id string) (config.AssetConfig, error) {
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return config.AssetConfig{}, fmt.Errorf("%w: %q", ErrAssetNotFound, id)
	}
	path := filepath.Join(h.assetDir, id+".yaml")
	asset, err := config.LoadAssetFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.AssetConfig{}, fmt.Errorf("%w: %q", ErrAssetNotFound, id)
	}
	if err != nil {
		return config.AssetConfig{}, err
	}
	if asset.Name == "" {
		asset.Name = id
	}
	return asset, nil
}

func assetInfo(id string, a config.AssetConfig) models.AssetInfo {
	return models.AssetInfo{
		ID:          id,
		Name:        a.Name,
		Technology:  a.Technology,
		AnnualYield: a.AnnualYield,
		Economics: models.Economics{
			Capex:              a.Economics.Capex,
			Opex:               a.Economics.Opex,
			TaxRate:            a.Economics.TaxRate,
			DiscountRate:       a.Economics.DiscountRate,
			OpexEscalationRate: a.Economics.OpexEscalationRate,
		},
	}
}
