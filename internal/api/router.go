// Package api wires the HTTP surface of the LCOE calculator.
package api

import (
	"net/http"

	"lcoe/internal/api/handlers"
	"lcoe/internal/api/middleware"
	"lcoe/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(assetDir string, results *store.ResultStore, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))

	assetHandler := handlers.NewAssetHandler(assetDir, logger)
	lcoeHandler := handlers.NewLCOEHandler(results, assetHandler, logger)
	parameterHandler := handlers.NewParameterHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/lcoe", lcoeHandler.ComputeLCOE)
		v1.GET("/lcoe/:id/ledger", lcoeHandler.GetLedger)

		v1.GET("/assets", assetHandler.ListAssets)
		v1.GET("/parameters", parameterHandler.ListParameters)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
