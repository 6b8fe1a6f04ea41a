// Package http wires the gin route tree and the HTTP server lifecycle.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/internal/interfaces/http/handlers"
	"github.com/zainulabideendev/estateplan/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies required
// to construct the complete route tree.
type RouterConfig struct {
	ProfileHandler     *handlers.ProfileHandler
	BeneficiaryHandler *handlers.BeneficiaryHandler
	AllocationHandler  *handlers.AllocationHandler
	AssetHandler       *handlers.AssetHandler
	ProgressHandler    *handlers.ProgressHandler
	HealthHandler      *handlers.HealthHandler

	MetricsHandler http.Handler
	RequestMetrics middleware.RequestMetrics

	Mode   string
	Logger logging.Logger
}

// NewRouter constructs the route tree: global middleware, public probes, the
// metrics endpoint, and the versioned API groups.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	r := gin.New()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger, cfg.RequestMetrics))
	r.Use(middleware.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	api := r.Group("/api/v1")

	if cfg.ProfileHandler != nil {
		api.GET("/profiles/:id", cfg.ProfileHandler.Get)
		api.PUT("/profiles/:id/marital", cfg.ProfileHandler.UpdateMarital)
		api.PUT("/profiles/:id/regime", cfg.ProfileHandler.UpdateRegime)
		api.PUT("/profiles/:id/flags", cfg.ProfileHandler.SaveFlags)
	}

	if cfg.BeneficiaryHandler != nil {
		api.GET("/profiles/:id/beneficiaries", cfg.BeneficiaryHandler.GetRoster)
		api.POST("/profiles/:id/beneficiaries/family", cfg.BeneficiaryHandler.AddFamily)
		api.DELETE("/profiles/:id/beneficiaries/family", cfg.BeneficiaryHandler.RemoveFamily)
		api.POST("/profiles/:id/beneficiaries/manual", cfg.BeneficiaryHandler.AddManual)
		api.DELETE("/profiles/:id/beneficiaries/manual/:beneficiaryID", cfg.BeneficiaryHandler.RemoveManual)
	}

	if cfg.AssetHandler != nil {
		api.GET("/assets/debt-methods", cfg.AssetHandler.ListDebtMethods)
		api.POST("/profiles/:id/assets", cfg.AssetHandler.Create)
		api.GET("/profiles/:id/assets", cfg.AssetHandler.List)
		api.GET("/profiles/:id/assets/:assetID", cfg.AssetHandler.Get)
		api.DELETE("/profiles/:id/assets/:assetID", cfg.AssetHandler.Delete)
		api.PUT("/profiles/:id/assets/:assetID/debt-status", cfg.AssetHandler.SetDebtStatus)
		api.PUT("/profiles/:id/assets/:assetID/debt-method", cfg.AssetHandler.SetDebtMethod)
	}

	if cfg.AllocationHandler != nil {
		api.GET("/profiles/:id/assets/:assetID/allocations", cfg.AllocationHandler.GetAssetAllocations)
		api.PUT("/profiles/:id/assets/:assetID/allocations", cfg.AllocationHandler.SaveAssetAllocations)
		api.GET("/profiles/:id/residue/allocations", cfg.AllocationHandler.GetResidueAllocations)
		api.PUT("/profiles/:id/residue/allocations", cfg.AllocationHandler.SaveResidueAllocations)
		api.GET("/profiles/:id/residue/forced-share", cfg.AllocationHandler.GetForcedShare)
	}

	if cfg.ProgressHandler != nil {
		api.GET("/profiles/:id/progress", cfg.ProgressHandler.Get)
	}

	return r
}
