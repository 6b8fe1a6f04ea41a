package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zainulabideendev/estateplan/internal/application/estate"
	"github.com/zainulabideendev/estateplan/internal/domain/asset"
)

// AssetHandler serves asset CRUD and the debt-handling operations.
type AssetHandler struct {
	assets *estate.AssetService
}

// NewAssetHandler constructs an AssetHandler.
func NewAssetHandler(assets *estate.AssetService) *AssetHandler {
	return &AssetHandler{assets: assets}
}

type createAssetRequest struct {
	Type  string  `json:"type" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Value float64 `json:"value"`
}

// Create handles POST /api/v1/profiles/:id/assets.
func (h *AssetHandler) Create(c *gin.Context) {
	var req createAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.assets.Create(c.Request.Context(), estate.CreateAssetInput{
		ProfileID: c.Param("id"),
		Type:      asset.Type(req.Type),
		Name:      req.Name,
		Value:     req.Value,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// List handles GET /api/v1/profiles/:id/assets.
func (h *AssetHandler) List(c *gin.Context) {
	assets, err := h.assets.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// Get handles GET /api/v1/profiles/:id/assets/:assetID.
func (h *AssetHandler) Get(c *gin.Context) {
	a, err := h.assets.Get(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /api/v1/profiles/:id/assets/:assetID.
func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.assets.Delete(c.Request.Context(), c.Param("assetID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type debtStatusRequest struct {
	FullyPaid *bool `json:"fully_paid" binding:"required"`
}

// SetDebtStatus handles PUT /api/v1/profiles/:id/assets/:assetID/debt-status.
func (h *AssetHandler) SetDebtStatus(c *gin.Context) {
	var req debtStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.assets.SetDebtStatus(c.Request.Context(), c.Param("assetID"), *req.FullyPaid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

type debtMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// SetDebtMethod handles PUT /api/v1/profiles/:id/assets/:assetID/debt-method.
func (h *AssetHandler) SetDebtMethod(c *gin.Context) {
	var req debtMethodRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.assets.SetDebtHandlingMethod(c.Request.Context(), c.Param("assetID"), asset.DebtHandlingMethod(req.Method))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ListDebtMethods handles GET /api/v1/assets/debt-methods.
func (h *AssetHandler) ListDebtMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"methods": asset.DebtHandlingMethods})
}
