package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zainulabideendev/estateplan/internal/application/estate"
	"github.com/zainulabideendev/estateplan/internal/domain/beneficiary"
)

// AllocationHandler serves the per-asset and residue allocation ledgers.
type AllocationHandler struct {
	allocations *estate.AllocationService
}

// NewAllocationHandler constructs an AllocationHandler.
func NewAllocationHandler(allocations *estate.AllocationService) *AllocationHandler {
	return &AllocationHandler{allocations: allocations}
}

// GetAssetAllocations handles GET /api/v1/profiles/:id/assets/:assetID/allocations.
func (h *AllocationHandler) GetAssetAllocations(c *gin.Context) {
	entries, err := h.allocations.GetAssetAllocations(c.Request.Context(), c.Param("id"), c.Param("assetID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"allocations": entries})
}

type saveAllocationsRequest struct {
	Allocations map[beneficiary.Key]float64 `json:"allocations" binding:"required"`
}

// SaveAssetAllocations handles PUT /api/v1/profiles/:id/assets/:assetID/allocations.
// The body is a full replacement of the asset's allocation set.
func (h *AllocationHandler) SaveAssetAllocations(c *gin.Context) {
	var req saveAllocationsRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.allocations.SaveAssetAllocations(c.Request.Context(), estate.SaveAllocationsInput{
		ProfileID: c.Param("id"),
		AssetID:   c.Param("assetID"),
		Entries:   req.Allocations,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetResidueAllocations handles GET /api/v1/profiles/:id/residue/allocations.
func (h *AllocationHandler) GetResidueAllocations(c *gin.Context) {
	entries, err := h.allocations.GetResidueAllocations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"allocations": entries})
}

// SaveResidueAllocations handles PUT /api/v1/profiles/:id/residue/allocations.
func (h *AllocationHandler) SaveResidueAllocations(c *gin.Context) {
	var req saveAllocationsRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.allocations.SaveResidueAllocations(c.Request.Context(), estate.SaveResidueInput{
		ProfileID: c.Param("id"),
		Entries:   req.Allocations,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetForcedShare handles GET /api/v1/profiles/:id/residue/forced-share.
// The response is advisory; saves are never blocked by it.
func (h *AllocationHandler) GetForcedShare(c *gin.Context) {
	advisory, err := h.allocations.ResidueForcedShare(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if advisory == nil {
		c.JSON(http.StatusOK, gin.H{"applicable": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applicable": true, "advisory": advisory})
}
