package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zainulabideendev/estateplan/internal/application/estate"
	"github.com/zainulabideendev/estateplan/internal/domain/beneficiary"
	"github.com/zainulabideendev/estateplan/internal/domain/profile"
)

// BeneficiaryHandler serves the merged roster and its mutations.
type BeneficiaryHandler struct {
	roster *estate.RosterService
}

// NewBeneficiaryHandler constructs a BeneficiaryHandler.
func NewBeneficiaryHandler(roster *estate.RosterService) *BeneficiaryHandler {
	return &BeneficiaryHandler{roster: roster}
}

// GetRoster handles GET /api/v1/profiles/:id/beneficiaries.
func (h *BeneficiaryHandler) GetRoster(c *gin.Context) {
	roster, err := h.roster.GetRoster(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

type addFamilyRequest struct {
	Kind  string `json:"kind" binding:"required"`
	RefID string `json:"ref_id"`
}

// AddFamily handles POST /api/v1/profiles/:id/beneficiaries/family.
func (h *BeneficiaryHandler) AddFamily(c *gin.Context) {
	var req addFamilyRequest
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.roster.AddFamilyCandidate(c.Request.Context(), estate.AddFamilyInput{
		ProfileID: c.Param("id"),
		Kind:      beneficiary.FamilyKind(req.Kind),
		RefID:     req.RefID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

type addManualRequest struct {
	Person       profile.Person `json:"person" binding:"required"`
	Relationship string         `json:"relationship"`
}

// AddManual handles POST /api/v1/profiles/:id/beneficiaries/manual.
func (h *BeneficiaryHandler) AddManual(c *gin.Context) {
	var req addManualRequest
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.roster.AddManualBeneficiary(c.Request.Context(), estate.AddManualInput{
		ProfileID:    c.Param("id"),
		Person:       req.Person,
		Relationship: req.Relationship,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// RemoveFamily handles DELETE /api/v1/profiles/:id/beneficiaries/family.
func (h *BeneficiaryHandler) RemoveFamily(c *gin.Context) {
	var req addFamilyRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.roster.RemoveFamilyBeneficiary(c.Request.Context(), estate.AddFamilyInput{
		ProfileID: c.Param("id"),
		Kind:      beneficiary.FamilyKind(req.Kind),
		RefID:     req.RefID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveManual handles DELETE /api/v1/profiles/:id/beneficiaries/manual/:beneficiaryID.
func (h *BeneficiaryHandler) RemoveManual(c *gin.Context) {
	err := h.roster.RemoveManualBeneficiary(c.Request.Context(), c.Param("id"), c.Param("beneficiaryID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
