package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zainulabideendev/estateplan/internal/application/estate"
	"github.com/zainulabideendev/estateplan/internal/domain/profile"
)

// ProfileHandler serves profile reads and the workflow writes.
type ProfileHandler struct {
	profiles *estate.ProfileService
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(profiles *estate.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get handles GET /api/v1/profiles/:id.
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type updateMaritalRequest struct {
	MaritalStatus  string          `json:"marital_status" binding:"required"`
	HasLifePartner bool            `json:"has_life_partner"`
	Spouse         *profile.Person `json:"spouse"`
	Partner        *profile.Person `json:"partner"`
}

// UpdateMarital handles PUT /api/v1/profiles/:id/marital.
func (h *ProfileHandler) UpdateMarital(c *gin.Context) {
	var req updateMaritalRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.profiles.UpdateMarital(c.Request.Context(), estate.UpdateMaritalInput{
		ProfileID:      c.Param("id"),
		MaritalStatus:  profile.MaritalStatus(req.MaritalStatus),
		HasLifePartner: req.HasLifePartner,
		Spouse:         req.Spouse,
		Partner:        req.Partner,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type updateRegimeRequest struct {
	PropertyRegime string `json:"property_regime" binding:"required"`
}

// UpdateRegime handles PUT /api/v1/profiles/:id/regime.
func (h *ProfileHandler) UpdateRegime(c *gin.Context) {
	var req updateRegimeRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.profiles.UpdateRegime(c.Request.Context(), c.Param("id"), profile.PropertyRegime(req.PropertyRegime))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveFlags handles PUT /api/v1/profiles/:id/flags.
func (h *ProfileHandler) SaveFlags(c *gin.Context) {
	var flags profile.Flags
	if !bindJSON(c, &flags) {
		return
	}
	if err := h.profiles.SaveFlags(c.Request.Context(), c.Param("id"), flags); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
