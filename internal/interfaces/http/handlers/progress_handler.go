package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zainulabideendev/estateplan/internal/application/estate"
)

// ProgressHandler serves the computed estate score and the allocation
// completion gate.
type ProgressHandler struct {
	progress *estate.ProgressService
}

// NewProgressHandler constructs a ProgressHandler.
func NewProgressHandler(progress *estate.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// Get handles GET /api/v1/profiles/:id/progress.
func (h *ProgressHandler) Get(c *gin.Context) {
	p, err := h.progress.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
