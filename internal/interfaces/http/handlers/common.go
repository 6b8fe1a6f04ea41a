// Package handlers contains the gin HTTP handlers for the estate planning
// API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zainulabideendev/estateplan/pkg/errors"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// respondError maps an application error onto its HTTP status and writes the
// standard error body. Internal errors are masked.
func respondError(c *gin.Context, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    string(errors.ErrCodeInternal),
			Message: "internal server error",
		})
		return
	}

	status := appErr.Code.HTTPStatus()
	resp := ErrorResponse{Code: string(appErr.Code), Message: appErr.Message, Detail: appErr.Detail}
	if status >= http.StatusInternalServerError {
		resp = ErrorResponse{Code: string(appErr.Code), Message: "internal server error"}
	}
	c.JSON(status, resp)
}

// bindJSON binds the request body and writes a validation error on failure.
// Returns false when binding failed and the response is already written.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid request body"))
		return false
	}
	return true
}
