package handler

import (
	"errors"
	"net/http"
	"strconv"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/config"
	"furls/dashboard/internal/logging"
	"furls/dashboard/internal/validation"

	"github.com/gin-gonic/gin"
)

// region --- Responses ---

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// ValidationErrorResponse is returned with 400 when request fields fail validation.
type ValidationErrorResponse struct {
	Error  string              `json:"error" example:"Validation failed"`
	Errors []apperr.FieldError `json:"errors"`
}

// InternalErrorResponse is returned with 500. Detail is only set outside production.
type InternalErrorResponse struct {
	Error  string `json:"error" example:"Internal server error"`
	Detail string `json:"detail,omitempty"`
}

// endregion

// respondError maps err onto a status and a JSON body and aborts the chain.
func respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	status := appErr.Status()
	_ = c.Error(err)

	switch appErr.Kind {
	case apperr.KindValidation:
		fields := appErr.Fields
		if fields == nil {
			fields = []apperr.FieldError{}
		}
		c.AbortWithStatusJSON(status, ValidationErrorResponse{Error: appErr.Message, Errors: fields})
	case apperr.KindInternal:
		logging.Ctx(c.Request.Context()).Error().
			Err(appErr.Err).
			Str("route", c.FullPath()).
			Msg(appErr.Message)
		body := InternalErrorResponse{Error: "Internal server error"}
		if !config.Current().IsProduction() {
			body.Detail = appErr.Error()
		}
		c.AbortWithStatusJSON(status, body)
	default:
		c.AbortWithStatusJSON(status, ErrorResponse{Error: appErr.Message})
	}
}

// bindJSON binds the body into dst and answers 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

// respondBindError answers 413 when the body hit the size cap and 400 otherwise.
func respondBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
		return
	}
	respondError(c, validation.Translate(err))
}

// idParam parses a positive numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
