// response.go - Decodes request bodies and maps errors to HTTP responses

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go-shop-backend/apperr"
	"go-shop-backend/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// internalMessage is the only text a caller sees for unexpected failures
const internalMessage = "Something went wrong!"

// bindJSON decodes the body into dst. Decoder failures come back as
// field level validation errors so they share the 400 response shape.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	msg := err.Error()
	var typeErr *json.UnmarshalTypeError
	switch {
	case strings.HasPrefix(msg, "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(msg, "json: unknown field "), `"`)
		return apperr.Invalid(field, "field not recognized")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return apperr.Invalid(typeErr.Field, typeErr.Field+" has the wrong type")
	case errors.Is(err, io.EOF):
		return apperr.Invalid("body", "Request body is required")
	default:
		return apperr.Invalid("body", "Invalid JSON body")
	}
}

// respondError writes the status and body for err. Anything outside the
// apperr taxonomy is logged and hidden behind a generic 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	if v, ok := apperr.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": v.Error(), "fields": v.Fields})
		return
	}
	if conflict, ok := apperr.IsConflict(err); ok {
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
		return
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrInvalidCredentials.Error()})
	default:
		h.Log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMessage})
	}
}
