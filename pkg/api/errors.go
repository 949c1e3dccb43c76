package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helmsman-ai/helmsman/pkg/services"
)

// writeServiceError maps service-layer errors to HTTP error responses.
func writeServiceError(c *gin.Context, err error) {
	status, message := serviceErrorStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("Unexpected service error", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": message})
}

func serviceErrorStatus(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict, "resource already exists"
	case errors.Is(err, services.ErrStaleWrite):
		return http.StatusConflict, "version conflict, retry with current version"
	case errors.Is(err, services.ErrCircularDependency):
		return http.StatusConflict, "dependency cycle"
	case errors.Is(err, services.ErrBudgetExhausted):
		return http.StatusPaymentRequired, "budget exhausted"
	}
	return http.StatusInternalServerError, "internal server error"
}
