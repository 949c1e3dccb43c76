package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helmsman-ai/helmsman/pkg/services"
)

func TestServiceErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", services.NewValidationError("title", "is required"), http.StatusBadRequest},
		{"invalid input", fmt.Errorf("bad request: %w", services.ErrInvalidInput), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get task: %w", services.ErrNotFound), http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"stale write", services.ErrStaleWrite, http.StatusConflict},
		{"circular dependency", services.ErrCircularDependency, http.StatusConflict},
		{"budget exhausted", services.ErrBudgetExhausted, http.StatusPaymentRequired},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := serviceErrorStatus(tt.err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestUnknownErrorMessageIsOpaque(t *testing.T) {
	_, msg := serviceErrorStatus(errors.New("pq: password authentication failed"))
	assert.Equal(t, "internal server error", msg)
}
