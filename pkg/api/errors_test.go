package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/meetsched/pkg/services"
)

func recordMapped(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	mapServiceError(c, err)
	return w
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", services.NewValidationError("capacity", "must be at least 1"), http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: room 7", services.ErrNotFound), http.StatusNotFound},
		{"already exists", fmt.Errorf("%w: room 'Fishbowl'", services.ErrAlreadyExists), http.StatusConflict},
		{"in use", fmt.Errorf("%w: room 7 has 2 meetings", services.ErrInUse), http.StatusConflict},
		{"invalid transition", fmt.Errorf("%w: COMPLETED -> CONFIRMED", services.ErrInvalidTransition), http.StatusBadRequest},
		{"solver disabled", services.ErrSolverDisabled, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := recordMapped(t, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestMapSchedulingError(t *testing.T) {
	err := &services.SchedulingError{
		Message:    "cannot delete meeting 4",
		Violations: []string{"Room conflict: overlaps with meeting 2 in room 1"},
	}

	w := recordMapped(t, err)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "cannot delete meeting 4")
	assert.Contains(t, w.Body.String(), "violations")
}
