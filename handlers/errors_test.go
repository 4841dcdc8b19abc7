package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roomly/models"
	"roomly/services/apperr"

	"github.com/gin-gonic/gin"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation maps to 400", apperr.Validation("bad input"), http.StatusBadRequest},
		{"not found maps to 404", apperr.NotFound("gone"), http.StatusNotFound},
		{"conflict maps to 409", apperr.Conflict("slot taken", nil), http.StatusConflict},
		{"business maps to 422", apperr.Business("rule broken"), http.StatusUnprocessableEntity},
		{"internal maps to 500", apperr.Internal("boom", errors.New("cause")), http.StatusInternalServerError},
		{"unclassified maps to 500", errors.New("raw"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(c, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestWriteErrorConflictCarriesBlockingInterval(t *testing.T) {
	gin.SetMode(gin.TestMode)

	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	blocking := &models.Reservation{Start: start, End: start.Add(time.Hour)}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(c, apperr.Conflict("slot taken", blocking))

	var body struct {
		Message  string `json:"message"`
		Conflict *struct {
			Start time.Time `json:"start"`
			End   time.Time `json:"end"`
		} `json:"conflict"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Conflict == nil {
		t.Fatal("conflict response missing the blocking interval")
	}
	if !body.Conflict.Start.Equal(start) {
		t.Errorf("conflict start = %v, want %v", body.Conflict.Start, start)
	}
}
