package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/noorix/hub/backend/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGuardError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unauthenticated is 401", auth.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden is 403", auth.ErrForbidden, http.StatusForbidden},
		{"unknown denial defaults to 403", errors.New("weird"), http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeGuardError(rec, tt.err)
			assert.Equal(t, tt.code, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestWriteStoreErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeStoreError(rec, "failed to list blogs", errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed to list blogs", body["message"])
	assert.Equal(t, "connection reset", body["error"])
}
