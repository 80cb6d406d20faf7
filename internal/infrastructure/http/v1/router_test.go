package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentman/pkg/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log, err := logger.New(logger.Config{Level: "error", Development: true})
	require.NoError(t, err)

	// No database behind this router; only routes that never reach a
	// repository are exercised.
	return NewRouter(RouterConfig{Logger: log})
}

func TestRouter_Liveness(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	paths := []string{
		"/api/v1/visits",
		"/api/v1/catalog/metrics",
		"/api/v1/staff/workers",
	}

	for _, path := range paths {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
