package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"natty/ratelim"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *httprouter.Router {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>natty</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log('hi')"), 0o644))

	router := httprouter.New()
	AddAuthRoutes(router, ratelim.NewRateLimiter())
	AddStaticRoutes(router, staticDir)
	return router
}

func TestUnknownAPIRouteReturnsJSON404(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/nonsense/123", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Not Found", body["error"])
	assert.Equal(t, "/api/nonsense/123", body["path"])
	assert.Equal(t, http.MethodDelete, body["method"])
}

func TestAppRoutesServeSPAShell(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/app/", "/app/trips/yose-fall/itinerary/day1"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "natty", path)
	}
}

func TestStaticAssetsServed(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console.log")
}

func TestUnknownPathFallsBackToSPAShell(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/totally/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "natty")
}
