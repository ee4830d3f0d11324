package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReady struct {
	ready bool
}

func (f *fakeReady) Ready() bool { return f.ready }

func TestSidecarRoutes(t *testing.T) {
	ready := &fakeReady{ready: true}
	srv := NewServer(0, "1.2.3", ready)
	router := srv.httpServer.Handler

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("root answers keep-alive pings", func(t *testing.T) {
		rec := get("/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alive", rec.Body.String())
	})

	t.Run("healthz reports ok", func(t *testing.T) {
		rec := get("/healthz")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("readyz follows the gateway state", func(t *testing.T) {
		rec := get("/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)

		ready.ready = false
		rec = get("/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		ready.ready = true
	})

	t.Run("version reports the build", func(t *testing.T) {
		rec := get("/version")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"version":"1.2.3"}`, rec.Body.String())
	})

	t.Run("metrics exposes the prometheus registry", func(t *testing.T) {
		rec := get("/metrics")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "http_requests_in_flight")
	})
}

func TestNilReadyChecker(t *testing.T) {
	srv := NewServer(0, "dev", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
