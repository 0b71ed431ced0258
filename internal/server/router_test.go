package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/etuitionbd/webclient/internal/app/observability/metrics"
	"github.com/etuitionbd/webclient/internal/pkg/config"
	"github.com/etuitionbd/webclient/internal/pkg/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerPort: "8090",
		Backend:    config.BackendConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second},
		Session: config.SessionConfig{
			SecretKey:  "router-test-secret",
			CookieName: "etuition_session",
		},
		Cache: config.CacheConfig{DefaultTTL: time.Minute, CleanupInterval: time.Minute},
	}
}

func newTestRouter() http.Handler {
	// The middleware records request metrics through the global instruments;
	// with no meter provider configured they are harmless no-ops.
	metrics.InitAppMetrics()
	return SetupRouter(testConfig(), storage.NewMemoryKV(), nil)
}

func TestRouterPublicPages(t *testing.T) {
	r := newTestRouter()

	t.Run("landing renders for anonymous visitors", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "eTuitionBD")
	})

	t.Run("login page renders", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `action="/login"`)
	})

	t.Run("register page renders", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/register", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouterGuardedGroups(t *testing.T) {
	r := newTestRouter()

	paths := []string{
		"/student/dashboard",
		"/student/tuitions",
		"/tutor/dashboard",
		"/tutor/profile",
		"/admin/dashboard",
		"/admin/settings",
	}
	for _, path := range paths {
		t.Run(path+" bounces anonymous to login", func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/login", w.Header().Get("Location"))
		})
	}
}

func TestRouterNotFound(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no/such/page", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")
}
