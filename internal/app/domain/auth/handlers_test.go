package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/etuitionbd/webclient/internal/app/domain"
	"github.com/etuitionbd/webclient/internal/app/guard"
	"github.com/etuitionbd/webclient/internal/app/models"
	"github.com/etuitionbd/webclient/internal/app/observability/metrics"
	"github.com/etuitionbd/webclient/internal/app/session"
	"github.com/etuitionbd/webclient/internal/app/ui"
	"github.com/etuitionbd/webclient/internal/pkg/api"
	"github.com/etuitionbd/webclient/internal/pkg/config"
	"github.com/etuitionbd/webclient/internal/pkg/fetch"
	"github.com/etuitionbd/webclient/internal/pkg/storage"
)

type authFixture struct {
	engine   *gin.Engine
	sessions *session.Store
	cookies  *session.CookieManager
	backend  *httptest.Server
}

// fakeBackend accepts one known credential pair and conflicts on one email.
func fakeBackend() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/auth/login":
			if body["email"] == "rahim@example.com" && body["password"] == "correct-horse" {
				json.NewEncoder(w).Encode(map[string]any{
					"token": "fresh-token",
					"user": map[string]string{
						"_id": "u1", "name": "Rahim", "email": "rahim@example.com", "role": "student",
					},
				})
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
		case "/auth/register":
			if body["email"] == "taken@example.com" {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{"message": "email in use"})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"token": "fresh-token",
				"user": map[string]string{
					"_id": "u2", "name": body["name"], "email": body["email"], "role": body["role"],
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	metrics.InitAppMetrics()

	backend := fakeBackend()
	t.Cleanup(backend.Close)

	sessions := session.NewStore(storage.NewMemoryKV(), nil)
	cookies := session.NewCookieManager("auth-test-secret", "etuition_session", false)
	base := &domain.Base{
		API:      api.NewClient(backend.URL, nil),
		Cache:    fetch.NewCache(time.Minute, time.Minute, nil),
		Sessions: sessions,
		Renderer: ui.NewRenderer(nil),
		Logger:   zap.NewNop(),
	}
	h := NewHandlers(base, cookies, config.GoogleConfig{})

	g := guard.New(sessions, cookies, base.Renderer.NotPermitted, nil)
	r := gin.New()
	r.Use(g.Attach())
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.POST("/logout", h.Logout)
	r.GET("/auth/google", h.GoogleStart)
	r.GET("/auth/google/callback", h.GoogleCallback)

	return &authFixture{engine: r, sessions: sessions, cookies: cookies, backend: backend}
}

func postForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	res := w.Result()
	defer res.Body.Close()
	for _, ck := range res.Cookies() {
		if ck.Name == "etuition_session" {
			return ck
		}
	}
	return nil
}

func TestLoginSuccess(t *testing.T) {
	f := newAuthFixture(t)

	w := postForm(f.engine, "/login", url.Values{
		"email":    {"rahim@example.com"},
		"password": {"correct-horse"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/student/dashboard", w.Header().Get("Location"))

	ck := sessionCookie(w)
	require.NotNil(t, ck, "a fresh browser gets its storage cookie on login")

	peek := httptest.NewRequest(http.MethodGet, "/", nil)
	peek.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	id := f.cookies.PeekSessionID(peek)
	require.NotEmpty(t, id)

	sess, ok := f.sessions.Load(context.Background(), id)
	require.True(t, ok)
	assert.Equal(t, "fresh-token", sess.Token)
	assert.Equal(t, models.RoleStudent, sess.Role)
	assert.Equal(t, "Rahim", sess.Name)
}

func TestLoginRejected(t *testing.T) {
	f := newAuthFixture(t)

	w := postForm(f.engine, "/login", url.Values{
		"email":    {"rahim@example.com"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusOK, w.Code, "a rejected login re-renders the form, it does not redirect")
	assert.Contains(t, w.Body.String(), "Invalid email or password.")
}

func TestLoginValidation(t *testing.T) {
	f := newAuthFixture(t)

	w := postForm(f.engine, "/login", url.Values{"email": {"not-an-email"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email and password are required.")
}

func TestLoginBouncesBackToSavedTarget(t *testing.T) {
	f := newAuthFixture(t)

	// Mint the browser id and record a bounce-back target for it.
	seed := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(seed)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	id := f.cookies.SessionID(c)
	f.sessions.SaveReturnTo(context.Background(), id, "/student/payments")
	ck := sessionCookie(seed)
	require.NotNil(t, ck)

	w := postForm(f.engine, "/login", url.Values{
		"email":    {"rahim@example.com"},
		"password": {"correct-horse"},
	}, &http.Cookie{Name: ck.Name, Value: ck.Value})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/student/payments", w.Header().Get("Location"))
}

func TestRegister(t *testing.T) {
	f := newAuthFixture(t)

	t.Run("new tutor lands on the tutor dashboard", func(t *testing.T) {
		w := postForm(f.engine, "/register", url.Values{
			"name":     {"Karim Ahmed"},
			"email":    {"karim@example.com"},
			"password": {"longenough1"},
			"role":     {"tutor"},
		})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/tutor/dashboard", w.Header().Get("Location"))
	})

	t.Run("duplicate email re-renders with a conflict message", func(t *testing.T) {
		w := postForm(f.engine, "/register", url.Values{
			"name":     {"Someone Else"},
			"email":    {"taken@example.com"},
			"password": {"longenough1"},
			"role":     {"student"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("short password is caught before the backend", func(t *testing.T) {
		w := postForm(f.engine, "/register", url.Values{
			"name":     {"Karim Ahmed"},
			"email":    {"karim2@example.com"},
			"password": {"short"},
			"role":     {"tutor"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "at least 8 characters")
	})

	t.Run("admin cannot be chosen at registration", func(t *testing.T) {
		w := postForm(f.engine, "/register", url.Values{
			"name":     {"Sneaky"},
			"email":    {"sneaky@example.com"},
			"password": {"longenough1"},
			"role":     {"admin"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEqual(t, "/admin/dashboard", w.Header().Get("Location"))
	})
}

func TestGoogleCallbackStateCheck(t *testing.T) {
	f := newAuthFixture(t)

	t.Run("callback without a started flow fails closed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=whatever&code=abc", nil)
		f.engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "did not complete")
	})

	t.Run("replayed callback fails because the state was consumed", func(t *testing.T) {
		// Start a flow to mint the cookie and record a state.
		start := httptest.NewRecorder()
		f.engine.ServeHTTP(start, httptest.NewRequest(http.MethodGet, "/auth/google", nil))
		require.Equal(t, http.StatusFound, start.Code)
		ck := sessionCookie(start)
		require.NotNil(t, ck)

		redirect, err := url.Parse(start.Header().Get("Location"))
		require.NoError(t, err)
		state := redirect.Query().Get("state")
		require.NotEmpty(t, state)

		// A wrong state consumes the recorded one.
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=forged&code=abc", nil)
		req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
		f.engine.ServeHTTP(w, req)
		assert.Contains(t, w.Body.String(), "did not complete")

		// The genuine state no longer works either.
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/auth/google/callback?state="+url.QueryEscape(state)+"&code=abc", nil)
		req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
		f.engine.ServeHTTP(w, req)
		assert.Contains(t, w.Body.String(), "did not complete")
	})
}

func TestLogout(t *testing.T) {
	f := newAuthFixture(t)

	// Sign in first.
	w := postForm(f.engine, "/login", url.Values{
		"email":    {"rahim@example.com"},
		"password": {"correct-horse"},
	})
	ck := sessionCookie(w)
	require.NotNil(t, ck)

	peek := httptest.NewRequest(http.MethodGet, "/", nil)
	peek.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	id := f.cookies.PeekSessionID(peek)

	w = postForm(f.engine, "/logout", url.Values{}, &http.Cookie{Name: ck.Name, Value: ck.Value})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	_, ok := f.sessions.Load(context.Background(), id)
	assert.False(t, ok, "logout clears the stored record")

	// Logging out again is harmless.
	w = postForm(f.engine, "/logout", url.Values{}, &http.Cookie{Name: ck.Name, Value: ck.Value})
	assert.Equal(t, http.StatusFound, w.Code)
}
