package applications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/etuitionbd/webclient/internal/app/domain"
	"github.com/etuitionbd/webclient/internal/app/guard"
	"github.com/etuitionbd/webclient/internal/app/models"
	"github.com/etuitionbd/webclient/internal/app/session"
	"github.com/etuitionbd/webclient/internal/app/ui"
	"github.com/etuitionbd/webclient/internal/pkg/api"
	"github.com/etuitionbd/webclient/internal/pkg/fetch"
	"github.com/etuitionbd/webclient/internal/pkg/storage"
)

type appsFixture struct {
	engine   *gin.Engine
	sessions *session.Store
	cookies  *session.CookieManager
}

func newAppsFixture(t *testing.T, backendURL string) *appsFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewStore(storage.NewMemoryKV(), nil)
	cookies := session.NewCookieManager("applications-test-secret", "etuition_session", false)
	base := &domain.Base{
		API:      api.NewClient(backendURL, nil),
		Cache:    fetch.NewCache(time.Minute, time.Minute, nil),
		Sessions: sessions,
		Renderer: ui.NewRenderer(nil),
		Logger:   zap.NewNop(),
	}
	h := NewHandlers(base)

	g := guard.New(sessions, cookies, base.Renderer.NotPermitted, nil)
	r := gin.New()
	r.Use(g.Attach())
	r.GET("/student/tuitions/:id/applicants", g.Require(models.RoleStudent), h.Applicants)
	r.POST("/student/applications/:id/shortlist", g.Require(models.RoleStudent), h.Shortlist)
	r.POST("/student/applications/:id/reject", g.Require(models.RoleStudent), h.Reject)

	return &appsFixture{engine: r, sessions: sessions, cookies: cookies}
}

// signIn persists a session and returns the cookie that names it.
func (f *appsFixture) signIn(t *testing.T, sess *models.Session) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	sess.ID = f.cookies.SessionID(c)
	require.NoError(t, f.sessions.Save(context.Background(), sess))

	res := w.Result()
	defer res.Body.Close()
	for _, ck := range res.Cookies() {
		if ck.Name == "etuition_session" {
			return ck
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func (f *appsFixture) get(path string, ck *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	f.engine.ServeHTTP(w, req)
	return w
}

func TestApplicantListIsNotSharedBetweenStudents(t *testing.T) {
	// The backend authorizes the applicant list per user: only the posting's
	// owner may read it. Another student must get the backend's refusal even
	// when the owner has just warmed the cache for the same tuition.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer owner-token" {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"message": "not your tuition"})
			return
		}
		switch r.URL.Path {
		case "/tuitions/t1":
			json.NewEncoder(w).Encode(models.TuitionPost{
				ID: "t1", Title: "Physics tutor wanted", Status: models.TuitionApproved,
			})
		case "/tuitions/t1/applications":
			json.NewEncoder(w).Encode([]models.Application{
				{ID: "a1", TutorName: "Tanvir Hossain", ExpectedSalaryTk: 5000, Status: models.ApplicationPending},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backend.Close()

	f := newAppsFixture(t, backend.URL)
	owner := f.signIn(t, &models.Session{UserID: "stu-owner", Role: models.RoleStudent, Token: "owner-token", Name: "Rahim"})
	other := f.signIn(t, &models.Session{UserID: "stu-other", Role: models.RoleStudent, Token: "other-token", Name: "Salma"})

	w := f.get("/student/tuitions/t1/applicants", owner)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Tanvir Hossain")

	// Second read for the owner serves from cache.
	w = f.get("/student/tuitions/t1/applicants", owner)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Tanvir Hossain")

	// The other student hits the same URL while the owner's entry is warm.
	w = f.get("/student/tuitions/t1/applicants", other)
	assert.NotContains(t, w.Body.String(), "Tanvir Hossain",
		"one student's cached applicant list must never answer another's request")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "could not load this page")
}

func TestShortlistFailureIsSurfaced(t *testing.T) {
	var fail int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path != "/applications/a1/shortlist" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if atomic.LoadInt32(&fail) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "backend down"})
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	f := newAppsFixture(t, backend.URL)
	ck := f.signIn(t, &models.Session{UserID: "stu-1", Role: models.RoleStudent, Token: "t", Name: "Rahim"})

	post := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/student/applications/a1/shortlist", nil)
		req.Header.Set("Referer", "/student/tuitions/t1/applicants")
		req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
		f.engine.ServeHTTP(w, req)
		return w
	}

	t.Run("a rejected shortlist redirects back with an error message", func(t *testing.T) {
		atomic.StoreInt32(&fail, 1)
		w := post()
		assert.Equal(t, http.StatusFound, w.Code)
		loc := w.Header().Get("Location")
		assert.Contains(t, loc, "/student/tuitions/t1/applicants")
		assert.Contains(t, loc, "error=", "a failed action must not look like a success")
	})

	t.Run("a settled shortlist redirects back plainly", func(t *testing.T) {
		atomic.StoreInt32(&fail, 0)
		w := post()
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/student/tuitions/t1/applicants", w.Header().Get("Location"))
	})
}
