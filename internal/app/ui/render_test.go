package ui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etuitionbd/webclient/internal/app/models"
)

func renderPage(t *testing.T, name string, layout models.LayoutData, extra gin.H) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	NewRenderer(nil).Page(c, http.StatusOK, name, layout, extra)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return w, doc
}

func TestLayoutSignedOutShell(t *testing.T) {
	_, doc := renderPage(t, "landing", models.LayoutData{
		Title: "Find a tutor",
		Nav:   models.NavForRole(""),
	}, nil)

	assert.Contains(t, doc.Find("title").Text(), "Find a tutor")
	assert.Equal(t, 1, doc.Find(`a[href="/login"]`).Length(), "signed-out shell offers sign in")
	assert.Equal(t, 1, doc.Find(`a[href="/register"]`).Length())
	assert.Equal(t, 0, doc.Find(`form[action="/logout"]`).Length())
}

func TestLayoutSignedInShell(t *testing.T) {
	sess := &models.Session{ID: "s1", Name: "Rahim Uddin", Role: models.RoleStudent, Token: "t"}
	_, doc := renderPage(t, "landing", models.LayoutData{
		Title:   "Home",
		Session: sess,
		Nav:     models.NavForRole(models.RoleStudent),
	}, nil)

	assert.Contains(t, doc.Find("nav span").Text(), "Rahim Uddin")
	assert.Equal(t, 1, doc.Find(`form[action="/logout"] button`).Length(), "logout is a POST form, not a link")
	assert.Equal(t, 1, doc.Find(`nav a[href="/student/dashboard"]`).Length())
}

func TestLayoutNavBadges(t *testing.T) {
	nav := models.NavForRole(models.RoleStudent)
	for i := range nav.Items {
		if nav.Items[i].URL == "/student/tuitions" {
			nav.Items[i].Badge = 3
		}
	}

	_, doc := renderPage(t, "landing", models.LayoutData{
		Title:   "Home",
		Session: &models.Session{Name: "Rahim", Role: models.RoleStudent, Token: "t"},
		Nav:     nav,
	}, nil)

	badge := doc.Find(`nav a[href="/student/tuitions"] span`).Text()
	assert.Equal(t, "3", strings.TrimSpace(badge))

	// Items without a count render no badge at all.
	assert.Equal(t, 0, doc.Find(`nav a[href="/student/dashboard"] span`).Length())
}

func TestLayoutFlashAndError(t *testing.T) {
	_, doc := renderPage(t, "landing", models.LayoutData{
		Title: "Home",
		Nav:   models.NavForRole(""),
		Flash: "Tuition posted.",
		Error: "Something failed.",
	}, nil)

	assert.Contains(t, doc.Find(".bg-green-50").Text(), "Tuition posted.")
	assert.Contains(t, doc.Find(".bg-red-50").Text(), "Something failed.")
}

func TestLoginPage(t *testing.T) {
	_, doc := renderPage(t, "auth/login", models.LayoutData{Title: "Sign in", Nav: models.NavForRole("")}, nil)

	assert.Equal(t, 1, doc.Find(`form[action="/login"] input[name="email"]`).Length())
	assert.Equal(t, 1, doc.Find(`form[action="/login"] input[name="password"]`).Length())
	assert.Equal(t, 1, doc.Find(`a[href="/auth/google"]`).Length(), "the provider flow starts from a plain link")
}

func TestRegisterPageRoleChoice(t *testing.T) {
	_, doc := renderPage(t, "auth/register", models.LayoutData{Title: "Register", Nav: models.NavForRole("")}, gin.H{
		"Name":  "",
		"Email": "",
	})

	roles := doc.Find(`input[name="role"]`)
	require.Equal(t, 2, roles.Length())
	values := []string{}
	roles.Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("value")
		values = append(values, v)
	})
	assert.ElementsMatch(t, []string{"student", "tutor"}, values, "admin is never offered at registration")
}

func TestBrowsePage(t *testing.T) {
	tuitions := []models.TuitionPost{
		{
			ID:          "t1",
			Title:       "Physics tutor needed",
			Class:       "9",
			Subjects:    []string{"Physics", "Math"},
			Location:    "Dhanmondi",
			DaysPerWeek: 3,
			SalaryTk:    5000,
			Status:      models.TuitionApproved,
			CreatedAt:   time.Now(),
		},
	}

	_, doc := renderPage(t, "tuitions/browse", models.LayoutData{Title: "Browse", Nav: models.NavForRole("")}, gin.H{
		"Tuitions":   tuitions,
		"DetailBase": "/tuitions",
	})

	assert.Equal(t, 1, doc.Find(`a[href="/tuitions/t1"]`).Length())
	assert.Contains(t, doc.Text(), "Physics tutor needed")
	assert.Contains(t, doc.Text(), "Physics, Math")
	assert.Contains(t, doc.Text(), "৳5,000", "salary renders with the taka sign and separators")
}

func TestDetailPageApplyForm(t *testing.T) {
	tuition := &models.TuitionPost{
		ID:       "t1",
		Title:    "Physics tutor needed",
		Class:    "9",
		Medium:   "Bangla",
		Subjects: []string{"Physics"},
		SalaryTk: 5000,
		Status:   models.TuitionApproved,
	}

	t.Run("tutor who has not applied sees the form", func(t *testing.T) {
		_, doc := renderPage(t, "tuitions/detail", models.LayoutData{Title: "Detail", Nav: models.NavForRole(models.RoleTutor)}, gin.H{
			"Tuition":  tuition,
			"CanApply": true,
		})
		assert.Equal(t, 1, doc.Find(`form[action="/tutor/tuitions/t1/apply"]`).Length())
	})

	t.Run("tutor who already applied sees a notice instead", func(t *testing.T) {
		_, doc := renderPage(t, "tuitions/detail", models.LayoutData{Title: "Detail", Nav: models.NavForRole(models.RoleTutor)}, gin.H{
			"Tuition":        tuition,
			"CanApply":       false,
			"AlreadyApplied": true,
		})
		assert.Equal(t, 0, doc.Find(`form[action="/tutor/tuitions/t1/apply"]`).Length())
		assert.Contains(t, doc.Text(), "already applied")
	})
}

func TestNotFoundAndNotPermitted(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("404 keeps the signed-in shell", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/nope", nil)
		sess := &models.Session{Name: "Rahim", Role: models.RoleStudent, Token: "t"}

		NewRenderer(nil).NotFound(c, sess)
		assert.Equal(t, http.StatusNotFound, w.Code)

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
		require.NoError(t, err)
		assert.Contains(t, doc.Find("h1").Text(), "404")
		assert.Contains(t, doc.Find("nav span").Text(), "Rahim")
	})

	t.Run("403 renders in place", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/users", nil)

		NewRenderer(nil).NotPermitted(c, &models.Session{Name: "Karim", Role: models.RoleTutor, Token: "t"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "not permitted")
	})
}

func TestUnknownTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	NewRenderer(nil).Page(c, http.StatusOK, "no/such/page", models.LayoutData{Nav: models.NavForRole("")}, nil)
	assert.Contains(t, w.Body.String(), "internal error")
}

func TestRendererCompilesEveryPageUpFront(t *testing.T) {
	r := NewRenderer(nil)
	for name := range templates {
		if name == "layout" {
			continue
		}
		assert.Contains(t, r.pages, name, "every registered page parses at construction")
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	truncate := templateFuncs["truncate"].(func(string, int) string)

	title := "পদার্থবিজ্ঞান শিক্ষক চাই"
	out := truncate(title, 10)
	assert.True(t, utf8.ValidString(out), "a truncated Bengali title must not end mid-rune")
	assert.Equal(t, string([]rune(title)[:10])+"...", out)

	assert.Equal(t, "short", truncate("short", 10))
}
