package dashboards

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etuitionbd/webclient/internal/app/domain"
	"github.com/etuitionbd/webclient/internal/app/guard"
	"github.com/etuitionbd/webclient/internal/app/models"
	"github.com/etuitionbd/webclient/internal/pkg/fetch"
)

type Handlers struct {
	*domain.Base
}

func NewHandlers(base *domain.Base) *Handlers {
	return &Handlers{Base: base}
}

// Landing is the public front page. Signed-in visitors are taken straight
// to their role's dashboard.
func (h *Handlers) Landing(c *gin.Context) {
	if sess := guard.CurrentSession(c); sess != nil {
		switch sess.Role {
		case models.RoleStudent:
			c.Redirect(http.StatusFound, "/student/dashboard")
			return
		case models.RoleTutor:
			c.Redirect(http.StatusFound, "/tutor/dashboard")
			return
		case models.RoleAdmin:
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
	}
	h.Renderer.Page(c, http.StatusOK, "landing", h.Layout(c, "Find a tutor", "/"), nil)
}

func (h *Handlers) Student(c *gin.Context) {
	sess := guard.CurrentSession(c)

	stats, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[*models.StudentStats]{
		Key:     fetch.StatsKey("student", sess.UserID),
		TTL:     domain.StatsTTL,
		Retries: 1,
		Fn: func(ctx context.Context) (*models.StudentStats, error) {
			return h.API.StudentStats(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/student/dashboard")
		return
	}

	h.Renderer.Page(c, http.StatusOK, "student/dashboard", h.Layout(c, "Dashboard", "/student/dashboard"), gin.H{
		"Stats": stats,
	})
}

func (h *Handlers) Tutor(c *gin.Context) {
	sess := guard.CurrentSession(c)
	ctx := c.Request.Context()

	stats, err := fetch.Do(ctx, h.Cache, fetch.Query[*models.TutorStats]{
		Key:     fetch.StatsKey("tutor", sess.UserID),
		TTL:     domain.StatsTTL,
		Retries: 1,
		Fn: func(ctx context.Context) (*models.TutorStats, error) {
			return h.API.TutorStats(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/tutor/dashboard")
		return
	}

	// Best effort; an unloadable profile just hides the completeness nudge.
	profileComplete := true
	profile, err := fetch.Do(ctx, h.Cache, fetch.Query[*models.TutorProfile]{
		Key: fetch.ProfileKey(sess.UserID),
		TTL: domain.ProfileTTL,
		Fn: func(ctx context.Context) (*models.TutorProfile, error) {
			return h.API.GetTutorProfile(ctx, sess)
		},
	})
	if err == nil {
		profileComplete = profile.Qualification != "" && len(profile.Subjects) > 0 && profile.Location != ""
	}

	h.Renderer.Page(c, http.StatusOK, "tutor/dashboard", h.Layout(c, "Dashboard", "/tutor/dashboard"), gin.H{
		"Stats":           stats,
		"ProfileComplete": profileComplete,
	})
}
