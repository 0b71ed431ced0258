package domain

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/etuitionbd/webclient/internal/app/guard"
	"github.com/etuitionbd/webclient/internal/app/models"
	"github.com/etuitionbd/webclient/internal/app/session"
	"github.com/etuitionbd/webclient/internal/app/ui"
	"github.com/etuitionbd/webclient/internal/pkg/api"
	"github.com/etuitionbd/webclient/internal/pkg/fetch"
)

// Query TTLs. Stats feed nav badges on every page, so they stay short;
// listings tolerate slightly staler reads.
const (
	StatsTTL   = 30 * time.Second
	ListTTL    = 1 * time.Minute
	DetailTTL  = 1 * time.Minute
	ProfileTTL = 5 * time.Minute
)

// Base carries the dependencies every domain handler shares.
type Base struct {
	API      *api.Client
	Cache    *fetch.Cache
	Sessions *session.Store
	Renderer *ui.Renderer
	Logger   *zap.Logger
}

// Layout assembles the shell data for the current request: the role's
// navigation with live badges, the session, and any flash carried on the
// query string after a redirect.
func (b *Base) Layout(c *gin.Context, title, active string) models.LayoutData {
	sess := guard.CurrentSession(c)
	nav := models.NavForRole(roleOf(sess))
	b.decorateNav(c, sess, &nav)

	return models.LayoutData{
		Title:     title,
		Session:   sess,
		Nav:       nav,
		ActiveNav: active,
		Flash:     c.Query("flash"),
		Error:     c.Query("error"),
	}
}

// decorateNav attaches live counts to the role's menu. Counts come from the
// same cached stats queries the dashboards use, so a badge costs at most one
// backend call per TTL window.
func (b *Base) decorateNav(c *gin.Context, sess *models.Session, nav *models.Navigation) {
	if sess == nil {
		return
	}

	ctx := c.Request.Context()
	switch sess.Role {
	case models.RoleStudent:
		stats, err := fetch.Do(ctx, b.Cache, fetch.Query[*models.StudentStats]{
			Key: fetch.StatsKey("student", sess.UserID),
			TTL: StatsTTL,
			Fn: func(ctx context.Context) (*models.StudentStats, error) {
				return b.API.StudentStats(ctx, sess)
			},
		})
		if err != nil {
			return
		}
		setBadge(nav, "/student/tuitions", stats.NewApplications)
		setBadge(nav, "/student/ongoing", stats.OngoingTuitions)
	case models.RoleTutor:
		stats, err := fetch.Do(ctx, b.Cache, fetch.Query[*models.TutorStats]{
			Key: fetch.StatsKey("tutor", sess.UserID),
			TTL: StatsTTL,
			Fn: func(ctx context.Context) (*models.TutorStats, error) {
				return b.API.TutorStats(ctx, sess)
			},
		})
		if err != nil {
			return
		}
		setBadge(nav, "/tutor/applications", stats.PendingApplications)
		setBadge(nav, "/tutor/ongoing", stats.OngoingTuitions)
	case models.RoleAdmin:
		stats, err := fetch.Do(ctx, b.Cache, fetch.Query[*models.AdminStats]{
			Key: fetch.AdminStatsKey(),
			TTL: StatsTTL,
			Fn: func(ctx context.Context) (*models.AdminStats, error) {
				return b.API.AdminStats(ctx, sess)
			},
		})
		if err != nil {
			return
		}
		setBadge(nav, "/admin/tuitions", stats.PendingTuitions)
	}
}

func setBadge(nav *models.Navigation, url string, count int) {
	for i := range nav.Items {
		if nav.Items[i].URL == url {
			nav.Items[i].Badge = count
			return
		}
	}
}

func roleOf(sess *models.Session) models.Role {
	if sess == nil {
		return ""
	}
	return sess.Role
}

// RenderFetchError is the shared error branch for page queries. An auth
// error means the central 401 reaction already cleared the session, so the
// user lands on login; anything else gets the retryable error page in the
// current shell.
func (b *Base) RenderFetchError(c *gin.Context, err error, retryURL string) {
	if errors.Is(err, models.ErrUnauthenticated) {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	sess := guard.CurrentSession(c)
	b.Logger.Warn("Page query failed", zap.String("path", c.Request.URL.Path), zap.Error(err))

	layout := models.LayoutData{
		Title:   "Error",
		Session: sess,
		Nav:     models.NavForRole(roleOf(sess)),
	}
	b.Renderer.Page(c, http.StatusBadGateway, "errors/fetch", layout, gin.H{
		"Message":  "We could not load this page right now.",
		"RetryURL": retryURL,
	})
}
