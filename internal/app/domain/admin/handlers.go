package admin

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

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

func (h *Handlers) Dashboard(c *gin.Context) {
	sess := guard.CurrentSession(c)

	stats, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[*models.AdminStats]{
		Key:     fetch.AdminStatsKey(),
		TTL:     domain.StatsTTL,
		Retries: 1,
		Fn: func(ctx context.Context) (*models.AdminStats, error) {
			return h.API.AdminStats(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/admin/dashboard")
		return
	}

	h.Renderer.Page(c, http.StatusOK, "admin/dashboard", h.Layout(c, "Platform Overview", "/admin/dashboard"), gin.H{
		"Stats": stats,
	})
}

func (h *Handlers) Users(c *gin.Context) {
	sess := guard.CurrentSession(c)

	users, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[[]models.User]{
		Key:     fetch.AdminUsersKey(),
		TTL:     domain.ListTTL,
		Retries: 1,
		Fn: func(ctx context.Context) ([]models.User, error) {
			return h.API.AdminListUsers(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/admin/users")
		return
	}

	h.Renderer.Page(c, http.StatusOK, "admin/users", h.Layout(c, "Users", "/admin/users"), gin.H{
		"Users": users,
	})
}

func (h *Handlers) DeleteUser(c *gin.Context) {
	sess := guard.CurrentSession(c)
	userID := c.Param("id")

	_, err := fetch.Run(c.Request.Context(), h.Cache, fetch.Mutation[struct{}]{
		Fn: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, h.API.AdminDeleteUser(ctx, sess, userID)
		},
		Invalidates: []string{
			fetch.AdminUsersKey(),
			fetch.AdminStatsKey(),
		},
	})
	if err != nil {
		h.Logger.Warn("User removal failed", zap.String("user_id", userID), zap.Error(err))
		c.Redirect(http.StatusFound, "/admin/users?error="+url.QueryEscape("Could not remove the user."))
		return
	}
	c.Redirect(http.StatusFound, "/admin/users?flash="+url.QueryEscape("User removed."))
}

func (h *Handlers) Tuitions(c *gin.Context) {
	sess := guard.CurrentSession(c)

	tuitions, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[[]models.TuitionPost]{
		Key:     fetch.AdminTuitionsKey(),
		TTL:     domain.ListTTL,
		Retries: 1,
		Fn: func(ctx context.Context) ([]models.TuitionPost, error) {
			return h.API.AdminListTuitions(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/admin/tuitions")
		return
	}

	h.Renderer.Page(c, http.StatusOK, "admin/tuitions", h.Layout(c, "Tuition Moderation", "/admin/tuitions"), gin.H{
		"Tuitions": tuitions,
	})
}

func (h *Handlers) ApproveTuition(c *gin.Context) {
	h.moderateTuition(c, models.TuitionApproved)
}

func (h *Handlers) RejectTuition(c *gin.Context) {
	h.moderateTuition(c, models.TuitionClosed)
}

func (h *Handlers) moderateTuition(c *gin.Context, status models.TuitionStatus) {
	sess := guard.CurrentSession(c)
	tuitionID := c.Param("id")

	_, err := fetch.Run(c.Request.Context(), h.Cache, fetch.Mutation[struct{}]{
		Fn: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, h.API.AdminSetTuitionStatus(ctx, sess, tuitionID, status)
		},
		Invalidates: []string{
			fetch.AdminTuitionsKey(),
			fetch.AdminStatsKey(),
			fetch.TuitionKey(tuitionID),
		},
	})
	if err != nil {
		h.Logger.Warn("Tuition moderation failed",
			zap.String("tuition_id", tuitionID),
			zap.String("status", string(status)),
			zap.Error(err))
		c.Redirect(http.StatusFound, "/admin/tuitions?error="+url.QueryEscape("Could not update the tuition."))
		return
	}

	// Public listings include moderation outcomes.
	h.Cache.InvalidatePrefix("tuitions/list")
	c.Redirect(http.StatusFound, "/admin/tuitions?flash="+url.QueryEscape("Tuition "+string(status)+"."))
}

func (h *Handlers) Transactions(c *gin.Context) {
	sess := guard.CurrentSession(c)

	transactions, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[[]models.Transaction]{
		Key:     fetch.AdminTransactionsKey(),
		TTL:     domain.ListTTL,
		Retries: 1,
		Fn: func(ctx context.Context) ([]models.Transaction, error) {
			return h.API.AdminListTransactions(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/admin/transactions")
		return
	}

	h.Renderer.Page(c, http.StatusOK, "admin/transactions", h.Layout(c, "Transactions", "/admin/transactions"), gin.H{
		"Transactions": transactions,
	})
}

func (h *Handlers) Settings(c *gin.Context) {
	sess := guard.CurrentSession(c)

	settings, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[*models.PlatformSettings]{
		Key:     fetch.AdminSettingsKey(),
		TTL:     domain.ProfileTTL,
		Retries: 1,
		Fn: func(ctx context.Context) (*models.PlatformSettings, error) {
			return h.API.AdminGetSettings(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/admin/settings")
		return
	}

	h.Renderer.Page(c, http.StatusOK, "admin/settings", h.Layout(c, "Platform Settings", "/admin/settings"), gin.H{
		"Settings": settings,
	})
}

func (h *Handlers) UpdateSettings(c *gin.Context) {
	sess := guard.CurrentSession(c)

	feePercent, err := strconv.ParseFloat(c.PostForm("service_fee"), 64)
	if err != nil || feePercent < 0 || feePercent > 100 {
		c.Redirect(http.StatusFound, "/admin/settings?error="+url.QueryEscape("Service fee must be between 0 and 100."))
		return
	}

	input := models.PlatformSettings{
		ServiceFeePercent: feePercent,
		ContactEmail:      c.PostForm("contact_email"),
		ContactPhone:      c.PostForm("contact_phone"),
		MaintenanceMode:   c.PostForm("maintenance_mode") == "true",
	}

	_, err = fetch.Run(c.Request.Context(), h.Cache, fetch.Mutation[*models.PlatformSettings]{
		Fn: func(ctx context.Context) (*models.PlatformSettings, error) {
			return h.API.AdminUpdateSettings(ctx, sess, input)
		},
		Invalidates: []string{
			fetch.AdminSettingsKey(),
			"settings/public",
		},
	})
	if err != nil {
		h.Logger.Warn("Settings update failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/admin/settings?error="+url.QueryEscape("Could not save the settings."))
		return
	}

	c.Redirect(http.StatusFound, "/admin/settings?flash="+url.QueryEscape("Settings saved."))
}
