package applications

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/etuitionbd/webclient/internal/app/domain"
	"github.com/etuitionbd/webclient/internal/app/guard"
	"github.com/etuitionbd/webclient/internal/app/models"
	"github.com/etuitionbd/webclient/internal/pkg/api"
	"github.com/etuitionbd/webclient/internal/pkg/fetch"
)

type Handlers struct {
	*domain.Base
	validate *validator.Validate
}

func NewHandlers(base *domain.Base) *Handlers {
	return &Handlers{Base: base, validate: validator.New()}
}

type applyForm struct {
	ExpectedSalary int64  `form:"expected_salary" validate:"required,min=1"`
	Message        string `form:"message" validate:"max=1000"`
}

// Apply submits a tutor's bid on a posting. Applying twice is a backend
// conflict and surfaces as a friendly message, not an error page.
func (h *Handlers) Apply(c *gin.Context) {
	sess := guard.CurrentSession(c)
	tuitionID := c.Param("id")

	var form applyForm
	if err := c.ShouldBind(&form); err != nil || h.validate.Struct(&form) != nil {
		c.Redirect(http.StatusFound, "/tutor/tuitions/"+url.PathEscape(tuitionID)+"?error="+url.QueryEscape("Please enter your expected salary."))
		return
	}

	_, err := fetch.Run(c.Request.Context(), h.Cache, fetch.Mutation[*models.Application]{
		Fn: func(ctx context.Context) (*models.Application, error) {
			return h.API.Apply(ctx, sess, tuitionID, api.ApplyInput{
				ExpectedSalaryTk: form.ExpectedSalary,
				Message:          form.Message,
			})
		},
		Invalidates: []string{
			fetch.MyApplicationsKey(sess.UserID),
			fetch.TuitionKey(tuitionID),
			fetch.StatsKey("tutor", sess.UserID),
		},
	})
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			c.Redirect(http.StatusFound, "/tutor/applications?flash="+url.QueryEscape("You already applied to this tuition."))
			return
		}
		h.Logger.Warn("Application submit failed", zap.String("tuition_id", tuitionID), zap.Error(err))
		c.Redirect(http.StatusFound, "/tutor/tuitions/"+url.PathEscape(tuitionID)+"?error="+url.QueryEscape("We could not submit your application. Please try again."))
		return
	}

	// Applicant lists are cached per viewer; evict the whole tuition's family.
	h.Cache.InvalidatePrefix(fetch.ApplicantsPrefix(tuitionID))

	c.Redirect(http.StatusFound, "/tutor/applications?flash="+url.QueryEscape("Application submitted."))
}

// Mine lists the signed-in tutor's applications with their current status.
func (h *Handlers) Mine(c *gin.Context) {
	sess := guard.CurrentSession(c)

	apps, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[[]models.Application]{
		Key:     fetch.MyApplicationsKey(sess.UserID),
		TTL:     domain.ListTTL,
		Retries: 1,
		Fn: func(ctx context.Context) ([]models.Application, error) {
			return h.API.MyApplications(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/tutor/applications")
		return
	}

	h.Renderer.Page(c, http.StatusOK, "tutor/applications", h.Layout(c, "My Applications", "/tutor/applications"), gin.H{
		"Applications": apps,
	})
}

// Applicants shows a student the tutors who applied to one of their postings.
func (h *Handlers) Applicants(c *gin.Context) {
	sess := guard.CurrentSession(c)
	tuitionID := c.Param("id")
	ctx := c.Request.Context()

	tuition, err := fetch.Do(ctx, h.Cache, fetch.Query[*models.TuitionPost]{
		Key:     fetch.TuitionKey(tuitionID),
		TTL:     domain.DetailTTL,
		Retries: 1,
		Fn: func(ctx context.Context) (*models.TuitionPost, error) {
			return h.API.GetTuition(ctx, sess, tuitionID)
		},
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Renderer.NotFound(c, sess)
			return
		}
		h.RenderFetchError(c, err, c.Request.URL.RequestURI())
		return
	}

	applicants, err := fetch.Do(ctx, h.Cache, fetch.Query[[]models.Application]{
		Key:     fetch.ApplicantsKey(sess.UserID, tuitionID),
		TTL:     domain.ListTTL,
		Retries: 1,
		Fn: func(ctx context.Context) ([]models.Application, error) {
			return h.API.ListApplicants(ctx, sess, tuitionID)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, c.Request.URL.RequestURI())
		return
	}

	h.Renderer.Page(c, http.StatusOK, "student/applicants", h.Layout(c, "Applicants", "/student/tuitions"), gin.H{
		"Tuition":    tuition,
		"Applicants": applicants,
	})
}

func (h *Handlers) Shortlist(c *gin.Context) {
	h.setStatus(c, "shortlist")
}

func (h *Handlers) Reject(c *gin.Context) {
	h.setStatus(c, "reject")
}

func (h *Handlers) setStatus(c *gin.Context, action string) {
	sess := guard.CurrentSession(c)
	applicationID := c.Param("id")

	_, err := fetch.Run(c.Request.Context(), h.Cache, fetch.Mutation[struct{}]{
		Fn: func(ctx context.Context) (struct{}, error) {
			var err error
			if action == "shortlist" {
				err = h.API.ShortlistApplication(ctx, sess, applicationID)
			} else {
				err = h.API.RejectApplication(ctx, sess, applicationID)
			}
			return struct{}{}, err
		},
		Invalidates: []string{
			fetch.StatsKey("student", sess.UserID),
		},
	})
	referer := c.GetHeader("Referer")
	if referer == "" {
		referer = "/student/tuitions"
	}

	if err != nil {
		h.Logger.Warn("Application status change failed",
			zap.String("application_id", applicationID),
			zap.String("action", action),
			zap.Error(err))
		c.Redirect(http.StatusFound, withQueryParam(referer, "error", "We could not update this application. Please try again."))
		return
	}

	// The applicant list is keyed by tuition, which the path does not name;
	// evict all of them rather than track a reverse index.
	h.Cache.InvalidatePrefix("applications/")

	c.Redirect(http.StatusFound, referer)
}

// withQueryParam appends a query parameter to a target that may already
// carry a query string.
func withQueryParam(target, key, value string) string {
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + key + "=" + url.QueryEscape(value)
}
