package tuitions

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

// Browse lists open tuitions. Anonymous visitors and tutors share this page;
// the role only changes where a row links to.
func (h *Handlers) Browse(c *gin.Context) {
	sess := guard.CurrentSession(c)
	filter := api.TuitionFilter{
		Class:    c.Query("class"),
		Subject:  c.Query("subject"),
		Location: c.Query("location"),
		Medium:   c.Query("medium"),
	}

	tuitions, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[[]models.TuitionPost]{
		Key:     fetch.TuitionsKey(filter.Query()),
		TTL:     domain.ListTTL,
		Retries: 1,
		Fn: func(ctx context.Context) ([]models.TuitionPost, error) {
			return h.API.ListTuitions(ctx, sess, filter)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, c.Request.URL.RequestURI())
		return
	}

	detailBase := "/tuitions"
	active := "/tuitions"
	if sess != nil && sess.Role == models.RoleTutor {
		detailBase = "/tutor/tuitions"
		active = "/tutor/tuitions"
	}

	h.Renderer.Page(c, http.StatusOK, "tuitions/browse", h.Layout(c, "Open Tuitions", active), gin.H{
		"Tuitions":       tuitions,
		"DetailBase":     detailBase,
		"FilterClass":    filter.Class,
		"FilterSubject":  filter.Subject,
		"FilterLocation": filter.Location,
	})
}

// Detail shows one posting. Tutors additionally see the apply form unless
// they already applied or the posting is no longer open.
func (h *Handlers) Detail(c *gin.Context) {
	sess := guard.CurrentSession(c)
	id := c.Param("id")
	ctx := c.Request.Context()

	tuition, err := fetch.Do(ctx, h.Cache, fetch.Query[*models.TuitionPost]{
		Key:     fetch.TuitionKey(id),
		TTL:     domain.DetailTTL,
		Retries: 1,
		Fn: func(ctx context.Context) (*models.TuitionPost, error) {
			return h.API.GetTuition(ctx, sess, id)
		},
	})
	if err != nil {
		if isNotFound(err) {
			h.Renderer.NotFound(c, sess)
			return
		}
		h.RenderFetchError(c, err, c.Request.URL.RequestURI())
		return
	}

	canApply := false
	alreadyApplied := false
	if sess != nil && sess.Role == models.RoleTutor && tuition.Status == models.TuitionApproved {
		mine, err := fetch.Do(ctx, h.Cache, fetch.Query[[]models.Application]{
			Key: fetch.MyApplicationsKey(sess.UserID),
			TTL: domain.ListTTL,
			Fn: func(ctx context.Context) ([]models.Application, error) {
				return h.API.MyApplications(ctx, sess)
			},
		})
		if err == nil {
			for _, app := range mine {
				if app.TuitionID == tuition.ID {
					alreadyApplied = true
					break
				}
			}
			canApply = !alreadyApplied
		}
	}

	active := "/tuitions"
	if sess != nil && sess.Role == models.RoleTutor {
		active = "/tutor/tuitions"
	}
	h.Renderer.Page(c, http.StatusOK, "tuitions/detail", h.Layout(c, tuition.Title, active), gin.H{
		"Tuition":        tuition,
		"CanApply":       canApply,
		"AlreadyApplied": alreadyApplied,
	})
}

type createForm struct {
	Title        string `form:"title" validate:"required,min=5,max=150"`
	Class        string `form:"class" validate:"required"`
	Medium       string `form:"medium" validate:"required,oneof=bangla english english-version"`
	Subjects     string `form:"subjects" validate:"required"`
	Location     string `form:"location" validate:"required"`
	DaysPerWeek  int    `form:"days_per_week" validate:"required,min=1,max=7"`
	Salary       int64  `form:"salary" validate:"required,min=1"`
	Requirements string `form:"requirements"`
}

func (h *Handlers) New(c *gin.Context) {
	h.Renderer.Page(c, http.StatusOK, "student/tuition_new", h.Layout(c, "Post a Tuition", "/student/tuitions/new"), gin.H{
		"Form": createForm{},
	})
}

func (h *Handlers) Create(c *gin.Context) {
	sess := guard.CurrentSession(c)

	var form createForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderNewWithError(c, form, "Please fill in every required field.")
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		h.renderNewWithError(c, form, "Please check the form: every field except requirements is required.")
		return
	}

	subjects := splitSubjects(form.Subjects)
	if len(subjects) == 0 {
		h.renderNewWithError(c, form, "Please list at least one subject.")
		return
	}

	_, err := fetch.Run(c.Request.Context(), h.Cache, fetch.Mutation[*models.TuitionPost]{
		Fn: func(ctx context.Context) (*models.TuitionPost, error) {
			return h.API.CreateTuition(ctx, sess, api.CreateTuitionInput{
				Title:        form.Title,
				Class:        form.Class,
				Subjects:     subjects,
				Medium:       form.Medium,
				Location:     form.Location,
				DaysPerWeek:  form.DaysPerWeek,
				SalaryTk:     form.Salary,
				Requirements: form.Requirements,
			})
		},
		Invalidates: []string{
			fetch.MyTuitionsKey(sess.UserID),
			fetch.StatsKey("student", sess.UserID),
		},
	})
	if err != nil {
		h.Logger.Warn("Tuition create failed", zap.Error(err))
		h.renderNewWithError(c, form, "We could not submit your tuition. Please try again.")
		return
	}

	h.Cache.InvalidatePrefix("tuitions/list")
	c.Redirect(http.StatusFound, "/student/tuitions?flash="+url.QueryEscape("Tuition submitted for review."))
}

// Mine lists the signed-in student's own postings with applicant counts.
func (h *Handlers) Mine(c *gin.Context) {
	sess := guard.CurrentSession(c)

	tuitions, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[[]models.TuitionPost]{
		Key:     fetch.MyTuitionsKey(sess.UserID),
		TTL:     domain.ListTTL,
		Retries: 1,
		Enabled: func() bool { return sess != nil },
		Fn: func(ctx context.Context) ([]models.TuitionPost, error) {
			return h.API.MyTuitions(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/student/tuitions")
		return
	}

	h.Renderer.Page(c, http.StatusOK, "student/tuitions", h.Layout(c, "My Tuitions", "/student/tuitions"), gin.H{
		"Tuitions": tuitions,
	})
}

func (h *Handlers) StudentOngoing(c *gin.Context) {
	sess := guard.CurrentSession(c)

	ongoing, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[[]models.OngoingTuition]{
		Key:     fetch.OngoingKey("student", sess.UserID),
		TTL:     domain.ListTTL,
		Retries: 1,
		Fn: func(ctx context.Context) ([]models.OngoingTuition, error) {
			return h.API.StudentOngoing(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/student/ongoing")
		return
	}

	h.Renderer.Page(c, http.StatusOK, "student/ongoing", h.Layout(c, "Ongoing Tuitions", "/student/ongoing"), gin.H{
		"Ongoing": ongoing,
	})
}

func (h *Handlers) TutorOngoing(c *gin.Context) {
	sess := guard.CurrentSession(c)

	ongoing, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[[]models.OngoingTuition]{
		Key:     fetch.OngoingKey("tutor", sess.UserID),
		TTL:     domain.ListTTL,
		Retries: 1,
		Fn: func(ctx context.Context) ([]models.OngoingTuition, error) {
			return h.API.TutorOngoing(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/tutor/ongoing")
		return
	}

	h.Renderer.Page(c, http.StatusOK, "tutor/ongoing", h.Layout(c, "Ongoing Tuitions", "/tutor/ongoing"), gin.H{
		"Ongoing": ongoing,
	})
}

func (h *Handlers) renderNewWithError(c *gin.Context, form createForm, message string) {
	layout := h.Layout(c, "Post a Tuition", "/student/tuitions/new")
	layout.Error = message
	h.Renderer.Page(c, http.StatusOK, "student/tuition_new", layout, gin.H{"Form": form})
}

func splitSubjects(raw string) []string {
	parts := strings.Split(raw, ",")
	subjects := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			subjects = append(subjects, s)
		}
	}
	return subjects
}

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
