package profiles

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
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

type profileForm struct {
	Name          string `form:"name" validate:"required,min=2,max=100"`
	PhotoURL      string `form:"photo_url" validate:"omitempty,url,max=500"`
	Phone         string `form:"phone" validate:"max=30"`
	Location      string `form:"location" validate:"max=100"`
	Institution   string `form:"institution" validate:"max=150"`
	Department    string `form:"department" validate:"max=150"`
	Qualification string `form:"qualification" validate:"max=200"`
	Experience    string `form:"experience" validate:"max=2000"`
	Subjects      string `form:"subjects"`
	HourlyRate    int64  `form:"hourly_rate" validate:"min=0"`
}

// Show renders the tutor's own profile form.
func (h *Handlers) Show(c *gin.Context) {
	sess := guard.CurrentSession(c)

	profile, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[*models.TutorProfile]{
		Key:     fetch.ProfileKey(sess.UserID),
		TTL:     domain.ProfileTTL,
		Retries: 1,
		Fn: func(ctx context.Context) (*models.TutorProfile, error) {
			return h.API.GetTutorProfile(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/tutor/profile")
		return
	}

	h.Renderer.Page(c, http.StatusOK, "tutor/profile", h.Layout(c, "My Profile", "/tutor/profile"), gin.H{
		"Profile": profile,
	})
}

// Update saves the profile and refetches it on the next read.
func (h *Handlers) Update(c *gin.Context) {
	sess := guard.CurrentSession(c)

	var form profileForm
	if err := c.ShouldBind(&form); err != nil || h.validate.Struct(&form) != nil {
		c.Redirect(http.StatusFound, "/tutor/profile?error="+url.QueryEscape("Please check the form and try again."))
		return
	}

	updated, err := fetch.Run(c.Request.Context(), h.Cache, fetch.Mutation[*models.TutorProfile]{
		Fn: func(ctx context.Context) (*models.TutorProfile, error) {
			return h.API.UpdateTutorProfile(ctx, sess, api.UpdateProfileInput{
				Name:          form.Name,
				PhotoURL:      form.PhotoURL,
				Phone:         form.Phone,
				Location:      form.Location,
				Institution:   form.Institution,
				Department:    form.Department,
				Qualification: form.Qualification,
				Experience:    form.Experience,
				Subjects:      splitSubjects(form.Subjects),
				HourlyRateTk:  form.HourlyRate,
			})
		},
		Invalidates: []string{
			fetch.ProfileKey(sess.UserID),
		},
	})
	if err != nil {
		h.Logger.Warn("Profile update failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/tutor/profile?error="+url.QueryEscape("We could not save your profile. Please try again."))
		return
	}

	// The shell header draws from the session record, so a changed name or
	// photo has to land there too, not just in the profile cache.
	if updated != nil && (updated.Name != sess.Name || updated.PhotoURL != sess.PhotoURL) {
		sess.Name = updated.Name
		sess.PhotoURL = updated.PhotoURL
		if err := h.Sessions.Save(c.Request.Context(), sess); err != nil {
			h.Logger.Warn("Session refresh after profile update failed", zap.Error(err))
		}
	}

	c.Redirect(http.StatusFound, "/tutor/profile?flash="+url.QueryEscape("Profile saved."))
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
