package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/etuitionbd/webclient/internal/app/domain"
	"github.com/etuitionbd/webclient/internal/app/guard"
	"github.com/etuitionbd/webclient/internal/app/models"
	"github.com/etuitionbd/webclient/internal/app/observability/metrics"
	"github.com/etuitionbd/webclient/internal/app/session"
	"github.com/etuitionbd/webclient/internal/pkg/api"
	"github.com/etuitionbd/webclient/internal/pkg/config"
)

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Name     string `form:"name" validate:"required,min=2,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
	Role     string `form:"role" validate:"required,oneof=student tutor"`
}

type Handlers struct {
	*domain.Base
	cookies  *session.CookieManager
	validate *validator.Validate
	google   *googleFlow
}

func NewHandlers(base *domain.Base, cookies *session.CookieManager, googleCfg config.GoogleConfig) *Handlers {
	return &Handlers{
		Base:     base,
		cookies:  cookies,
		validate: validator.New(),
		google:   newGoogleFlow(googleCfg, base.Logger),
	}
}

func (h *Handlers) ShowLogin(c *gin.Context) {
	if sess := guard.CurrentSession(c); sess != nil {
		c.Redirect(http.StatusFound, dashboardFor(sess.Role))
		return
	}
	h.Renderer.Page(c, http.StatusOK, "auth/login", h.Layout(c, "Sign in", "/login"), nil)
}

func (h *Handlers) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil || h.validate.Struct(&form) != nil {
		h.renderLogin(c, "Email and password are required.")
		return
	}

	result, err := h.API.Login(c.Request.Context(), api.Credentials{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, models.ErrUnauthenticated) || errors.Is(err, models.ErrBadRequest) {
			recordAuthAttempt(c.Request.Context(), "password", "rejected")
			h.Logger.Info("Login rejected", zap.String("email", form.Email))
			h.renderLogin(c, "Invalid email or password.")
			return
		}
		recordAuthAttempt(c.Request.Context(), "password", "error")
		h.Logger.Error("Login call failed", zap.Error(err))
		h.renderLogin(c, "Sign-in is unavailable right now. Please try again.")
		return
	}

	recordAuthAttempt(c.Request.Context(), "password", "success")
	h.establishSession(c, result)
}

func (h *Handlers) ShowRegister(c *gin.Context) {
	if sess := guard.CurrentSession(c); sess != nil {
		c.Redirect(http.StatusFound, dashboardFor(sess.Role))
		return
	}
	h.Renderer.Page(c, http.StatusOK, "auth/register", h.Layout(c, "Register", "/register"), gin.H{
		"Name": "", "Email": "",
	})
}

func (h *Handlers) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRegister(c, form, "Please fill in every field.")
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		h.renderRegister(c, form, registerValidationMessage(err))
		return
	}

	result, err := h.API.Register(c.Request.Context(), api.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
	})
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			recordAuthAttempt(c.Request.Context(), "register", "rejected")
			h.renderRegister(c, form, "An account with this email already exists.")
			return
		}
		recordAuthAttempt(c.Request.Context(), "register", "error")
		h.Logger.Error("Register call failed", zap.Error(err))
		h.renderRegister(c, form, "Registration is unavailable right now. Please try again.")
		return
	}

	recordAuthAttempt(c.Request.Context(), "register", "success")
	h.establishSession(c, result)
}

// Logout clears the session record and every cached query. Idempotent; a
// signed-out user posting to it just lands back on the landing page.
func (h *Handlers) Logout(c *gin.Context) {
	id := h.cookies.SessionID(c)
	if err := h.Sessions.Clear(c.Request.Context(), id); err != nil {
		h.Logger.Warn("Session clear on logout failed", zap.Error(err))
	}
	h.Cache.Flush()
	h.API.ResetAuthFailure(id)
	c.Redirect(http.StatusFound, "/")
}

// establishSession persists the backend's answer as the new session record
// and bounces the browser to its recorded target, or the role's dashboard.
func (h *Handlers) establishSession(c *gin.Context, result *api.AuthResult) {
	role := models.ParseRole(result.User.Role)
	if result.Token == "" || !role.Valid() {
		h.Logger.Error("Backend returned an unusable auth result",
			zap.String("role", result.User.Role))
		h.renderLogin(c, "Sign-in is unavailable right now. Please try again.")
		return
	}

	id := h.cookies.SessionID(c)
	sess := &models.Session{
		ID:       id,
		UserID:   result.User.ID,
		Name:     result.User.Name,
		Email:    result.User.Email,
		Role:     role,
		Token:    result.Token,
		PhotoURL: result.User.PhotoURL,
	}

	ctx := c.Request.Context()
	if err := h.Sessions.Save(ctx, sess); err != nil {
		h.Logger.Error("Session save failed", zap.Error(err))
		h.renderLogin(c, "Sign-in is unavailable right now. Please try again.")
		return
	}

	// A new identity invalidates everything cached for the old one, and the
	// 401 reaction must be armed again for the fresh token.
	h.Cache.Flush()
	h.API.ResetAuthFailure(id)

	h.Logger.Info("Session established",
		zap.String("session_id", id),
		zap.String("role", string(role)))

	target := h.Sessions.TakeReturnTo(ctx, id)
	if target == "" {
		target = dashboardFor(role)
	}
	c.Redirect(http.StatusFound, target)
}

func (h *Handlers) renderLogin(c *gin.Context, message string) {
	layout := h.Layout(c, "Sign in", "/login")
	layout.Error = message
	h.Renderer.Page(c, http.StatusOK, "auth/login", layout, nil)
}

func (h *Handlers) renderRegister(c *gin.Context, form registerForm, message string) {
	layout := h.Layout(c, "Register", "/register")
	layout.Error = message
	h.Renderer.Page(c, http.StatusOK, "auth/register", layout, gin.H{
		"Name":  form.Name,
		"Email": form.Email,
	})
}

func registerValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "Name":
			return "Please enter your full name."
		case "Email":
			return "Please enter a valid email address."
		case "Password":
			return "Password must be at least 8 characters."
		case "Role":
			return "Please choose whether you want to find a tutor or teach."
		}
	}
	return "Please check the form and try again."
}

func recordAuthAttempt(ctx context.Context, method, outcome string) {
	metrics.Get().AuthRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("outcome", outcome),
	))
}

func dashboardFor(role models.Role) string {
	switch role {
	case models.RoleStudent:
		return "/student/dashboard"
	case models.RoleTutor:
		return "/tutor/dashboard"
	case models.RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/"
	}
}
