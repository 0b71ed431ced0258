package ui

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/etuitionbd/webclient/internal/app/models"
	"github.com/etuitionbd/webclient/internal/pkg/utils"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2 Jan 2006 15:04")
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2 Jan 2006")
	},
	"formatTk": utils.FormatTk,
	// Truncates on runes; titles here are routinely Bengali, and a byte
	// slice would cut a character in half.
	"truncate": func(s string, n int) string {
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n]) + "..."
	},
	"joinSubjects": func(subjects []string) string {
		return strings.Join(subjects, ", ")
	},
	"statusBadge": func(status string) string {
		switch strings.ToLower(status) {
		case "pending":
			return "bg-yellow-100 text-yellow-800"
		case "approved", "shortlisted", "active":
			return "bg-blue-100 text-blue-800"
		case "assigned", "hired", "succeeded":
			return "bg-green-100 text-green-800"
		case "closed", "rejected", "failed":
			return "bg-red-100 text-red-800"
		default:
			return "bg-gray-100 text-gray-800"
		}
	},
	"add": func(a, b int) int { return a + b },
}

// Renderer draws pages inside the role-scoped shell. The shell is the layout
// plus the role's navigation; pages only ever replace the content slot, so
// the frame never flickers between same-shell navigations. Every page is
// parsed once at construction; a malformed template stops the process before
// it serves a single request.
type Renderer struct {
	logger *zap.Logger
	pages  map[string]*template.Template
}

func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}

	layout, ok := templates["layout"]
	if !ok {
		panic("ui: layout template missing")
	}

	pages := make(map[string]*template.Template, len(templates))
	for name, content := range templates {
		if name == "layout" {
			continue
		}
		tmpl := template.Must(template.New("layout").Funcs(templateFuncs).Parse(layout))
		template.Must(tmpl.New("content").Parse(content))
		pages[name] = tmpl
	}

	return &Renderer{logger: logger, pages: pages}
}

// Page renders a page template wrapped in the shell described by layout.
func (r *Renderer) Page(c *gin.Context, status int, name string, layout models.LayoutData, extra gin.H) {
	tmpl, ok := r.pages[name]
	if !ok {
		r.logger.Error("Template not found", zap.String("template", name))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	data := gin.H{
		"Title":   layout.Title,
		"Session": layout.Session,
		"Nav":     layout.Nav,
		"Active":  layout.ActiveNav,
		"Error":   layout.Error,
		"Flash":   layout.Flash,
	}
	for k, v := range extra {
		data[k] = v
	}

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(c.Writer, data); err != nil {
		r.logger.Error("Template render failed", zap.String("template", name), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
	}
}

// NotPermitted renders the in-place wrong-role page inside the viewer's own
// shell. The URL stays what the user typed.
func (r *Renderer) NotPermitted(c *gin.Context, sess *models.Session) {
	layout := models.LayoutData{
		Title:   "Not permitted",
		Session: sess,
		Nav:     models.NavForRole(sessRole(sess)),
	}
	r.Page(c, http.StatusForbidden, "errors/403", layout, nil)
}

// NotFound renders the 404 page, keeping the signed-in shell when there is one.
func (r *Renderer) NotFound(c *gin.Context, sess *models.Session) {
	layout := models.LayoutData{
		Title:   "Page not found",
		Session: sess,
		Nav:     models.NavForRole(sessRole(sess)),
	}
	r.Page(c, http.StatusNotFound, "errors/404", layout, nil)
}

func sessRole(sess *models.Session) models.Role {
	if sess == nil {
		return ""
	}
	return sess.Role
}
