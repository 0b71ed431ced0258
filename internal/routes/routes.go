package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/etuitionbd/webclient/internal/app/domain/admin"
	"github.com/etuitionbd/webclient/internal/app/domain/applications"
	"github.com/etuitionbd/webclient/internal/app/domain/auth"
	"github.com/etuitionbd/webclient/internal/app/domain/dashboards"
	"github.com/etuitionbd/webclient/internal/app/domain/payments"
	"github.com/etuitionbd/webclient/internal/app/domain/profiles"
	"github.com/etuitionbd/webclient/internal/app/domain/tuitions"
	"github.com/etuitionbd/webclient/internal/app/guard"
	"github.com/etuitionbd/webclient/internal/app/models"
	"github.com/etuitionbd/webclient/internal/app/ui"
)

// Deps is everything Setup needs to mount the full route tree.
type Deps struct {
	Guard        *guard.Guard
	Renderer     *ui.Renderer
	Auth         *auth.Handlers
	Dashboards   *dashboards.Handlers
	Tuitions     *tuitions.Handlers
	Applications *applications.Handlers
	Payments     *payments.Handlers
	Profiles     *profiles.Handlers
	Admin        *admin.Handlers
}

// Setup mounts every route. The session loader runs for all of them so public
// shells can show signed-in state; role allow-lists protect the scoped groups.
func Setup(r *gin.Engine, d Deps) {
	r.Use(d.Guard.Attach())

	r.GET("/", d.Dashboards.Landing)
	r.GET("/tuitions", d.Tuitions.Browse)
	r.GET("/tuitions/:id", d.Tuitions.Detail)

	r.GET("/login", d.Auth.ShowLogin)
	r.POST("/login", d.Auth.Login)
	r.GET("/register", d.Auth.ShowRegister)
	r.POST("/register", d.Auth.Register)
	r.POST("/logout", d.Auth.Logout)
	r.GET("/auth/google", d.Auth.GoogleStart)
	r.GET("/auth/google/callback", d.Auth.GoogleCallback)

	student := r.Group("/student", d.Guard.Require(models.RoleStudent))
	{
		student.GET("/dashboard", d.Dashboards.Student)
		student.GET("/tuitions/new", d.Tuitions.New)
		student.POST("/tuitions/new", d.Tuitions.Create)
		student.GET("/tuitions", d.Tuitions.Mine)
		student.GET("/tuitions/:id/applicants", d.Applications.Applicants)
		student.POST("/applications/:id/shortlist", d.Applications.Shortlist)
		student.POST("/applications/:id/reject", d.Applications.Reject)
		student.GET("/applications/:id/checkout", d.Payments.ShowCheckout)
		student.POST("/applications/:id/checkout", d.Payments.Confirm)
		student.GET("/ongoing", d.Tuitions.StudentOngoing)
		student.GET("/payments", d.Payments.History)
	}

	tutor := r.Group("/tutor", d.Guard.Require(models.RoleTutor))
	{
		tutor.GET("/dashboard", d.Dashboards.Tutor)
		tutor.GET("/tuitions", d.Tuitions.Browse)
		tutor.GET("/tuitions/:id", d.Tuitions.Detail)
		tutor.POST("/tuitions/:id/apply", d.Applications.Apply)
		tutor.GET("/applications", d.Applications.Mine)
		tutor.GET("/ongoing", d.Tuitions.TutorOngoing)
		tutor.GET("/profile", d.Profiles.Show)
		tutor.POST("/profile", d.Profiles.Update)
	}

	adminGroup := r.Group("/admin", d.Guard.Require(models.RoleAdmin))
	{
		adminGroup.GET("/dashboard", d.Admin.Dashboard)
		adminGroup.GET("/users", d.Admin.Users)
		adminGroup.POST("/users/:id/delete", d.Admin.DeleteUser)
		adminGroup.GET("/tuitions", d.Admin.Tuitions)
		adminGroup.POST("/tuitions/:id/approve", d.Admin.ApproveTuition)
		adminGroup.POST("/tuitions/:id/reject", d.Admin.RejectTuition)
		adminGroup.GET("/transactions", d.Admin.Transactions)
		adminGroup.GET("/settings", d.Admin.Settings)
		adminGroup.POST("/settings", d.Admin.UpdateSettings)
	}

	r.NoRoute(func(c *gin.Context) {
		d.Renderer.NotFound(c, guard.CurrentSession(c))
	})
}
