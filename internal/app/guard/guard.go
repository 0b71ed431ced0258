package guard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/etuitionbd/webclient/internal/app/models"
	"github.com/etuitionbd/webclient/internal/app/session"
)

// State is the guard's position while resolving access to a protected route.
// Every request starts at StateChecking and settles at exactly one of the
// other two; page content is never rendered from StateChecking.
type State int

const (
	StateChecking State = iota
	StateDenied
	StateGranted
)

// Decision is the settled outcome for one request.
type Decision struct {
	State   State
	Session *models.Session
	// RedirectTo is set only for the no-session denial; a wrong-role denial
	// renders in place and leaves it empty.
	RedirectTo string
}

// Evaluate applies the access rules to a loaded (possibly absent) session.
// No session bounces to login; a session with a role outside the allow-list
// is denied in place; an empty allow-list admits any session.
func Evaluate(sess *models.Session, allowed ...models.Role) Decision {
	if sess == nil {
		return Decision{State: StateDenied, RedirectTo: "/login"}
	}
	if !sess.HasRole(allowed...) {
		return Decision{State: StateDenied, Session: sess}
	}
	return Decision{State: StateGranted, Session: sess}
}

const sessionContextKey = "authSession"

// CurrentSession returns the session the guard attached to this request,
// or nil when the request is anonymous.
func CurrentSession(c *gin.Context) *models.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if sess, ok := v.(*models.Session); ok {
			return sess
		}
	}
	return nil
}

// ForbiddenRenderer draws the in-place not-permitted page inside the
// caller's own shell. Injected so the guard stays independent of templates.
type ForbiddenRenderer func(c *gin.Context, sess *models.Session)

// Guard wires the access rules into Gin middleware.
type Guard struct {
	sessions  *session.Store
	cookies   *session.CookieManager
	forbidden ForbiddenRenderer
	logger    *zap.Logger
}

func New(sessions *session.Store, cookies *session.CookieManager, forbidden ForbiddenRenderer, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{
		sessions:  sessions,
		cookies:   cookies,
		forbidden: forbidden,
		logger:    logger,
	}
}

// Attach loads the session, if any, and stores it on the request context.
// It never denies; public routes use it so shells can show signed-in state.
func (g *Guard) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := g.cookies.SessionID(c)
		if sess, ok := g.sessions.Load(c.Request.Context(), id); ok {
			c.Set(sessionContextKey, sess)
		}
		c.Next()
	}
}

// Require protects a route with a role allow-list. An anonymous request is
// bounced to the login page with its target recorded for bounce-back; an
// authenticated request with the wrong role gets the not-permitted page at
// the original URL. Run after Attach.
func (g *Guard) Require(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := Evaluate(CurrentSession(c), allowed...)

		switch decision.State {
		case StateGranted:
			c.Next()
		case StateDenied:
			if decision.RedirectTo != "" {
				id := g.cookies.SessionID(c)
				if c.Request.Method == http.MethodGet {
					g.sessions.SaveReturnTo(c.Request.Context(), id, c.Request.URL.RequestURI())
				}
				c.Redirect(http.StatusFound, decision.RedirectTo)
				c.Abort()
				return
			}
			g.logger.Info("Role denied for route",
				zap.String("path", c.Request.URL.Path),
				zap.String("role", string(decision.Session.Role)))
			g.forbidden(c, decision.Session)
			c.Abort()
		default:
			// Evaluate never leaves StateChecking; treat it as denied if it
			// ever does.
			c.AbortWithStatus(http.StatusForbidden)
		}
	}
}
