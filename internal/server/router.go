package server

import (
	"context"
	"strconv"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/etuitionbd/webclient/internal/app/domain"
	"github.com/etuitionbd/webclient/internal/app/domain/admin"
	"github.com/etuitionbd/webclient/internal/app/domain/applications"
	"github.com/etuitionbd/webclient/internal/app/domain/auth"
	"github.com/etuitionbd/webclient/internal/app/domain/dashboards"
	"github.com/etuitionbd/webclient/internal/app/domain/payments"
	"github.com/etuitionbd/webclient/internal/app/domain/profiles"
	"github.com/etuitionbd/webclient/internal/app/domain/tuitions"
	"github.com/etuitionbd/webclient/internal/app/guard"
	"github.com/etuitionbd/webclient/internal/app/middleware"
	"github.com/etuitionbd/webclient/internal/app/observability/metrics"
	"github.com/etuitionbd/webclient/internal/app/session"
	"github.com/etuitionbd/webclient/internal/app/ui"
	"github.com/etuitionbd/webclient/internal/pkg/api"
	"github.com/etuitionbd/webclient/internal/pkg/config"
	"github.com/etuitionbd/webclient/internal/pkg/fetch"
	"github.com/etuitionbd/webclient/internal/pkg/storage"
	"github.com/etuitionbd/webclient/internal/routes"
)

// SetupRouter wires the whole client together: session store over the
// persistent KV, API client with the central expired-session reaction, fetch
// cache, guard, and every domain handler group.
func SetupRouter(cfg *config.Config, kv storage.KV, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		Context:    zapContextFunc(),
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.OTELGinMiddleware("etuitionbd-webclient"))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityMiddleware())
	r.Use(middleware.MetricsMiddleware())

	sessions := session.NewStore(kv, logger)
	cookies := session.NewCookieManager(cfg.Session.SecretKey, cfg.Session.CookieName, false)
	cache := fetch.NewCache(cfg.Cache.DefaultTTL, cfg.Cache.CleanupInterval, logger,
		fetch.WithObserver(
			func(ctx context.Context) { metrics.Get().CacheHitsTotal.Add(ctx, 1) },
			func(ctx context.Context) { metrics.Get().CacheMissesTotal.Add(ctx, 1) },
		))

	// A rejected token clears the stored session and flushes every cached
	// query; the next render falls back to the signed-out shell.
	apiClient := api.NewClient(cfg.Backend.BaseURL, logger,
		api.WithAuthFailureHook(func(ctx context.Context, sessionID string) {
			sessions.Clear(ctx, sessionID)
			cache.Flush()
			metrics.Get().SessionClearsTotal.Add(ctx, 1)
		}),
		api.WithCallObserver(func(ctx context.Context, method, path string, status int, elapsed time.Duration) {
			metrics.Get().BackendRequestDuration.Record(ctx, elapsed.Seconds(),
				metric.WithAttributes(
					attribute.String("method", method),
					attribute.String("path", path),
					attribute.String("status", strconv.Itoa(status)),
				))
		}))

	renderer := ui.NewRenderer(logger)
	g := guard.New(sessions, cookies, renderer.NotPermitted, logger)

	base := &domain.Base{
		API:      apiClient,
		Cache:    cache,
		Sessions: sessions,
		Renderer: renderer,
		Logger:   logger,
	}

	routes.Setup(r, routes.Deps{
		Guard:        g,
		Renderer:     renderer,
		Auth:         auth.NewHandlers(base, cookies, cfg.Google),
		Dashboards:   dashboards.NewHandlers(base),
		Tuitions:     tuitions.NewHandlers(base),
		Applications: applications.NewHandlers(base),
		Payments:     payments.NewHandlers(base, payments.NewProvider(cfg.Stripe.SecretKey), cfg.Stripe.PublishableKey),
		Profiles:     profiles.NewHandlers(base),
		Admin:        admin.NewHandlers(base),
	})

	return r
}

// zapContextFunc returns the Zap context function for logging
func zapContextFunc() ginzap.Fn {
	return func(c *gin.Context) []zapcore.Field {
		fields := []zapcore.Field{}

		if requestID := c.Writer.Header().Get("X-Request-Id"); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().IsValid() {
			fields = append(fields,
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}

		return fields
	}
}
