package payments

import (
	"context"
	"math"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/etuitionbd/webclient/internal/app/domain"
	"github.com/etuitionbd/webclient/internal/app/guard"
	"github.com/etuitionbd/webclient/internal/app/models"
	"github.com/etuitionbd/webclient/internal/app/observability/metrics"
	"github.com/etuitionbd/webclient/internal/pkg/api"
	"github.com/etuitionbd/webclient/internal/pkg/fetch"
)

const defaultFeePercent = 10.0

type Handlers struct {
	*domain.Base
	provider       *Provider
	flows          *flowStore
	publishableKey string
}

func NewHandlers(base *domain.Base, provider *Provider, publishableKey string) *Handlers {
	return &Handlers{
		Base:           base,
		provider:       provider,
		flows:          newFlowStore(),
		publishableKey: publishableKey,
	}
}

// ShowCheckout opens a fresh checkout flow for hiring an applicant. The fee
// is computed server-side from platform settings; the form never carries an
// amount the client could tamper with.
func (h *Handlers) ShowCheckout(c *gin.Context) {
	sess := guard.CurrentSession(c)
	applicationID := c.Param("id")
	ctx := c.Request.Context()

	app, err := h.loadApplication(ctx, sess, applicationID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Renderer.NotFound(c, sess)
			return
		}
		h.RenderFetchError(c, err, c.Request.URL.RequestURI())
		return
	}

	feePercent := h.feePercent(ctx, sess)
	feeTk := feeFor(app.ExpectedSalaryTk, feePercent)
	flow := h.flows.open(sess.ID, applicationID, feeTk)

	h.Logger.Info("Checkout opened",
		zap.String("flow_id", flow.ID),
		zap.String("application_id", applicationID),
		zap.Int64("fee_tk", feeTk))

	h.Renderer.Page(c, http.StatusOK, "student/checkout", h.Layout(c, "Checkout", "/student/tuitions"), gin.H{
		"Application":          app,
		"FlowID":               flow.ID,
		"FeePercent":           feePercent,
		"FeeTk":                feeTk,
		"StripePublishableKey": h.publishableKey,
	})
}

// Confirm settles a checkout: charge the gateway, then record the hire with
// the backend. The flow id is consumed exactly once, so resubmitting the
// form cannot charge twice.
func (h *Handlers) Confirm(c *gin.Context) {
	sess := guard.CurrentSession(c)
	applicationID := c.Param("id")
	ctx := c.Request.Context()

	flowID := c.PostForm("flow_id")
	paymentMethodID := c.PostForm("payment_method_id")
	checkoutURL := "/student/applications/" + url.PathEscape(applicationID) + "/checkout"

	if paymentMethodID == "" {
		c.Redirect(http.StatusFound, checkoutURL+"?error="+url.QueryEscape("Card details were not submitted. Please try again."))
		return
	}

	flow, err := h.flows.begin(flowID, sess.ID)
	if err != nil {
		if errors.Is(err, ErrFlowConsumed) {
			c.Redirect(http.StatusFound, "/student/ongoing?flash="+url.QueryEscape("This payment was already processed."))
			return
		}
		c.Redirect(http.StatusFound, checkoutURL+"?error="+url.QueryEscape("This checkout expired. Please start again."))
		return
	}

	metrics.Get().CheckoutAttemptsTotal.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("application_id", applicationID)))

	paymentRef, err := h.provider.ConfirmCardPayment(flow.AmountTk*100, "bdt", paymentMethodID, map[string]string{
		"application_id": applicationID,
		"flow_id":        flow.ID,
	})
	if err != nil {
		h.flows.advance(flow.ID, PhaseFailed)
		h.Logger.Warn("Gateway declined checkout",
			zap.String("flow_id", flow.ID),
			zap.Error(err))
		c.Redirect(http.StatusFound, checkoutURL+"?error="+url.QueryEscape("Payment was declined. No money was taken and nothing was changed."))
		return
	}

	h.flows.advance(flow.ID, PhaseAwaitingBackend)

	_, err = fetch.Run(ctx, h.Cache, fetch.Mutation[*models.OngoingTuition]{
		Fn: func(ctx context.Context) (*models.OngoingTuition, error) {
			return h.API.Hire(ctx, sess, applicationID, api.HireInput{
				PaymentRef: paymentRef,
				AmountTk:   flow.AmountTk,
				Currency:   "BDT",
			})
		},
		Invalidates: []string{
			fetch.OngoingKey("student", sess.UserID),
			fetch.PaymentsKey(sess.UserID),
			fetch.StatsKey("student", sess.UserID),
		},
	})
	if err != nil {
		// The charge went through but the hire was not recorded. Keep the
		// payment reference and its gateway status loud in the logs for
		// reconciliation.
		h.flows.advance(flow.ID, PhaseFailed)
		paymentStatus, statusErr := h.provider.GetPaymentStatus(paymentRef)
		if statusErr != nil {
			paymentStatus = "unknown"
		}
		h.Logger.Error("Hire not recorded after successful charge",
			zap.String("flow_id", flow.ID),
			zap.String("payment_ref", paymentRef),
			zap.String("payment_status", paymentStatus),
			zap.String("application_id", applicationID),
			zap.Error(err))
		c.Redirect(http.StatusFound, checkoutURL+"?error="+url.QueryEscape("Your payment succeeded but the hire could not be recorded. Contact support with reference "+paymentRef+"."))
		return
	}

	h.flows.advance(flow.ID, PhaseSettled)
	h.Cache.InvalidatePrefix("applications/")
	h.Cache.InvalidatePrefix("tuitions/")

	h.Logger.Info("Checkout settled",
		zap.String("flow_id", flow.ID),
		zap.String("payment_ref", paymentRef))
	c.Redirect(http.StatusFound, "/student/ongoing?flash="+url.QueryEscape("Tutor hired. The tuition is now ongoing."))
}

// History lists the student's past transactions.
func (h *Handlers) History(c *gin.Context) {
	sess := guard.CurrentSession(c)

	transactions, err := fetch.Do(c.Request.Context(), h.Cache, fetch.Query[[]models.Transaction]{
		Key:     fetch.PaymentsKey(sess.UserID),
		TTL:     domain.ListTTL,
		Retries: 1,
		Fn: func(ctx context.Context) ([]models.Transaction, error) {
			return h.API.MyPayments(ctx, sess)
		},
	})
	if err != nil {
		h.RenderFetchError(c, err, "/student/payments")
		return
	}

	h.Renderer.Page(c, http.StatusOK, "student/payments", h.Layout(c, "Payment History", "/student/payments"), gin.H{
		"Transactions": transactions,
	})
}

func (h *Handlers) loadApplication(ctx context.Context, sess *models.Session, id string) (*models.Application, error) {
	return fetch.Do(ctx, h.Cache, fetch.Query[*models.Application]{
		Key:     fetch.ApplicationKey(sess.UserID, id),
		TTL:     domain.DetailTTL,
		Retries: 1,
		Fn: func(ctx context.Context) (*models.Application, error) {
			return h.API.GetApplication(ctx, sess, id)
		},
	})
}

func (h *Handlers) feePercent(ctx context.Context, sess *models.Session) float64 {
	settings, err := fetch.Do(ctx, h.Cache, fetch.Query[*models.PlatformSettings]{
		Key: "settings/public",
		TTL: domain.ProfileTTL,
		Fn: func(ctx context.Context) (*models.PlatformSettings, error) {
			return h.API.GetPlatformSettings(ctx, sess)
		},
	})
	if err != nil || settings.ServiceFeePercent <= 0 {
		return defaultFeePercent
	}
	return settings.ServiceFeePercent
}

func feeFor(salaryTk int64, feePercent float64) int64 {
	fee := int64(math.Round(float64(salaryTk) * feePercent / 100))
	if fee < 1 {
		fee = 1
	}
	return fee
}
