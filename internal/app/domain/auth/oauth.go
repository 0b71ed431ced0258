package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/etuitionbd/webclient/internal/pkg/api"
	"github.com/etuitionbd/webclient/internal/pkg/config"
)

// flowPhase tracks a federated sign-in through its two round trips. The
// provider authenticates the user; the backend then mints its own token.
// Session state changes only on settled, so an abandoned or failed flow
// leaves the browser exactly as it was.
type flowPhase string

const (
	phaseAwaitingProvider flowPhase = "awaiting-provider"
	phaseAwaitingBackend  flowPhase = "awaiting-backend"
	phaseSettled          flowPhase = "settled"
	phaseFailed           flowPhase = "failed"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleFlow struct {
	oauth  *oauth2.Config
	logger *zap.Logger
}

func newGoogleFlow(cfg config.GoogleConfig, logger *zap.Logger) *googleFlow {
	return &googleFlow{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		logger: logger,
	}
}

type googleUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleStart begins the provider round trip. The anti-forgery state is
// stored against this browser's storage id and checked on the way back.
func (h *Handlers) GoogleStart(c *gin.Context) {
	id := h.cookies.SessionID(c)
	state := uuid.NewString()
	if err := h.Sessions.SaveOAuthState(c.Request.Context(), id, state); err != nil {
		h.Logger.Error("Failed to record oauth state", zap.Error(err))
		h.renderLogin(c, "Google sign-in is unavailable right now.")
		return
	}

	h.Logger.Info("Federated sign-in started",
		zap.String("session_id", id),
		zap.String("phase", string(phaseAwaitingProvider)))
	c.Redirect(http.StatusFound, h.google.oauth.AuthCodeURL(state))
}

// GoogleCallback finishes the flow: state check, code exchange, identity
// fetch, then federation against the backend. Every failure path lands back
// on login with a message and no session change.
func (h *Handlers) GoogleCallback(c *gin.Context) {
	id := h.cookies.SessionID(c)
	ctx := c.Request.Context()

	expected := h.Sessions.TakeOAuthState(ctx, id)
	if expected == "" || c.Query("state") != expected {
		h.failFlow(c, id, "state mismatch", nil)
		return
	}
	if errCode := c.Query("error"); errCode != "" {
		h.failFlow(c, id, "provider declined: "+errCode, nil)
		return
	}
	code := c.Query("code")
	if code == "" {
		h.failFlow(c, id, "missing code", nil)
		return
	}

	token, err := h.google.oauth.Exchange(ctx, code)
	if err != nil {
		h.failFlow(c, id, "code exchange", err)
		return
	}

	user, err := h.google.fetchUser(ctx, token)
	if err != nil {
		h.failFlow(c, id, "userinfo fetch", err)
		return
	}

	h.Logger.Info("Federated identity verified",
		zap.String("session_id", id),
		zap.String("phase", string(phaseAwaitingBackend)))

	idToken, _ := token.Extra("id_token").(string)
	result, err := h.API.SocialLogin(ctx, api.SocialLoginInput{
		Provider: "google",
		IDToken:  idToken,
		Name:     user.Name,
		Email:    user.Email,
		PhotoURL: user.Picture,
	})
	if err != nil {
		h.failFlow(c, id, "backend federation", err)
		return
	}

	h.Logger.Info("Federated sign-in settled",
		zap.String("session_id", id),
		zap.String("phase", string(phaseSettled)))
	recordAuthAttempt(ctx, "google", "success")
	h.establishSession(c, result)
}

func (h *Handlers) failFlow(c *gin.Context, id, reason string, err error) {
	recordAuthAttempt(c.Request.Context(), "google", "failed")
	h.Logger.Warn("Federated sign-in failed",
		zap.String("session_id", id),
		zap.String("phase", string(phaseFailed)),
		zap.String("reason", reason),
		zap.Error(err))
	h.renderLogin(c, "Google sign-in did not complete. Please try again.")
}

func (g *googleFlow) fetchUser(ctx context.Context, token *oauth2.Token) (*googleUser, error) {
	resp, err := g.oauth.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, errors.Wrap(err, "userinfo request")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("userinfo returned %d", resp.StatusCode)
	}

	var user googleUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.Wrap(err, "decode userinfo")
	}
	if user.Email == "" {
		return nil, errors.New("userinfo missing email")
	}
	return &user, nil
}
