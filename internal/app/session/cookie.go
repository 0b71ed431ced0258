package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var nowFunc = time.Now

// CookieManager ties a browser to its storage scope. The cookie value is an
// HS256-signed token carrying only the storage record id; a tampered or
// malformed cookie is treated as if no cookie existed and a fresh id is
// minted. No expiry is encoded: the record stays live until cleared or until
// the backend rejects its bearer token.
type CookieManager struct {
	secretKey  string
	cookieName string
	secure     bool
}

type cookieClaims struct {
	jwt.RegisteredClaims
}

func NewCookieManager(secretKey, cookieName string, secure bool) *CookieManager {
	return &CookieManager{
		secretKey:  secretKey,
		cookieName: cookieName,
		secure:     secure,
	}
}

// SessionID returns the storage id named by the request's cookie, minting
// and setting a new one when the cookie is absent or fails validation.
func (m *CookieManager) SessionID(c *gin.Context) string {
	if raw, err := c.Cookie(m.cookieName); err == nil && raw != "" {
		if id, err := m.parse(raw); err == nil {
			return id
		}
	}

	id := uuid.NewString()
	m.setCookie(c, id)
	return id
}

// PeekSessionID is SessionID without the mint-on-miss side effect; it
// returns "" when the request carries no valid cookie.
func (m *CookieManager) PeekSessionID(r *http.Request) string {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	id, err := m.parse(cookie.Value)
	if err != nil {
		return ""
	}
	return id
}

func (m *CookieManager) parse(raw string) (string, error) {
	claims := &cookieClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid session cookie")
	}
	return claims.Subject, nil
}

func (m *CookieManager) setCookie(c *gin.Context, id string) {
	claims := cookieClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  id,
			IssuedAt: jwt.NewNumericDate(nowFunc()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		// Signing only fails on a broken key; fall through without a cookie
		// and the next request mints again.
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   365 * 24 * 3600,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
