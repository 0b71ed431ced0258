package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func newCookieContext(t *testing.T, cookieValue string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookieValue != "" {
		c.Request.AddCookie(&http.Cookie{Name: "etuition_session", Value: cookieValue})
	}
	return c, w
}

func issuedCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := w.Result()
	defer res.Body.Close()
	for _, ck := range res.Cookies() {
		if ck.Name == "etuition_session" {
			return ck
		}
	}
	return nil
}

func TestSessionIDMintsWhenAbsent(t *testing.T) {
	m := NewCookieManager(testSecret, "etuition_session", false)
	c, w := newCookieContext(t, "")

	id := m.SessionID(c)
	require.NotEmpty(t, id)

	ck := issuedCookie(t, w)
	require.NotNil(t, ck, "a fresh cookie must be set")
	assert.True(t, ck.HttpOnly)

	// The minted cookie names the same storage id on the next request.
	c2, _ := newCookieContext(t, ck.Value)
	assert.Equal(t, id, m.SessionID(c2))
}

func TestSessionIDStableAcrossRequests(t *testing.T) {
	m := NewCookieManager(testSecret, "etuition_session", false)
	c, w := newCookieContext(t, "")
	id := m.SessionID(c)
	ck := issuedCookie(t, w)
	require.NotNil(t, ck)

	for i := 0; i < 3; i++ {
		c2, w2 := newCookieContext(t, ck.Value)
		assert.Equal(t, id, m.SessionID(c2))
		assert.Nil(t, issuedCookie(t, w2), "a valid cookie must not be reissued")
	}
}

func TestSessionIDRejectsTamperedCookie(t *testing.T) {
	m := NewCookieManager(testSecret, "etuition_session", false)
	c, w := newCookieContext(t, "")
	id := m.SessionID(c)
	ck := issuedCookie(t, w)
	require.NotNil(t, ck)

	t.Run("garbage value mints a fresh id", func(t *testing.T) {
		c2, w2 := newCookieContext(t, "not-a-token")
		got := m.SessionID(c2)
		assert.NotEmpty(t, got)
		assert.NotEqual(t, id, got)
		assert.NotNil(t, issuedCookie(t, w2))
	})

	t.Run("token signed with another key mints a fresh id", func(t *testing.T) {
		other := NewCookieManager("different-secret", "etuition_session", false)
		co, wo := newCookieContext(t, "")
		other.SessionID(co)
		foreign := issuedCookie(t, wo)
		require.NotNil(t, foreign)

		c2, _ := newCookieContext(t, foreign.Value)
		assert.NotEqual(t, id, m.SessionID(c2))
	})
}

func TestPeekSessionID(t *testing.T) {
	m := NewCookieManager(testSecret, "etuition_session", false)

	t.Run("no cookie peeks empty", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, m.PeekSessionID(r))
	})

	t.Run("valid cookie peeks the id without minting", func(t *testing.T) {
		c, w := newCookieContext(t, "")
		id := m.SessionID(c)
		ck := issuedCookie(t, w)
		require.NotNil(t, ck)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "etuition_session", Value: ck.Value})
		assert.Equal(t, id, m.PeekSessionID(r))
	})

	t.Run("invalid cookie peeks empty", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "etuition_session", Value: "junk"})
		assert.Empty(t, m.PeekSessionID(r))
	})
}
