package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etuitionbd/webclient/internal/app/models"
)

func testSession() *models.Session {
	return &models.Session{
		ID:     "browser-1",
		UserID: "u1",
		Role:   models.RoleStudent,
		Token:  "bearer-token",
	}
}

func TestDoInjectsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Rahim"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	t.Run("session token becomes the Authorization header", func(t *testing.T) {
		var out struct {
			Name string `json:"name"`
		}
		err := client.Do(context.Background(), testSession(), http.MethodGet, "/me", nil, &out)
		require.NoError(t, err)
		assert.Equal(t, "Bearer bearer-token", gotAuth)
		assert.Equal(t, "Rahim", out.Name)
	})

	t.Run("anonymous requests carry no header", func(t *testing.T) {
		err := client.Do(context.Background(), nil, http.MethodGet, "/tuitions", nil, nil)
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestDoErrorTranslation(t *testing.T) {
	status := int32(http.StatusNotFound)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(int(atomic.LoadInt32(&status)))
		w.Write([]byte(`{"message":"no such tuition"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	ctx := context.Background()

	cases := []struct {
		name     string
		status   int32
		sentinel error
	}{
		{"401 maps to ErrUnauthenticated", http.StatusUnauthorized, models.ErrUnauthenticated},
		{"403 maps to ErrForbidden", http.StatusForbidden, models.ErrForbidden},
		{"404 maps to ErrNotFound", http.StatusNotFound, models.ErrNotFound},
		{"409 maps to ErrConflict", http.StatusConflict, models.ErrConflict},
		{"400 maps to ErrBadRequest", http.StatusBadRequest, models.ErrBadRequest},
		{"422 maps to ErrBadRequest", http.StatusUnprocessableEntity, models.ErrBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			atomic.StoreInt32(&status, tc.status)
			err := client.Do(ctx, testSession(), http.MethodGet, "/x", nil, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.EqualValues(t, tc.status, apiErr.Status)
			assert.Equal(t, "no such tuition", apiErr.Message)
		})
	}
}

func TestDoReadsBothErrorEnvelopes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"salary is required"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	err := client.Do(context.Background(), nil, http.MethodPost, "/tuitions", map[string]string{}, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "salary is required", apiErr.Message)
}

func TestAuthFailureHookFiresOncePerSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var hookCalls int32
	var hookID string
	var mu sync.Mutex
	client := NewClient(srv.URL, nil, WithAuthFailureHook(func(ctx context.Context, sessionID string) {
		atomic.AddInt32(&hookCalls, 1)
		mu.Lock()
		hookID = sessionID
		mu.Unlock()
	}))

	sess := testSession()
	ctx := context.Background()

	// A page fanning out several queries against an expired token must
	// trigger one central reaction, while every caller still sees its error.
	const n = 6
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := client.Do(ctx, sess, http.MethodGet, "/stats", nil, nil)
			assert.ErrorIs(t, err, models.ErrUnauthenticated)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&hookCalls))
	assert.Equal(t, "browser-1", hookID)

	t.Run("reset re-arms the hook for the same id", func(t *testing.T) {
		client.ResetAuthFailure(sess.ID)
		err := client.Do(ctx, sess, http.MethodGet, "/stats", nil, nil)
		assert.ErrorIs(t, err, models.ErrUnauthenticated)
		assert.EqualValues(t, 2, atomic.LoadInt32(&hookCalls))
	})
}

func TestAuthFailureHookSkipsAnonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var hookCalls int32
	client := NewClient(srv.URL, nil, WithAuthFailureHook(func(ctx context.Context, sessionID string) {
		atomic.AddInt32(&hookCalls, 1)
	}))

	err := client.Do(context.Background(), nil, http.MethodGet, "/x", nil, nil)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
	assert.Zero(t, atomic.LoadInt32(&hookCalls), "no session record to clear for anonymous calls")
}
