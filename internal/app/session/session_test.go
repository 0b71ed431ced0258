package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etuitionbd/webclient/internal/app/models"
	"github.com/etuitionbd/webclient/internal/pkg/storage"
)

func newTestStore() (*Store, *storage.MemoryKV) {
	kv := storage.NewMemoryKV()
	return NewStore(kv, nil), kv
}

func TestStoreLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("absent record loads as signed out", func(t *testing.T) {
		store, _ := newTestStore()
		sess, ok := store.Load(ctx, "nobody")
		assert.False(t, ok)
		assert.Nil(t, sess)
	})

	t.Run("empty id loads as signed out", func(t *testing.T) {
		store, _ := newTestStore()
		_, ok := store.Load(ctx, "")
		assert.False(t, ok)
	})

	t.Run("malformed record is treated as absent", func(t *testing.T) {
		store, kv := newTestStore()
		require.NoError(t, kv.Set(ctx, "session/bad", "{not json"))
		_, ok := store.Load(ctx, "bad")
		assert.False(t, ok)
	})

	t.Run("record without token is treated as absent", func(t *testing.T) {
		store, kv := newTestStore()
		require.NoError(t, kv.Set(ctx, "session/x", `{"role":"student"}`))
		_, ok := store.Load(ctx, "x")
		assert.False(t, ok)
	})

	t.Run("record with unknown role is treated as absent", func(t *testing.T) {
		store, kv := newTestStore()
		require.NoError(t, kv.Set(ctx, "session/x", `{"token":"t","role":"superuser"}`))
		_, ok := store.Load(ctx, "x")
		assert.False(t, ok)
	})

	t.Run("save then load roundtrips", func(t *testing.T) {
		store, _ := newTestStore()
		in := &models.Session{
			ID:     "abc",
			UserID: "u1",
			Name:   "Rahim",
			Email:  "rahim@example.com",
			Role:   models.RoleStudent,
			Token:  "bearer-token",
		}
		require.NoError(t, store.Save(ctx, in))

		out, ok := store.Load(ctx, "abc")
		require.True(t, ok)
		assert.Equal(t, "abc", out.ID)
		assert.Equal(t, "u1", out.UserID)
		assert.Equal(t, models.RoleStudent, out.Role)
		assert.Equal(t, "bearer-token", out.Token)
	})

	t.Run("save without id fails", func(t *testing.T) {
		store, _ := newTestStore()
		assert.Error(t, store.Save(ctx, &models.Session{Token: "t", Role: models.RoleTutor}))
		assert.Error(t, store.Save(ctx, nil))
	})
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	require.NoError(t, store.Save(ctx, &models.Session{ID: "abc", Token: "t", Role: models.RoleTutor}))
	store.SaveReturnTo(ctx, "abc", "/tutor/applications")

	require.NoError(t, store.Clear(ctx, "abc"))
	_, ok := store.Load(ctx, "abc")
	assert.False(t, ok)
	assert.Empty(t, store.TakeReturnTo(ctx, "abc"))

	// Clearing again must not fail; concurrent 401 reactions rely on it.
	assert.NoError(t, store.Clear(ctx, "abc"))
	assert.NoError(t, store.Clear(ctx, ""))
}

func TestReturnTo(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	t.Run("take without save returns empty", func(t *testing.T) {
		assert.Empty(t, store.TakeReturnTo(ctx, "abc"))
	})

	t.Run("take consumes the target exactly once", func(t *testing.T) {
		store.SaveReturnTo(ctx, "abc", "/student/payments")
		assert.Equal(t, "/student/payments", store.TakeReturnTo(ctx, "abc"))
		assert.Empty(t, store.TakeReturnTo(ctx, "abc"))
	})

	t.Run("targets are scoped per browser id", func(t *testing.T) {
		store.SaveReturnTo(ctx, "one", "/a")
		store.SaveReturnTo(ctx, "two", "/b")
		assert.Equal(t, "/a", store.TakeReturnTo(ctx, "one"))
		assert.Equal(t, "/b", store.TakeReturnTo(ctx, "two"))
	})
}

func TestOAuthState(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	t.Run("take consumes the state exactly once", func(t *testing.T) {
		require.NoError(t, store.SaveOAuthState(ctx, "abc", "state-123"))
		assert.Equal(t, "state-123", store.TakeOAuthState(ctx, "abc"))
		assert.Empty(t, store.TakeOAuthState(ctx, "abc"))
	})

	t.Run("a new flow replaces the previous state", func(t *testing.T) {
		require.NoError(t, store.SaveOAuthState(ctx, "abc", "first"))
		require.NoError(t, store.SaveOAuthState(ctx, "abc", "second"))
		assert.Equal(t, "second", store.TakeOAuthState(ctx, "abc"))
	})
}
