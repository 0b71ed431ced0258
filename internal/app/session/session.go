package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/etuitionbd/webclient/internal/app/models"
	"github.com/etuitionbd/webclient/internal/pkg/storage"
)

const (
	sessionKeyPrefix  = "session/"
	returnToKeyPrefix = "returnto/"
)

// Store reads and writes the session record in browser-persistent storage.
// Every consumer depends on this interface, never on the storage primitive,
// so tests can substitute an in-memory map.
type Store struct {
	kv     storage.KV
	logger *zap.Logger
}

func NewStore(kv storage.KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger}
}

// Load returns the session stored under id, or (nil, false) when no record
// exists or the stored value fails to parse. A malformed value is treated
// identically to an absent one; Load never propagates an error.
func (s *Store) Load(ctx context.Context, id string) (*models.Session, bool) {
	if id == "" {
		return nil, false
	}

	raw, err := s.kv.Get(ctx, sessionKeyPrefix+id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("Session storage read failed", zap.Error(err))
		}
		return nil, false
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.logger.Warn("Discarding malformed session record", zap.String("session_id", id))
		return nil, false
	}
	if sess.Token == "" || !sess.Role.Valid() {
		return nil, false
	}

	sess.ID = id
	return &sess, true
}

// Save persists the full session record, overwriting any prior value.
func (s *Store) Save(ctx context.Context, sess *models.Session) error {
	if sess == nil || sess.ID == "" {
		return fmt.Errorf("session: cannot save without an id")
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: marshal record: %w", err)
	}
	return s.kv.Set(ctx, sessionKeyPrefix+sess.ID, string(raw))
}

// Clear removes the session record and its auxiliary keys. Idempotent:
// clearing an already-absent session is not an error, which is what lets
// several concurrent 401s collapse harmlessly.
func (s *Store) Clear(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.kv.Delete(ctx, returnToKeyPrefix+id); err != nil {
		s.logger.Warn("Failed to clear bounce-back target", zap.Error(err))
	}
	return s.kv.Delete(ctx, sessionKeyPrefix+id)
}

// SaveReturnTo records the originally requested location so a successful
// login can bounce the user back to it.
func (s *Store) SaveReturnTo(ctx context.Context, id, target string) {
	if id == "" || target == "" {
		return
	}
	if err := s.kv.Set(ctx, returnToKeyPrefix+id, target); err != nil {
		s.logger.Warn("Failed to record bounce-back target", zap.Error(err))
	}
}

// TakeReturnTo consumes and returns the recorded bounce-back target, or ""
// when none was recorded.
func (s *Store) TakeReturnTo(ctx context.Context, id string) string {
	if id == "" {
		return ""
	}
	target, err := s.kv.Get(ctx, returnToKeyPrefix+id)
	if err != nil {
		return ""
	}
	_ = s.kv.Delete(ctx, returnToKeyPrefix+id)
	return target
}
