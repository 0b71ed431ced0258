package session

import (
	"context"

	"go.uber.org/zap"
)

const oauthStateKeyPrefix = "oauthstate/"

// SaveOAuthState records the anti-forgery state for an in-flight provider
// round trip. One state per browser; starting a new flow replaces it.
func (s *Store) SaveOAuthState(ctx context.Context, id, state string) error {
	if id == "" || state == "" {
		return nil
	}
	return s.kv.Set(ctx, oauthStateKeyPrefix+id, state)
}

// TakeOAuthState consumes and returns the recorded state, or "" when the
// browser has no flow in progress. Consume-once: a replayed callback fails
// the state check.
func (s *Store) TakeOAuthState(ctx context.Context, id string) string {
	if id == "" {
		return ""
	}
	state, err := s.kv.Get(ctx, oauthStateKeyPrefix+id)
	if err != nil {
		return ""
	}
	if err := s.kv.Delete(ctx, oauthStateKeyPrefix+id); err != nil {
		s.logger.Warn("Failed to clear oauth state", zap.Error(err))
	}
	return state
}
