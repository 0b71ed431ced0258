package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowOpen(t *testing.T) {
	s := newFlowStore()
	f := s.open("browser-1", "app-1", 500)

	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "browser-1", f.SessionID)
	assert.Equal(t, "app-1", f.ApplicationID)
	assert.EqualValues(t, 500, f.AmountTk)
	assert.Equal(t, PhaseIdle, f.Phase)
}

func TestFlowBegin(t *testing.T) {
	t.Run("owner consumes the flow exactly once", func(t *testing.T) {
		s := newFlowStore()
		f := s.open("browser-1", "app-1", 500)

		got, err := s.begin(f.ID, "browser-1")
		require.NoError(t, err)
		assert.Equal(t, PhaseAwaitingGateway, got.Phase)

		// A double-submitted form replays the same flow id.
		_, err = s.begin(f.ID, "browser-1")
		assert.ErrorIs(t, err, ErrFlowConsumed)
	})

	t.Run("another session cannot take over the flow", func(t *testing.T) {
		s := newFlowStore()
		f := s.open("browser-1", "app-1", 500)

		_, err := s.begin(f.ID, "browser-2")
		assert.ErrorIs(t, err, ErrFlowNotFound)

		// The owner's single use is still intact.
		_, err = s.begin(f.ID, "browser-1")
		assert.NoError(t, err)
	})

	t.Run("unknown flow id", func(t *testing.T) {
		s := newFlowStore()
		_, err := s.begin("no-such-flow", "browser-1")
		assert.ErrorIs(t, err, ErrFlowNotFound)
	})

	t.Run("expired flow cannot begin", func(t *testing.T) {
		s := newFlowStore()
		f := s.open("browser-1", "app-1", 500)
		s.mu.Lock()
		s.flows[f.ID].CreatedAt = time.Now().Add(-flowTTL - time.Minute)
		s.mu.Unlock()

		_, err := s.begin(f.ID, "browser-1")
		assert.ErrorIs(t, err, ErrFlowNotFound)
	})
}

func TestFlowAdvance(t *testing.T) {
	s := newFlowStore()
	f := s.open("browser-1", "app-1", 500)

	_, err := s.begin(f.ID, "browser-1")
	require.NoError(t, err)

	s.advance(f.ID, PhaseAwaitingBackend)
	s.advance(f.ID, PhaseSettled)

	s.mu.Lock()
	assert.Equal(t, PhaseSettled, s.flows[f.ID].Phase)
	s.mu.Unlock()

	// Advancing an unknown flow is a no-op.
	s.advance("gone", PhaseFailed)
}

func TestFlowEviction(t *testing.T) {
	s := newFlowStore()
	stale := s.open("browser-1", "app-1", 500)
	s.mu.Lock()
	s.flows[stale.ID].CreatedAt = time.Now().Add(-flowTTL - time.Minute)
	s.mu.Unlock()

	// Opening a new flow sweeps out expired ones.
	s.open("browser-1", "app-2", 700)

	s.mu.Lock()
	_, ok := s.flows[stale.ID]
	s.mu.Unlock()
	assert.False(t, ok, "expired flows are evicted on open")
}

func TestFeeFor(t *testing.T) {
	cases := []struct {
		name    string
		salary  int64
		percent float64
		want    int64
	}{
		{"ten percent of 5000", 5000, 10, 500},
		{"rounds half up", 1250, 10.5, 131},
		{"floors at one taka", 1, 1, 1},
		{"zero salary still charges the floor", 0, 10, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, feeFor(tc.salary, tc.percent))
		})
	}
}
