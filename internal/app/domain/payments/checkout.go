package payments

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Phase tracks one checkout through its two round trips: the gateway takes
// the money, then the backend records the hire. Nothing user-visible
// changes until the flow settles; a failed or abandoned flow leaves both
// the posting and the application exactly as they were.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseAwaitingGateway Phase = "awaiting-gateway"
	PhaseAwaitingBackend Phase = "awaiting-backend"
	PhaseSettled         Phase = "settled"
	PhaseFailed          Phase = "failed"
)

var (
	ErrFlowNotFound = errors.New("checkout: unknown or expired flow")
	ErrFlowConsumed = errors.New("checkout: flow already settled")
)

const flowTTL = 30 * time.Minute

// Flow is one in-progress checkout, bound to the session that opened it.
type Flow struct {
	ID            string
	SessionID     string
	ApplicationID string
	AmountTk      int64
	Phase         Phase
	CreatedAt     time.Time
}

// flowStore keeps in-flight checkouts in memory. A flow id is minted when
// the checkout page renders and consumed exactly once on confirmation, so a
// double-submitted form cannot charge twice.
type flowStore struct {
	mu    sync.Mutex
	flows map[string]*Flow
}

func newFlowStore() *flowStore {
	return &flowStore{flows: make(map[string]*Flow)}
}

func (s *flowStore) open(sessionID, applicationID string, amountTk int64) *Flow {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	f := &Flow{
		ID:            uuid.NewString(),
		SessionID:     sessionID,
		ApplicationID: applicationID,
		AmountTk:      amountTk,
		Phase:         PhaseIdle,
		CreatedAt:     time.Now(),
	}
	s.flows[f.ID] = f
	return f
}

// begin moves a flow from idle to awaiting-gateway. Only the owning session
// may advance it, and only once.
func (s *flowStore) begin(id, sessionID string) (*Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[id]
	if !ok || f.SessionID != sessionID || time.Since(f.CreatedAt) > flowTTL {
		return nil, ErrFlowNotFound
	}
	if f.Phase != PhaseIdle {
		return nil, ErrFlowConsumed
	}
	f.Phase = PhaseAwaitingGateway
	return f, nil
}

func (s *flowStore) advance(id string, phase Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.flows[id]; ok {
		f.Phase = phase
	}
}

func (s *flowStore) evictExpiredLocked() {
	for id, f := range s.flows {
		if time.Since(f.CreatedAt) > flowTTL {
			delete(s.flows, id)
		}
	}
}
