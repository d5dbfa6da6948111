package challenge

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the set of evaluators gating one alarm ring. The dismiss gate
// opens only when every evaluator is Complete.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu         sync.Mutex
	order      []string
	evaluators map[string]*Evaluator
}

// ChallengeProgress is the externally visible state of one evaluator.
type ChallengeProgress struct {
	ID       string `json:"id"`
	Kind     Kind   `json:"kind"`
	Complete bool   `json:"complete"`
	Prompt   string `json:"prompt"`
}

// Submit routes one input event to the named evaluator.
func (s *Session) Submit(challengeID, input string) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.evaluators[challengeID]
	if !ok {
		return SubmitResult{}, ErrChallengeNotFound
	}
	return e.Submit(input), nil
}

// Progress returns the state of every evaluator in setup order.
func (s *Session) Progress() []ChallengeProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ChallengeProgress, 0, len(s.order))
	for _, id := range s.order {
		e := s.evaluators[id]
		out = append(out, ChallengeProgress{
			ID:       id,
			Kind:     e.Kind,
			Complete: e.Complete(),
			Prompt:   e.Prompt(),
		})
	}
	return out
}

// CanDismiss reports whether every evaluator has completed.
func (s *Session) CanDismiss() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.evaluators {
		if !e.Complete() {
			return false
		}
	}
	return true
}
