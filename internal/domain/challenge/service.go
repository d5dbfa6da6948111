package challenge

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	OpenSession(ctx context.Context, challengeIDs []string) (*Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	Submit(ctx context.Context, sessionID uuid.UUID, challengeID, input string) (SubmitResult, error)
	CanDismiss(ctx context.Context, sessionID uuid.UUID) (bool, error)
	CloseSession(ctx context.Context, sessionID uuid.UUID) error
	ListCatalog(ctx context.Context) []Definition
}

// Config carries the evaluator defaults selected at deploy time.
type Config struct {
	TapGoal      int
	MathRequired int
	SessionTTL   time.Duration
}

type service struct {
	cfg    Config
	logger *zap.Logger

	mu       sync.Mutex
	rng      *rand.Rand
	sessions map[uuid.UUID]*Session
}

func NewService(cfg Config, logger *zap.Logger) Service {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 2 * time.Hour
	}
	s := &service{
		cfg:      cfg,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: make(map[uuid.UUID]*Session),
	}
	go s.sweepLoop()
	return s
}

// OpenSession creates the evaluator set for one ring. Sessions are
// in-memory only: an abandoned ring is garbage, not state worth persisting.
func (s *service) OpenSession(ctx context.Context, challengeIDs []string) (*Session, error) {
	evaluators := make(map[string]*Evaluator, len(challengeIDs))
	order := make([]string, 0, len(challengeIDs))

	s.mu.Lock()
	defer s.mu.Unlock()

	// Each session gets its own rng; evaluators keep drawing questions after
	// OpenSession returns, outside the service lock.
	sessionRng := rand.New(rand.NewSource(s.rng.Int63()))

	for _, id := range challengeIDs {
		def, err := LookupDefinition(id)
		if err != nil {
			return nil, err
		}
		if _, dup := evaluators[id]; dup {
			continue
		}
		evaluators[id] = NewEvaluator(def.Kind, s.cfg.TapGoal, s.cfg.MathRequired, sessionRng)
		order = append(order, id)
	}

	session := &Session{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		order:      order,
		evaluators: evaluators,
	}
	s.sessions[session.ID] = session

	s.logger.Info("Opened ring session",
		zap.String("session_id", session.ID.String()),
		zap.Strings("challenges", order))

	return session, nil
}

func (s *service) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *service) Submit(ctx context.Context, sessionID uuid.UUID, challengeID, input string) (SubmitResult, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return SubmitResult{}, err
	}
	return session.Submit(challengeID, input)
}

func (s *service) CanDismiss(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return session.CanDismiss(), nil
}

func (s *service) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *service) ListCatalog(ctx context.Context) []Definition {
	return Catalog()
}

// sweepLoop drops sessions older than the TTL. A phone that dies mid-ring
// leaves its session behind; this is the only cleanup path.
func (s *service) sweepLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().UTC().Add(-s.cfg.SessionTTL)
		s.mu.Lock()
		for id, session := range s.sessions {
			if session.CreatedAt.Before(cutoff) {
				delete(s.sessions, id)
				s.logger.Info("Expired ring session", zap.String("session_id", id.String()))
			}
		}
		s.mu.Unlock()
	}
}
