package routine

import (
	"context"
	"sync"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/events"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StepResultInput is what the client submits for the current step. The
// photo is optional even for photo steps; a camera failure should not
// block the morning.
type StepResultInput struct {
	Note        string
	PhotoBase64 string
}

type Service interface {
	ListSteps(ctx context.Context) []Step
	GetStep(ctx context.Context, id string) (Step, error)
	StartRun(ctx context.Context, stepIDs []string) (*Run, error)
	GetRun(ctx context.Context, id uuid.UUID) (*Run, error)
	CompleteStep(ctx context.Context, runID uuid.UUID, input StepResultInput) (*Run, *Entry, error)
	AbandonRun(ctx context.Context, id uuid.UUID) error
	ListFeed(ctx context.Context) ([]Entry, error)
	GetEntry(ctx context.Context, timestamp time.Time) (*Entry, error)
}

type service struct {
	repo   Repository
	redis  *cache.RedisClient
	logger *zap.Logger

	mu   sync.Mutex
	runs map[uuid.UUID]*Run
}

func NewService(repo Repository, redis *cache.RedisClient, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		redis:  redis,
		logger: logger,
		runs:   make(map[uuid.UUID]*Run),
	}
}

func (s *service) ListSteps(ctx context.Context) []Step {
	return Catalog()
}

func (s *service) GetStep(ctx context.Context, id string) (Step, error) {
	return LookupStep(id)
}

// StartRun opens a guided run over the given steps, in the given order. An
// empty selection falls back to the full catalog.
func (s *service) StartRun(ctx context.Context, stepIDs []string) (*Run, error) {
	var steps []Step
	if len(stepIDs) == 0 {
		steps = Catalog()
	} else {
		steps = make([]Step, 0, len(stepIDs))
		for _, id := range stepIDs {
			step, err := LookupStep(id)
			if err != nil {
				return nil, err
			}
			steps = append(steps, step)
		}
	}

	run := &Run{
		ID:        uuid.New(),
		StartedAt: time.Now().UTC(),
		Steps:     steps,
		Results:   make([]StepResult, 0, len(steps)),
	}

	s.mu.Lock()
	s.runs[run.ID] = run
	s.mu.Unlock()

	s.logger.Info("Routine run started",
		zap.String("run_id", run.ID.String()),
		zap.Int("steps", len(steps)))

	return run.Snapshot(), nil
}

func (s *service) GetRun(ctx context.Context, id uuid.UUID) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	// Callers serialize the run outside the lock, hand them a copy.
	return run.Snapshot(), nil
}

// CompleteStep records a result for the run's current step and advances.
// Completing the last step finalizes the run: the results become a feed
// entry and the run is discarded. The returned Entry is non-nil only then.
func (s *service) CompleteStep(ctx context.Context, runID uuid.UUID, input StepResultInput) (*Run, *Entry, error) {
	s.mu.Lock()
	run, ok := s.runs[runID]
	if !ok {
		s.mu.Unlock()
		return nil, nil, ErrRunNotFound
	}

	step, ok := run.CurrentStep()
	if !ok {
		s.mu.Unlock()
		return nil, nil, ErrRunFinished
	}

	run.Results = append(run.Results, StepResult{
		StepID:      step.ID,
		Kind:        step.Kind,
		Note:        input.Note,
		PhotoBase64: input.PhotoBase64,
	})

	if !run.Finished() {
		snap := run.Snapshot()
		s.mu.Unlock()
		return snap, nil, nil
	}

	delete(s.runs, runID)
	s.mu.Unlock()

	entry := Entry{
		Timestamp: time.Now().UTC(),
		Results:   run.Results,
	}
	if err := s.repo.PrependEntry(ctx, entry); err != nil {
		return nil, nil, err
	}

	s.publishCompleted(ctx, run.ID, len(entry.Results))

	s.logger.Info("Routine run completed",
		zap.String("run_id", run.ID.String()),
		zap.Int("results", len(entry.Results)))

	return run, &entry, nil
}

// AbandonRun drops an in-flight run without writing anything to the feed.
func (s *service) AbandonRun(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[id]; !ok {
		return ErrRunNotFound
	}
	delete(s.runs, id)

	s.logger.Info("Routine run abandoned", zap.String("run_id", id.String()))
	return nil
}

func (s *service) ListFeed(ctx context.Context) ([]Entry, error) {
	return s.repo.LoadFeed(ctx)
}

// GetEntry looks up a feed entry by its exact timestamp.
func (s *service) GetEntry(ctx context.Context, timestamp time.Time) (*Entry, error) {
	entries, err := s.repo.LoadFeed(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].Timestamp.Equal(timestamp) {
			return &entries[i], nil
		}
	}
	return nil, ErrEntryNotFound
}

func (s *service) publishCompleted(ctx context.Context, runID uuid.UUID, resultCount int) {
	event := &events.RingEvent{
		EventType: events.EventTypeRoutineCompleted,
		SessionID: runID,
		Timestamp: time.Now().UTC(),
		Details: map[string]interface{}{
			"result_count": resultCount,
		},
	}
	if err := s.redis.PublishRingEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish routine event", zap.Error(err))
	}
}
