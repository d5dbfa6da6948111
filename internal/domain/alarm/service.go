package alarm

import (
	"context"
	"errors"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/challenge"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/events"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/routine"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/tone"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrChallengesIncomplete = errors.New("challenges not completed")
	ErrUnknownTask          = errors.New("unknown routine task")
)

// Ringer arms the one-shot timer for the alarm slot. Arming always cancels
// any pending timer first; there is never more than one live timer.
type Ringer interface {
	Arm(a Alarm, fireAt time.Time)
	Cancel()
	Pending() (time.Time, bool)
}

// ScheduleInput is everything the alarm screen submits on save.
type ScheduleInput struct {
	Hour         int
	Minute       int
	Days         []int
	ToneID       string
	Challenges   []string
	MorningTasks []string
}

type Service interface {
	Schedule(ctx context.Context, input ScheduleInput) (*Alarm, time.Time, error)
	Current(ctx context.Context) (*Alarm, error)
	PreviewNext(ctx context.Context) (time.Time, error)
	Disable(ctx context.Context) error
	Snooze(ctx context.Context, sessionID uuid.UUID) (time.Time, error)
	Dismiss(ctx context.Context, sessionID uuid.UUID) error
	Restore(ctx context.Context) error
}

type service struct {
	repo         Repository
	ringer       Ringer
	challengeSvc challenge.Service
	redis        *cache.RedisClient
	logger       *zap.Logger
	snooze       time.Duration
}

func NewService(repo Repository, ringer Ringer, challengeSvc challenge.Service, redis *cache.RedisClient, logger *zap.Logger, snooze time.Duration) Service {
	if snooze <= 0 {
		snooze = 5 * time.Minute
	}
	return &service{
		repo:         repo,
		ringer:       ringer,
		challengeSvc: challengeSvc,
		redis:        redis,
		logger:       logger,
		snooze:       snooze,
	}
}

// Schedule validates and persists the alarm, overwriting any previous
// record, and arms the timer for the next occurrence.
func (s *service) Schedule(ctx context.Context, input ScheduleInput) (*Alarm, time.Time, error) {
	if input.Hour < 0 || input.Hour > 23 || input.Minute < 0 || input.Minute > 59 {
		return nil, time.Time{}, ErrInvalidTime
	}
	if len(input.Days) == 0 {
		return nil, time.Time{}, ErrNoDaysSelected
	}
	for _, d := range input.Days {
		if d < 1 || d > 7 {
			return nil, time.Time{}, ErrInvalidDay
		}
	}
	if _, err := tone.Lookup(input.ToneID); err != nil {
		return nil, time.Time{}, err
	}
	if len(input.Challenges) == 0 {
		return nil, time.Time{}, ErrNoChallengeSelected
	}
	for _, id := range input.Challenges {
		if _, err := challenge.LookupDefinition(id); err != nil {
			return nil, time.Time{}, err
		}
	}
	for _, id := range input.MorningTasks {
		if _, err := routine.LookupStep(id); err != nil {
			return nil, time.Time{}, ErrUnknownTask
		}
	}

	a := &Alarm{
		Hour:         input.Hour,
		Minute:       input.Minute,
		Days:         input.Days,
		ToneID:       input.ToneID,
		Challenges:   input.Challenges,
		MorningTasks: input.MorningTasks,
	}

	if err := s.repo.Save(ctx, a); err != nil {
		return nil, time.Time{}, err
	}

	fireAt := a.NextFireTime(time.Now())
	s.ringer.Arm(*a, fireAt)

	s.logger.Info("Alarm scheduled",
		zap.Int("hour", a.Hour),
		zap.Int("minute", a.Minute),
		zap.Ints("days", a.Days),
		zap.String("tone_id", a.ToneID),
		zap.Time("next_fire", fireAt))

	return a, fireAt, nil
}

func (s *service) Current(ctx context.Context) (*Alarm, error) {
	a, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAlarmNotFound
	}
	return a, nil
}

func (s *service) PreviewNext(ctx context.Context) (time.Time, error) {
	a, err := s.Current(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return a.NextFireTime(time.Now()), nil
}

// Disable cancels the pending timer and clears the persisted record.
func (s *service) Disable(ctx context.Context) error {
	s.ringer.Cancel()
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("Alarm disabled")
	return nil
}

// Snooze closes the current ring session and re-arms a one-shot a few
// minutes out. The weekly schedule is untouched.
func (s *service) Snooze(ctx context.Context, sessionID uuid.UUID) (time.Time, error) {
	a, err := s.Current(ctx)
	if err != nil {
		return time.Time{}, err
	}

	if err := s.challengeSvc.CloseSession(ctx, sessionID); err != nil && !errors.Is(err, challenge.ErrSessionNotFound) {
		return time.Time{}, err
	}

	fireAt := time.Now().Add(s.snooze)
	s.ringer.Arm(*a, fireAt)

	s.publishRingEvent(ctx, events.EventTypeRingSnoozed, sessionID, map[string]interface{}{
		"refire_at": fireAt.UTC().Format(time.RFC3339),
	})

	s.logger.Info("Alarm snoozed",
		zap.String("session_id", sessionID.String()),
		zap.Time("refire_at", fireAt))

	return fireAt, nil
}

// Dismiss ends the ring, but only once every challenge in the session has
// completed. An incomplete gate is not an error state for the client, it
// just keeps ringing.
func (s *service) Dismiss(ctx context.Context, sessionID uuid.UUID) error {
	ok, err := s.challengeSvc.CanDismiss(ctx, sessionID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrChallengesIncomplete
	}

	if err := s.challengeSvc.CloseSession(ctx, sessionID); err != nil {
		return err
	}

	s.publishRingEvent(ctx, events.EventTypeRingDismissed, sessionID, nil)

	s.logger.Info("Alarm dismissed", zap.String("session_id", sessionID.String()))
	return nil
}

// Restore re-arms the timer from the persisted record after a restart.
// No record, or a corrupt one, leaves the slot empty.
func (s *service) Restore(ctx context.Context) error {
	a, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if a == nil {
		return nil
	}

	fireAt := a.NextFireTime(time.Now())
	s.ringer.Arm(*a, fireAt)

	s.logger.Info("Alarm restored from storage", zap.Time("next_fire", fireAt))
	return nil
}

func (s *service) publishRingEvent(ctx context.Context, eventType string, sessionID uuid.UUID, details map[string]interface{}) {
	event := &events.RingEvent{
		EventType: eventType,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
		Details:   details,
	}
	if err := s.redis.PublishRingEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish ring event", zap.Error(err))
	}
}
