package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/alarm"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/challenge"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/events"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/cache"
	"github.com/daybreakhq/Daybreak/Backend_go/pkg/logger"
	"go.uber.org/zap"
)

// RingScheduler drives the single alarm slot. It owns at most one live
// timer; arming always replaces whatever was pending.
type RingScheduler struct {
	challengeService challenge.Service
	redis            *cache.RedisClient
	logger           *logger.Logger

	mu        sync.Mutex
	timer     *time.Timer
	pendingAt time.Time
	armed     bool
}

func NewRingScheduler(challengeService challenge.Service, redis *cache.RedisClient, logger *logger.Logger) *RingScheduler {
	return &RingScheduler{
		challengeService: challengeService,
		redis:            redis,
		logger:           logger,
	}
}

// Arm schedules the alarm to fire at fireAt, cancelling any pending timer.
func (s *RingScheduler) Arm(a alarm.Alarm, fireAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}

	s.pendingAt = fireAt
	s.armed = true
	s.timer = time.AfterFunc(delay, func() { s.fire(a, fireAt) })

	s.logger.Info("Ring timer armed",
		zap.Time("fire_at", fireAt),
		zap.Duration("delay", delay),
	)
}

// Cancel stops the pending timer, if any.
func (s *RingScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.armed = false

	s.logger.Info("Ring timer cancelled")
}

// Pending returns the fire time of the armed timer, if one is live.
func (s *RingScheduler) Pending() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingAt, s.armed
}

// fire opens the challenge session for this ring, announces it, and re-arms
// for the next weekly occurrence. Searching from one minute past the fire
// time keeps the same slot from firing twice.
func (s *RingScheduler) fire(a alarm.Alarm, firedAt time.Time) {
	ctx := context.Background()

	s.mu.Lock()
	s.armed = false
	s.timer = nil
	s.mu.Unlock()

	session, err := s.challengeService.OpenSession(ctx, a.Challenges)
	if err != nil {
		s.logger.Error("Failed to open ring session", zap.Error(err))
		return
	}

	event := &events.RingEvent{
		EventType: events.EventTypeRingStarted,
		SessionID: session.ID,
		Timestamp: time.Now().UTC(),
		Details: map[string]interface{}{
			"tone_id":       a.ToneID,
			"morning_tasks": a.MorningTasks,
		},
	}
	if err := s.redis.PublishRingEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish ring started event", zap.Error(err))
	}

	s.logger.Info("Alarm ringing",
		zap.String("session_id", session.ID.String()),
		zap.String("tone_id", a.ToneID),
	)

	next := a.NextFireTime(firedAt.Add(time.Minute))
	s.Arm(a, next)
}
