package profile

import (
	"context"
	"sync"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/events"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/routine"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UpdateInput is a direct profile edit from the settings screen, outside
// the onboarding interview.
type UpdateInput struct {
	Name           string
	Age            int
	Occupation     string
	WakeHour       int
	WakeMinute     int
	MorningSummary string
	RoutineTaskIDs []string
}

type Service interface {
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, input UpdateInput) (*Profile, error)
	Delete(ctx context.Context) error
	StartOnboarding(ctx context.Context) (*Conversation, error)
	GetConversation(ctx context.Context, conversationID uuid.UUID) (*Conversation, error)
	Reply(ctx context.Context, conversationID uuid.UUID, answer string) (*Conversation, *Profile, error)
}

type service struct {
	repo   Repository
	redis  *cache.RedisClient
	logger *logrus.Logger

	mu            sync.Mutex
	conversations map[uuid.UUID]*Conversation
}

func NewService(repo Repository, redis *cache.RedisClient, logger *logrus.Logger) Service {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &service{
		repo:          repo,
		redis:         redis,
		logger:        logger,
		conversations: make(map[uuid.UUID]*Conversation),
	}
}

func (s *service) Get(ctx context.Context) (*Profile, error) {
	p, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// Update overwrites the stored profile with the submitted fields. The
// original creation time survives edits.
func (s *service) Update(ctx context.Context, input UpdateInput) (*Profile, error) {
	if input.WakeHour < 0 || input.WakeHour > 23 || input.WakeMinute < 0 || input.WakeMinute > 59 {
		return nil, ErrInvalidWakeTime
	}
	for _, id := range input.RoutineTaskIDs {
		if _, err := routine.LookupStep(id); err != nil {
			return nil, err
		}
	}

	createdAt := time.Now().UTC()
	if existing, err := s.repo.Load(ctx); err != nil {
		return nil, err
	} else if existing != nil {
		createdAt = existing.CreatedAt
	}

	p := &Profile{
		Name:           input.Name,
		Age:            input.Age,
		Occupation:     input.Occupation,
		WakeHour:       input.WakeHour,
		WakeMinute:     input.WakeMinute,
		MorningSummary: input.MorningSummary,
		RoutineTaskIDs: input.RoutineTaskIDs,
		CreatedAt:      createdAt,
	}
	p.Sanitize()

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.publishUpdated(ctx)
	s.logger.WithFields(logrus.Fields{
		"name":      p.Name,
		"wake_hour": p.WakeHour,
	}).Info("Profile updated")

	return p, nil
}

func (s *service) Delete(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("Profile deleted")
	return nil
}

// StartOnboarding opens a fresh interview. Conversations are in-memory;
// a client that disappears mid-interview just starts over.
func (s *service) StartOnboarding(ctx context.Context) (*Conversation, error) {
	conv := &Conversation{
		ID:        uuid.New(),
		Stage:     stageOrder[0],
		StartedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.conversations[conv.ID] = conv
	s.mu.Unlock()

	s.logger.WithField("conversation_id", conv.ID.String()).Info("Onboarding started")
	return conv, nil
}

func (s *service) GetConversation(ctx context.Context, conversationID uuid.UUID) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return conv, nil
}

// Reply feeds one answer into the interview. When the last stage is
// answered the drafted profile is persisted and returned; until then the
// returned profile is nil and the conversation carries the next prompt.
func (s *service) Reply(ctx context.Context, conversationID uuid.UUID, answer string) (*Conversation, *Profile, error) {
	s.mu.Lock()
	conv, ok := s.conversations[conversationID]
	if !ok {
		s.mu.Unlock()
		return nil, nil, ErrConversationNotFound
	}
	if conv.Done() {
		s.mu.Unlock()
		return nil, nil, ErrConversationDone
	}

	conv.apply(answer)
	done := conv.Done()
	if done {
		delete(s.conversations, conversationID)
	}
	s.mu.Unlock()

	if !done {
		return conv, nil, nil
	}

	p := conv.draft
	p.CreatedAt = time.Now().UTC()
	p.Sanitize()

	if err := s.repo.Save(ctx, &p); err != nil {
		return nil, nil, err
	}

	s.publishUpdated(ctx)
	s.logger.WithFields(logrus.Fields{
		"conversation_id": conversationID.String(),
		"name":            p.Name,
	}).Info("Onboarding completed")

	return conv, &p, nil
}

func (s *service) publishUpdated(ctx context.Context) {
	event := &events.RingEvent{
		EventType: events.EventTypeProfileUpdated,
		SessionID: uuid.Nil,
		Timestamp: time.Now().UTC(),
	}
	if err := s.redis.PublishRingEvent(ctx, event); err != nil {
		s.logger.WithError(err).Error("Failed to publish profile event")
	}
}
