package profile

import (
	"context"
	"io"
	"testing"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/routine"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/prefs"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(NewRepository(prefs.NewMemoryStore()), nil, log)
}

func TestGetWithoutProfile(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	saved, err := svc.Update(ctx, UpdateInput{
		Name:           "Maya",
		Age:            31,
		Occupation:     "teacher",
		WakeHour:       6,
		WakeMinute:     45,
		MorningSummary: "calm",
		RoutineTaskIDs: []string{"hydrate"},
	})
	require.NoError(t, err)
	assert.False(t, saved.CreatedAt.IsZero())

	loaded, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Maya", loaded.Name)
	assert.Equal(t, []string{"hydrate"}, loaded.RoutineTaskIDs)
}

func TestUpdateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, UpdateInput{Name: "Maya", WakeHour: 24})
	assert.ErrorIs(t, err, ErrInvalidWakeTime)

	_, err = svc.Update(ctx, UpdateInput{Name: "Maya", RoutineTaskIDs: []string{"teleport"}})
	assert.ErrorIs(t, err, routine.ErrStepNotFound)
}

func TestUpdateKeepsCreationTime(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Update(ctx, UpdateInput{Name: "Maya", WakeHour: 7})
	require.NoError(t, err)

	second, err := svc.Update(ctx, UpdateInput{Name: "Maya R.", WakeHour: 6})
	require.NoError(t, err)

	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, UpdateInput{Name: "Maya", WakeHour: 7})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx))

	_, err = svc.Get(ctx)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestOnboardingFlow(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	conv, err := svc.StartOnboarding(ctx)
	require.NoError(t, err)
	assert.Equal(t, StageName, conv.Stage)

	answers := []string{"Maya", "31", "teacher", "06:45", "calm", "hydrate, bed"}

	var profile *Profile
	for i, answer := range answers {
		conv, profile, err = svc.Reply(ctx, conv.ID, answer)
		require.NoError(t, err)

		if i < len(answers)-1 {
			assert.Nil(t, profile)
			assert.False(t, conv.Done())
		}
	}

	require.NotNil(t, profile)
	assert.True(t, conv.Done())
	assert.Equal(t, "Maya", profile.Name)
	assert.Equal(t, 31, profile.Age)
	assert.Equal(t, 6, profile.WakeHour)
	assert.Equal(t, 45, profile.WakeMinute)
	// The summary answer is kept word for word
	assert.Equal(t, "calm", profile.MorningSummary)
	assert.Equal(t, []string{"hydrate", "bed"}, profile.RoutineTaskIDs)

	// The interview persisted the profile
	loaded, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Maya", loaded.Name)

	// The finished conversation is gone
	_, _, err = svc.Reply(ctx, conv.ID, "again")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestOnboardingMalformedAnswersGetDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	conv, err := svc.StartOnboarding(ctx)
	require.NoError(t, err)

	var profile *Profile
	for _, answer := range []string{"Maya", "old enough", "teacher", "sunrise", "calm", ""} {
		conv, profile, err = svc.Reply(ctx, conv.ID, answer)
		require.NoError(t, err)
	}

	require.NotNil(t, profile)
	assert.Equal(t, DefaultAge, profile.Age)
	assert.Equal(t, 7, profile.WakeHour)
	assert.Equal(t, 0, profile.WakeMinute)
	assert.Empty(t, profile.RoutineTaskIDs)
}

func TestGetConversation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	conv, err := svc.StartOnboarding(ctx)
	require.NoError(t, err)

	found, err := svc.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, found.ID)
	assert.Equal(t, StageName, found.Stage)

	_, err = svc.GetConversation(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestReplyUnknownConversation(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Reply(context.Background(), uuid.New(), "hello")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}
