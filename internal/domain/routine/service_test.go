package routine

import (
	"context"
	"testing"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/prefs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(NewRepository(prefs.NewMemoryStore()), nil, zap.NewNop())
}

func TestStartRunWithSelection(t *testing.T) {
	svc := newTestService(t)

	run, err := svc.StartRun(context.Background(), []string{"stretch", "hydrate"})
	require.NoError(t, err)

	// Selection order is run order
	require.Len(t, run.Steps, 2)
	assert.Equal(t, "stretch", run.Steps[0].ID)
	assert.Equal(t, "hydrate", run.Steps[1].ID)

	current, ok := run.CurrentStep()
	require.True(t, ok)
	assert.Equal(t, "stretch", current.ID)
}

func TestStartRunEmptySelectionUsesCatalog(t *testing.T) {
	svc := newTestService(t)

	run, err := svc.StartRun(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, run.Steps, len(Catalog()))
}

func TestStartRunUnknownStep(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.StartRun(context.Background(), []string{"hydrate", "teleport"})
	assert.ErrorIs(t, err, ErrStepNotFound)
}

func TestCompleteStepsWritesFeedEntry(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	run, err := svc.StartRun(ctx, []string{"hydrate", "selfie"})
	require.NoError(t, err)

	updated, entry, err := svc.CompleteStep(ctx, run.ID, StepResultInput{Note: "glass of water"})
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.False(t, updated.Finished())

	updated, entry, err = svc.CompleteStep(ctx, run.ID, StepResultInput{Note: "sunrise", PhotoBase64: "aGVsbG8="})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, updated.Finished())

	// Result list mirrors the step list
	require.Len(t, entry.Results, 2)
	assert.Equal(t, "hydrate", entry.Results[0].StepID)
	assert.Equal(t, KindTask, entry.Results[0].Kind)
	assert.Equal(t, "glass of water", entry.Results[0].Note)
	assert.Equal(t, "selfie", entry.Results[1].StepID)
	assert.Equal(t, KindPhoto, entry.Results[1].Kind)
	assert.Equal(t, "aGVsbG8=", entry.Results[1].PhotoBase64)

	// The finished run is gone and the feed has the entry
	_, err = svc.GetRun(ctx, run.ID)
	assert.ErrorIs(t, err, ErrRunNotFound)

	feed, err := svc.ListFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, entry.Timestamp, feed[0].Timestamp)
}

func TestCompleteStepAfterFinishedRun(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.CompleteStep(ctx, uuid.New(), StepResultInput{})
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestAbandonRunLeavesFeedUntouched(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	run, err := svc.StartRun(ctx, []string{"hydrate", "bed"})
	require.NoError(t, err)

	_, _, err = svc.CompleteStep(ctx, run.ID, StepResultInput{Note: "done"})
	require.NoError(t, err)

	require.NoError(t, svc.AbandonRun(ctx, run.ID))

	feed, err := svc.ListFeed(ctx)
	require.NoError(t, err)
	assert.Empty(t, feed)

	assert.ErrorIs(t, svc.AbandonRun(ctx, run.ID), ErrRunNotFound)
}

func TestGetRunReturnsSnapshot(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	started, err := svc.StartRun(ctx, []string{"hydrate", "bed"})
	require.NoError(t, err)

	before, err := svc.GetRun(ctx, started.ID)
	require.NoError(t, err)

	_, _, err = svc.CompleteStep(ctx, started.ID, StepResultInput{Note: "done"})
	require.NoError(t, err)

	// Runs handed out earlier never see later results
	assert.Empty(t, started.Results)
	assert.Empty(t, before.Results)

	after, err := svc.GetRun(ctx, started.ID)
	require.NoError(t, err)
	assert.Len(t, after.Results, 1)
}

func TestGetEntryByTimestamp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	run, err := svc.StartRun(ctx, []string{"hydrate"})
	require.NoError(t, err)

	_, entry, err := svc.CompleteStep(ctx, run.ID, StepResultInput{})
	require.NoError(t, err)
	require.NotNil(t, entry)

	found, err := svc.GetEntry(ctx, entry.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, entry.Results, found.Results)

	_, err = svc.GetEntry(ctx, entry.Timestamp.Add(1))
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
