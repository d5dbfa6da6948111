package routine

import (
	"context"
	"testing"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedRoundTrip(t *testing.T) {
	repo := NewRepository(prefs.NewMemoryStore())
	ctx := context.Background()

	entry := Entry{
		Timestamp: time.Date(2026, 8, 20, 7, 15, 0, 0, time.UTC),
		Results: []StepResult{
			{StepID: "hydrate", Kind: KindTask, Note: "done"},
			{StepID: "selfie", Kind: KindPhoto, Note: "", PhotoBase64: "aGVsbG8="},
		},
	}
	require.NoError(t, repo.PrependEntry(ctx, entry))

	loaded, err := repo.LoadFeed(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, entry, loaded[0])
}

func TestFeedNewestFirst(t *testing.T) {
	repo := NewRepository(prefs.NewMemoryStore())
	ctx := context.Background()

	first := Entry{Timestamp: time.Date(2026, 8, 19, 7, 0, 0, 0, time.UTC), Results: []StepResult{}}
	second := Entry{Timestamp: time.Date(2026, 8, 20, 7, 0, 0, 0, time.UTC), Results: []StepResult{}}

	require.NoError(t, repo.PrependEntry(ctx, first))
	require.NoError(t, repo.PrependEntry(ctx, second))

	loaded, err := repo.LoadFeed(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, second.Timestamp, loaded[0].Timestamp)
	assert.Equal(t, first.Timestamp, loaded[1].Timestamp)
}

func TestFeedMissingReadsEmpty(t *testing.T) {
	repo := NewRepository(prefs.NewMemoryStore())

	loaded, err := repo.LoadFeed(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFeedCorruptReadsEmpty(t *testing.T) {
	store := prefs.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "feed", "[{broken"))

	repo := NewRepository(store)
	loaded, err := repo.LoadFeed(ctx)
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFeedWireFormat(t *testing.T) {
	store := prefs.NewMemoryStore()
	ctx := context.Background()

	// The persisted shape is shared with the mobile client
	require.NoError(t, store.Set(ctx, "feed",
		`[{"timestamp":"2026-08-20T07:15:00Z","results":[{"id":"hydrate","type":"task","note":"done"}]}]`))

	repo := NewRepository(store)
	loaded, err := repo.LoadFeed(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Len(t, loaded[0].Results, 1)
	assert.Equal(t, "hydrate", loaded[0].Results[0].StepID)
	assert.Equal(t, KindTask, loaded[0].Results[0].Kind)
	assert.Equal(t, "done", loaded[0].Results[0].Note)
	assert.Empty(t, loaded[0].Results[0].PhotoBase64)
}
