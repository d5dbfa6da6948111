package alarm

import (
	"context"
	"testing"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryRoundTrip(t *testing.T) {
	repo := NewRepository(prefs.NewMemoryStore())
	ctx := context.Background()

	saved := &Alarm{
		Hour:         7,
		Minute:       30,
		Days:         []int{1, 3, 5},
		ToneID:       "classic",
		Challenges:   []string{"tap", "math"},
		MorningTasks: []string{"hydrate"},
	}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, loaded)
}

func TestRepositoryLoadMissing(t *testing.T) {
	repo := NewRepository(prefs.NewMemoryStore())

	loaded, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRepositoryLoadCorrupt(t *testing.T) {
	store := prefs.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "alarm", "{not json"))

	repo := NewRepository(store)
	loaded, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRepositoryLoadSanitizesDays(t *testing.T) {
	store := prefs.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "alarm",
		`{"hour":7,"minute":0,"days":[0,3,9],"toneId":"classic","challenges":["tap"],"morningTasks":[]}`))

	repo := NewRepository(store)
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []int{3}, loaded.Days)
}

func TestRepositoryLoadDefaultsEmptyDaysToToday(t *testing.T) {
	store := prefs.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "alarm",
		`{"hour":7,"minute":0,"days":[0,9],"toneId":"classic","challenges":["tap"],"morningTasks":[]}`))

	repo := NewRepository(store)
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Days, 1)
	assert.GreaterOrEqual(t, loaded.Days[0], 1)
	assert.LessOrEqual(t, loaded.Days[0], 7)
}

func TestRepositoryClear(t *testing.T) {
	repo := NewRepository(prefs.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &Alarm{Hour: 7, Days: []int{1}, ToneID: "classic", Challenges: []string{"tap"}}))
	require.NoError(t, repo.Clear(ctx))

	loaded, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}
