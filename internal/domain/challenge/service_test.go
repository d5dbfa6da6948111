package challenge

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) Service {
	t.Helper()
	return NewService(Config{TapGoal: 2, MathRequired: 1}, zap.NewNop())
}

func TestOpenSession(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	session, err := svc.OpenSession(ctx, []string{"tap", "copy"})
	require.NoError(t, err)

	progress := session.Progress()
	require.Len(t, progress, 2)
	assert.Equal(t, "tap", progress[0].ID)
	assert.Equal(t, "copy", progress[1].ID)
	assert.False(t, progress[0].Complete)
	assert.False(t, progress[1].Complete)
}

func TestOpenSessionUnknownChallenge(t *testing.T) {
	svc := newService(t)

	_, err := svc.OpenSession(context.Background(), []string{"tap", "juggle"})
	assert.ErrorIs(t, err, ErrUnknownChallenge)
}

func TestOpenSessionDeduplicates(t *testing.T) {
	svc := newService(t)

	session, err := svc.OpenSession(context.Background(), []string{"tap", "tap"})
	require.NoError(t, err)
	assert.Len(t, session.Progress(), 1)
}

func TestDismissGate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	session, err := svc.OpenSession(ctx, []string{"tap"})
	require.NoError(t, err)

	ok, err := svc.CanDismiss(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	for i := 0; i < 2; i++ {
		_, err = svc.Submit(ctx, session.ID, "tap", "")
		require.NoError(t, err)
	}

	ok, err = svc.CanDismiss(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGateNeedsEveryChallenge(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	session, err := svc.OpenSession(ctx, []string{"tap", "copy"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = svc.Submit(ctx, session.ID, "tap", "")
		require.NoError(t, err)
	}

	// Tap is done, copy is not
	ok, err := svc.CanDismiss(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubmitUnknownSession(t *testing.T) {
	svc := newService(t)

	_, err := svc.Submit(context.Background(), uuid.New(), "tap", "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmitChallengeOutsideSession(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	session, err := svc.OpenSession(ctx, []string{"tap"})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID, "math", "4")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestCloseSession(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	session, err := svc.OpenSession(ctx, []string{"tap"})
	require.NoError(t, err)

	require.NoError(t, svc.CloseSession(ctx, session.ID))
	assert.ErrorIs(t, svc.CloseSession(ctx, session.ID), ErrSessionNotFound)
}

func TestListCatalog(t *testing.T) {
	svc := newService(t)

	defs := svc.ListCatalog(context.Background())
	require.Len(t, defs, 3)

	kinds := map[Kind]bool{}
	for _, d := range defs {
		kinds[d.Kind] = true
	}
	assert.True(t, kinds[KindTap])
	assert.True(t, kinds[KindMath])
	assert.True(t, kinds[KindCopy])
}
