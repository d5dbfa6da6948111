package scheduler

import (
	"testing"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/alarm"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/challenge"
	"github.com/daybreakhq/Daybreak/Backend_go/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScheduler(t *testing.T) *RingScheduler {
	t.Helper()
	challengeSvc := challenge.NewService(challenge.Config{}, zap.NewNop())
	return NewRingScheduler(challengeSvc, nil, logger.NewLogger())
}

func testAlarm() alarm.Alarm {
	return alarm.Alarm{
		Hour:       7,
		Minute:     0,
		Days:       []int{1, 2, 3, 4, 5, 6, 7},
		ToneID:     "classic",
		Challenges: []string{"tap"},
	}
}

func TestArmAndPending(t *testing.T) {
	s := newScheduler(t)
	fireAt := time.Now().Add(time.Hour)

	s.Arm(testAlarm(), fireAt)

	pending, armed := s.Pending()
	assert.True(t, armed)
	assert.Equal(t, fireAt, pending)
}

func TestArmReplacesPendingTimer(t *testing.T) {
	s := newScheduler(t)

	s.Arm(testAlarm(), time.Now().Add(time.Hour))
	later := time.Now().Add(2 * time.Hour)
	s.Arm(testAlarm(), later)

	pending, armed := s.Pending()
	assert.True(t, armed)
	assert.Equal(t, later, pending)
}

func TestCancel(t *testing.T) {
	s := newScheduler(t)

	s.Arm(testAlarm(), time.Now().Add(time.Hour))
	s.Cancel()

	_, armed := s.Pending()
	assert.False(t, armed)
}

func TestFireRearmsNextOccurrence(t *testing.T) {
	s := newScheduler(t)
	a := testAlarm()

	fireAt := time.Now()
	s.Arm(a, fireAt)

	// The timer fires immediately and the slot re-arms for the next
	// occurrence past the fire time.
	require.Eventually(t, func() bool {
		pending, armed := s.Pending()
		return armed && pending.After(fireAt)
	}, 2*time.Second, 10*time.Millisecond)

	pending, _ := s.Pending()
	expected := a.NextFireTime(fireAt.Add(time.Minute))
	assert.Equal(t, expected, pending)

	s.Cancel()
}
