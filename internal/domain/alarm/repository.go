package alarm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/prefs"
)

const storageKey = "alarm"

// Repository persists the single alarm record through the preference store.
type Repository interface {
	Load(ctx context.Context) (*Alarm, error)
	Save(ctx context.Context, a *Alarm) error
	Clear(ctx context.Context) error
}

type repository struct {
	store prefs.Store
}

func NewRepository(store prefs.Store) Repository {
	return &repository{store: store}
}

// Load returns the scheduled alarm, or nil when none is scheduled. A
// corrupt record reads as "no alarm"; parse failures never escalate.
func (r *repository) Load(ctx context.Context) (*Alarm, error) {
	raw, found, err := r.store.Get(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return nil, nil
	}

	var a Alarm
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, nil
	}

	a.Days = sanitizeDays(a.Days)
	return &a, nil
}

func (r *repository) Save(ctx context.Context, a *Alarm) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storageKey, string(data))
}

func (r *repository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, storageKey)
}

// sanitizeDays drops out-of-range weekday values; a record left with no
// valid day defaults to today's weekday so the alarm stays schedulable.
func sanitizeDays(days []int) []int {
	valid := days[:0]
	for _, d := range days {
		if d >= 1 && d <= 7 {
			valid = append(valid, d)
		}
	}
	if len(valid) == 0 {
		return []int{isoWeekday(time.Now().Weekday())}
	}
	return valid
}
