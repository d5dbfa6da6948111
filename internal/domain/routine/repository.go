package routine

import (
	"context"
	"encoding/json"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/prefs"
)

const feedKey = "feed"

// Repository persists the feed of completed routine runs.
type Repository interface {
	LoadFeed(ctx context.Context) ([]Entry, error)
	PrependEntry(ctx context.Context, entry Entry) error
}

type repository struct {
	store prefs.Store
}

func NewRepository(store prefs.Store) Repository {
	return &repository{store: store}
}

// LoadFeed returns the persisted feed, newest first. A missing or corrupt
// record reads as an empty feed.
func (r *repository) LoadFeed(ctx context.Context) ([]Entry, error) {
	raw, found, err := r.store.Get(ctx, feedKey)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []Entry{}, nil
	}
	return entries, nil
}

// PrependEntry writes the new entry at the head of the feed. Last write
// wins; there is a single writer in practice (the routine service).
func (r *repository) PrependEntry(ctx context.Context, entry Entry) error {
	entries, err := r.LoadFeed(ctx)
	if err != nil {
		return err
	}

	entries = append([]Entry{entry}, entries...)

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, feedKey, string(data))
}
