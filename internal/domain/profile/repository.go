package profile

import (
	"context"
	"encoding/json"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/prefs"
)

const storageKey = "profile"

type Repository interface {
	Load(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
	Clear(ctx context.Context) error
}

type repository struct {
	store prefs.Store
}

func NewRepository(store prefs.Store) Repository {
	return &repository{store: store}
}

// Load returns the stored profile, or nil when none exists. A record that
// fails to parse reads as absent rather than surfacing an error.
func (r *repository) Load(ctx context.Context) (*Profile, error) {
	raw, found, err := r.store.Get(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return nil, nil
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, nil
	}
	p.Sanitize()
	return &p, nil
}

func (r *repository) Save(ctx context.Context, p *Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storageKey, string(data))
}

func (r *repository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, storageKey)
}
