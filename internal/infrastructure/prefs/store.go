package prefs

import "context"

// Store is the key/value contract every domain repository persists through.
// Values are JSON documents; readers apply their own defensive defaults when
// a value is missing or malformed, so Get never needs to distinguish the two
// beyond the found flag. Last write wins, no transactions.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
