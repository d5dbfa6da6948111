package challenge

import "errors"

var (
	ErrSessionNotFound   = errors.New("ring session not found")
	ErrChallengeNotFound = errors.New("challenge not part of this session")
	ErrUnknownChallenge  = errors.New("unknown challenge id")
)

// Kind is the closed set of challenge types. Branching on it is always an
// exhaustive switch; there is no open subclassing.
type Kind string

const (
	KindTap  Kind = "tap"
	KindMath Kind = "math"
	KindCopy Kind = "copy"
)

// Definition describes a challenge in the fixed catalog shown at
// alarm-setup time. IDs are stored in scheduled alarms, keep them stable.
type Definition struct {
	ID          string `json:"id"`
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var catalog = []Definition{
	{ID: "tap", Kind: KindTap, Title: "Tap Frenzy", Description: "Tap the button until the counter runs out"},
	{ID: "math", Kind: KindMath, Title: "Quick Sums", Description: "Solve a few additions to prove you are awake"},
	{ID: "copy", Kind: KindCopy, Title: "Copy That", Description: "Type the sentence exactly as shown"},
}

// copySentences are the target sentences for the copy challenge. One is
// picked per ring session.
var copySentences = []string{
	"The early morning has gold in its mouth.",
	"Lose an hour in the morning, and you will spend all day looking for it.",
	"Every sunrise is an invitation to brighten someone's day.",
}

// Catalog returns the fixed challenge catalog.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// LookupDefinition finds a catalog entry by ID.
func LookupDefinition(id string) (Definition, error) {
	for _, d := range catalog {
		if d.ID == id {
			return d, nil
		}
	}
	return Definition{}, ErrUnknownChallenge
}
