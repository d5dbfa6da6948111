package routine

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrStepNotFound    = errors.New("routine step not found")
	ErrRunNotFound     = errors.New("routine run not found")
	ErrRunFinished     = errors.New("routine run already finished")
	ErrEntryNotFound   = errors.New("feed entry not found")
	ErrNoStepsSelected = errors.New("no routine steps selected")
)

// StepKind is the closed set of routine step types.
type StepKind string

const (
	KindTask  StepKind = "task"
	KindInfo  StepKind = "info"
	KindPhoto StepKind = "photo"
)

// Step is one unit of the guided morning sequence. The catalog is static;
// scheduled alarms reference steps by ID.
type Step struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Kind        StepKind `json:"kind"`
}

var catalog = []Step{
	{ID: "hydrate", Title: "Drink a glass of water", Description: "Rehydrate before anything else", Kind: KindTask},
	{ID: "bed", Title: "Make your bed", Description: "Start the day with one finished thing", Kind: KindTask},
	{ID: "stretch", Title: "Stretch for two minutes", Description: "Neck, shoulders, back", Kind: KindTask},
	{ID: "daylight", Title: "Get some daylight", Description: "Open the curtains or step outside", Kind: KindInfo},
	{ID: "intention", Title: "Set an intention", Description: "One sentence about what matters today", Kind: KindInfo},
	{ID: "selfie", Title: "Morning photo", Description: "Capture how the day starts", Kind: KindPhoto},
}

// Catalog returns the full step catalog in display order.
func Catalog() []Step {
	out := make([]Step, len(catalog))
	copy(out, catalog)
	return out
}

// LookupStep finds a catalog step by ID.
func LookupStep(id string) (Step, error) {
	for _, s := range catalog {
		if s.ID == id {
			return s, nil
		}
	}
	return Step{}, ErrStepNotFound
}

// StepResult records one completed step within a run. The JSON shape is the
// persisted wire format, shared with the mobile client.
type StepResult struct {
	StepID      string   `json:"id"`
	Kind        StepKind `json:"type"`
	Note        string   `json:"note"`
	PhotoBase64 string   `json:"imageBase64,omitempty"`
}

// Entry is one completed routine run in the feed. Entries are immutable
// once created; the feed is stored newest first.
type Entry struct {
	Timestamp time.Time    `json:"timestamp"`
	Results   []StepResult `json:"results"`
}

// Run is an in-flight guided routine. Abandoning a run before the last step
// discards its results; only a finished run produces a feed entry.
type Run struct {
	ID        uuid.UUID    `json:"id"`
	StartedAt time.Time    `json:"started_at"`
	Steps     []Step       `json:"steps"`
	Results   []StepResult `json:"results"`
}

// CurrentStep returns the next step awaiting completion.
func (r *Run) CurrentStep() (Step, bool) {
	if len(r.Results) >= len(r.Steps) {
		return Step{}, false
	}
	return r.Steps[len(r.Results)], true
}

// Finished reports whether every step has a result.
func (r *Run) Finished() bool {
	return len(r.Results) == len(r.Steps)
}

// Snapshot returns a copy of the run that is safe to read while the
// original keeps collecting results under the service lock.
func (r *Run) Snapshot() *Run {
	return &Run{
		ID:        r.ID,
		StartedAt: r.StartedAt,
		Steps:     append([]Step(nil), r.Steps...),
		Results:   append([]StepResult(nil), r.Results...),
	}
}
