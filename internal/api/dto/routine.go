package dto

import "time"

// StepResponse represents one catalog routine step
type StepResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

// StartRunRequest selects the steps for a guided run. An empty selection
// runs the whole catalog.
type StartRunRequest struct {
	StepIDs []string `json:"stepIds"`
}

// StepResultResponse represents one completed step
type StepResultResponse struct {
	StepID      string `json:"id"`
	Kind        string `json:"type"`
	Note        string `json:"note"`
	PhotoBase64 string `json:"imageBase64,omitempty"`
}

// RunResponse represents an in-flight guided run
type RunResponse struct {
	ID          string               `json:"id"`
	StartedAt   time.Time            `json:"startedAt"`
	Steps       []StepResponse       `json:"steps"`
	Results     []StepResultResponse `json:"results"`
	CurrentStep *StepResponse        `json:"currentStep,omitempty"`
	Finished    bool                 `json:"finished"`
}

// CompleteStepRequest carries the result for the run's current step
type CompleteStepRequest struct {
	Note        string `json:"note"`
	PhotoBase64 string `json:"imageBase64"`
}

// FeedEntryResponse represents one completed routine in the feed
type FeedEntryResponse struct {
	Timestamp time.Time            `json:"timestamp"`
	Results   []StepResultResponse `json:"results"`
}
