package dto

import "time"

// ChallengeDefinitionResponse represents one catalog challenge
type ChallengeDefinitionResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChallengeProgressResponse represents the visible state of one evaluator
// inside a ring session
type ChallengeProgressResponse struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Complete bool   `json:"complete"`
	Prompt   string `json:"prompt"`
}

// SessionResponse represents a ring session and its dismiss gate
type SessionResponse struct {
	ID         string                      `json:"id"`
	CreatedAt  time.Time                   `json:"createdAt"`
	Challenges []ChallengeProgressResponse `json:"challenges"`
	CanDismiss bool                        `json:"canDismiss"`
}

// SubmitChallengeRequest carries one input event for a challenge. Tap
// challenges ignore the input; every submission counts as one trigger.
type SubmitChallengeRequest struct {
	Input string `json:"input"`
}

// SubmitChallengeResponse reports the outcome of one input event
type SubmitChallengeResponse struct {
	Accepted   bool   `json:"accepted"`
	Complete   bool   `json:"complete"`
	Prompt     string `json:"prompt,omitempty"`
	CanDismiss bool   `json:"canDismiss"`
}
