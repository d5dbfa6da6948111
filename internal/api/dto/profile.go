package dto

import "time"

// UpdateProfileRequest represents a direct profile edit
type UpdateProfileRequest struct {
	Name           string   `json:"name" binding:"required"`
	Age            int      `json:"age" binding:"min=0"`
	Occupation     string   `json:"occupation"`
	WakeHour       int      `json:"wakeHour" binding:"min=0,max=23"`
	WakeMinute     int      `json:"wakeMinute" binding:"min=0,max=59"`
	MorningSummary string   `json:"morningSummary"`
	RoutineTaskIDs []string `json:"routineTaskIds"`
}

// ProfileResponse represents the stored profile
type ProfileResponse struct {
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Occupation     string    `json:"occupation"`
	WakeHour       int       `json:"wakeHour"`
	WakeMinute     int       `json:"wakeMinute"`
	MorningSummary string    `json:"morningSummary"`
	RoutineTaskIDs []string  `json:"routineTaskIds"`
	CreatedAt      time.Time `json:"createdAt"`
}

// OnboardingReplyRequest carries one answer in the onboarding interview
type OnboardingReplyRequest struct {
	Answer string `json:"answer"`
}

// ConversationResponse represents the state of an onboarding interview.
// Profile is set only on the reply that finishes the interview.
type ConversationResponse struct {
	ID      string           `json:"id"`
	Stage   string           `json:"stage"`
	Prompt  string           `json:"prompt"`
	Done    bool             `json:"done"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}
