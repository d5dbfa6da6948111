package dto

import "time"

// ScheduleAlarmRequest represents the request to save the alarm slot.
// Days use ISO weekday numbering, 1 = Monday through 7 = Sunday.
type ScheduleAlarmRequest struct {
	Hour         int      `json:"hour" binding:"min=0,max=23"`
	Minute       int      `json:"minute" binding:"min=0,max=59"`
	Days         []int    `json:"days" binding:"required,min=1"`
	ToneID       string   `json:"toneId" binding:"required"`
	Challenges   []string `json:"challenges" binding:"required,min=1"`
	MorningTasks []string `json:"morningTasks"`
}

// AlarmResponse represents the scheduled alarm in API responses
type AlarmResponse struct {
	Hour         int       `json:"hour"`
	Minute       int       `json:"minute"`
	Days         []int     `json:"days"`
	ToneID       string    `json:"toneId"`
	Challenges   []string  `json:"challenges"`
	MorningTasks []string  `json:"morningTasks"`
	NextFire     time.Time `json:"nextFire"`
}

// NextFireResponse reports when the alarm will ring next
type NextFireResponse struct {
	NextFire time.Time `json:"nextFire"`
}

// RingActionRequest identifies the ring session being snoozed or dismissed
type RingActionRequest struct {
	SessionID string `json:"sessionId" binding:"required,uuid"`
}

// SnoozeResponse reports when the snoozed alarm will ring again
type SnoozeResponse struct {
	RefireAt time.Time `json:"refireAt"`
}
