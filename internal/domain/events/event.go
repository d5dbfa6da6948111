package events

import (
	"time"

	"github.com/google/uuid"
)

// Ring event types published on the ring channel
const (
	EventTypeRingStarted      = "ring_started"
	EventTypeRingSnoozed      = "ring_snoozed"
	EventTypeRingDismissed    = "ring_dismissed"
	EventTypeRoutineCompleted = "routine_completed"
	EventTypeProfileUpdated   = "profile_updated"
)

// RingEvent represents a lifecycle event of an alarm ring or routine run.
// The mobile client subscribes to these to keep its screens in sync.
type RingEvent struct {
	EventType string      `json:"event_type"`
	SessionID uuid.UUID   `json:"session_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Details   interface{} `json:"details,omitempty"`
}
