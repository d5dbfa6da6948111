package profile

import (
	"errors"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/routine"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrConversationNotFound = errors.New("onboarding conversation not found")
	ErrConversationDone     = errors.New("onboarding conversation already finished")
	ErrInvalidWakeTime      = errors.New("invalid wake time")
)

// DefaultAge stands in whenever the stored or submitted age cannot be read.
const DefaultAge = 18

// Profile is the single user record. There are no accounts; the app serves
// one person and the profile is overwritten in place.
type Profile struct {
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Occupation     string    `json:"occupation"`
	WakeHour       int       `json:"wakeHour"`
	WakeMinute     int       `json:"wakeMinute"`
	MorningSummary string    `json:"morningSummary"`
	RoutineTaskIDs []string  `json:"routineTaskIds"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Sanitize repairs a profile read from storage so callers never see
// unusable values. Unknown routine task IDs are dropped rather than kept as
// dangling references.
func (p *Profile) Sanitize() {
	if p.Age <= 0 {
		p.Age = DefaultAge
	}
	if p.WakeHour < 0 || p.WakeHour > 23 {
		p.WakeHour = 7
	}
	if p.WakeMinute < 0 || p.WakeMinute > 59 {
		p.WakeMinute = 0
	}

	kept := p.RoutineTaskIDs[:0]
	for _, id := range p.RoutineTaskIDs {
		if _, err := routine.LookupStep(id); err == nil {
			kept = append(kept, id)
		}
	}
	p.RoutineTaskIDs = kept
}
