package profile

import (
	"strconv"
	"strings"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/routine"
	"github.com/google/uuid"
)

// Stage is one step of the onboarding interview. Stages always advance in
// the declared order; there is no branching.
type Stage string

const (
	StageName       Stage = "name"
	StageAge        Stage = "age"
	StageOccupation Stage = "occupation"
	StageWakeTime   Stage = "wake_time"
	StageSummary    Stage = "summary"
	StageTasks      Stage = "tasks"
	StageDone       Stage = "done"
)

var stageOrder = []Stage{StageName, StageAge, StageOccupation, StageWakeTime, StageSummary, StageTasks}

var stagePrompts = map[Stage]string{
	StageName:       "Hi! I'm your morning companion. What should I call you?",
	StageAge:        "Nice to meet you. How old are you?",
	StageOccupation: "What do you do during the day?",
	StageWakeTime:   "When do you want to wake up? (for example 07:00)",
	StageSummary:    "Describe your ideal morning in a sentence or two.",
	StageTasks:      "Which routine steps should your mornings include? (comma separated, e.g. hydrate, stretch)",
	StageDone:       "All set. Sleep well!",
}

// Conversation is one in-flight onboarding interview. The draft profile
// fills in stage by stage and is only persisted at the end.
type Conversation struct {
	ID        uuid.UUID
	Stage     Stage
	StartedAt time.Time
	draft     Profile
}

// Prompt returns the question for the conversation's current stage.
func (c *Conversation) Prompt() string {
	return stagePrompts[c.Stage]
}

// Done reports whether the interview has collected every answer.
func (c *Conversation) Done() bool {
	return c.Stage == StageDone
}

// apply records the answer for the current stage and advances. Answers are
// parsed forgivingly: a reply that cannot be read becomes a sensible
// default instead of repeating the question.
func (c *Conversation) apply(answer string) {
	answer = strings.TrimSpace(answer)

	switch c.Stage {
	case StageName:
		if answer == "" {
			answer = "Friend"
		}
		c.draft.Name = answer
	case StageAge:
		c.draft.Age = parseAge(answer)
	case StageOccupation:
		c.draft.Occupation = answer
	case StageWakeTime:
		c.draft.WakeHour, c.draft.WakeMinute = parseWakeTime(answer)
	case StageSummary:
		c.draft.MorningSummary = answer
	case StageTasks:
		c.draft.RoutineTaskIDs = parseTaskList(answer)
	}

	c.advance()
}

func (c *Conversation) advance() {
	for i, stage := range stageOrder {
		if stage == c.Stage {
			if i+1 < len(stageOrder) {
				c.Stage = stageOrder[i+1]
			} else {
				c.Stage = StageDone
			}
			return
		}
	}
	c.Stage = StageDone
}

// parseAge reads a free-text age. Anything that is not a positive number
// falls back to DefaultAge.
func parseAge(answer string) int {
	age, err := strconv.Atoi(answer)
	if err != nil || age <= 0 {
		return DefaultAge
	}
	return age
}

// parseWakeTime reads "HH:MM" (or "H:MM"). A reply it cannot read becomes
// 07:00 rather than blocking the interview.
func parseWakeTime(answer string) (int, int) {
	parts := strings.SplitN(answer, ":", 2)
	if len(parts) != 2 {
		return 7, 0
	}
	hour, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	minute, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 7, 0
	}
	return hour, minute
}

// parseTaskList reads a comma separated list of routine step IDs. Unknown
// IDs are dropped; an empty reply means no preselected steps.
func parseTaskList(answer string) []string {
	ids := []string{}
	seen := make(map[string]bool)
	for _, part := range strings.Split(answer, ",") {
		id := strings.ToLower(strings.TrimSpace(part))
		if id == "" || seen[id] {
			continue
		}
		if _, err := routine.LookupStep(id); err != nil {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
