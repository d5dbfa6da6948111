package handlers

import (
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/dto"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/alarm"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/challenge"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/profile"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/routine"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/tone"
)

// AlarmToResponse converts a domain alarm to its API representation
func AlarmToResponse(a *alarm.Alarm, nextFire time.Time) dto.AlarmResponse {
	return dto.AlarmResponse{
		Hour:         a.Hour,
		Minute:       a.Minute,
		Days:         a.Days,
		ToneID:       a.ToneID,
		Challenges:   a.Challenges,
		MorningTasks: a.MorningTasks,
		NextFire:     nextFire,
	}
}

// ToneToResponse converts a catalog tone to its API representation
func ToneToResponse(t tone.Tone) dto.ToneResponse {
	return dto.ToneResponse{
		ID:        t.ID,
		Label:     t.Label,
		Frequency: t.Frequency,
		Duration:  t.Duration,
	}
}

// DefinitionToResponse converts a catalog challenge to its API representation
func DefinitionToResponse(d challenge.Definition) dto.ChallengeDefinitionResponse {
	return dto.ChallengeDefinitionResponse{
		ID:          d.ID,
		Kind:        string(d.Kind),
		Title:       d.Title,
		Description: d.Description,
	}
}

// SessionToResponse converts a ring session to its API representation
func SessionToResponse(s *challenge.Session) dto.SessionResponse {
	progress := s.Progress()
	challenges := make([]dto.ChallengeProgressResponse, 0, len(progress))
	for _, p := range progress {
		challenges = append(challenges, dto.ChallengeProgressResponse{
			ID:       p.ID,
			Kind:     string(p.Kind),
			Complete: p.Complete,
			Prompt:   p.Prompt,
		})
	}
	return dto.SessionResponse{
		ID:         s.ID.String(),
		CreatedAt:  s.CreatedAt,
		Challenges: challenges,
		CanDismiss: s.CanDismiss(),
	}
}

// StepToResponse converts a catalog routine step to its API representation
func StepToResponse(s routine.Step) dto.StepResponse {
	return dto.StepResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Kind:        string(s.Kind),
	}
}

// ResultToResponse converts one step result to its API representation
func ResultToResponse(r routine.StepResult) dto.StepResultResponse {
	return dto.StepResultResponse{
		StepID:      r.StepID,
		Kind:        string(r.Kind),
		Note:        r.Note,
		PhotoBase64: r.PhotoBase64,
	}
}

// RunToResponse converts an in-flight run to its API representation
func RunToResponse(r *routine.Run) dto.RunResponse {
	steps := make([]dto.StepResponse, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, StepToResponse(s))
	}
	results := make([]dto.StepResultResponse, 0, len(r.Results))
	for _, res := range r.Results {
		results = append(results, ResultToResponse(res))
	}

	resp := dto.RunResponse{
		ID:        r.ID.String(),
		StartedAt: r.StartedAt,
		Steps:     steps,
		Results:   results,
		Finished:  r.Finished(),
	}
	if current, ok := r.CurrentStep(); ok {
		stepResp := StepToResponse(current)
		resp.CurrentStep = &stepResp
	}
	return resp
}

// EntryToResponse converts a feed entry to its API representation
func EntryToResponse(e routine.Entry) dto.FeedEntryResponse {
	results := make([]dto.StepResultResponse, 0, len(e.Results))
	for _, r := range e.Results {
		results = append(results, ResultToResponse(r))
	}
	return dto.FeedEntryResponse{
		Timestamp: e.Timestamp,
		Results:   results,
	}
}

// ProfileToResponse converts the stored profile to its API representation
func ProfileToResponse(p *profile.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		Name:           p.Name,
		Age:            p.Age,
		Occupation:     p.Occupation,
		WakeHour:       p.WakeHour,
		WakeMinute:     p.WakeMinute,
		MorningSummary: p.MorningSummary,
		RoutineTaskIDs: p.RoutineTaskIDs,
		CreatedAt:      p.CreatedAt,
	}
}

// ConversationToResponse converts an onboarding interview to its API
// representation, attaching the profile when the interview just finished
func ConversationToResponse(c *profile.Conversation, p *profile.Profile) dto.ConversationResponse {
	resp := dto.ConversationResponse{
		ID:     c.ID.String(),
		Stage:  string(c.Stage),
		Prompt: c.Prompt(),
		Done:   c.Done(),
	}
	if p != nil {
		profileResp := ProfileToResponse(p)
		resp.Profile = &profileResp
	}
	return resp
}
