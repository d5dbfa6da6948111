package handlers

import (
	"net/http"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/dto"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/middleware"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/alarm"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/challenge"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/tone"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AlarmHandler handles HTTP requests for the alarm slot
type AlarmHandler struct {
	service alarm.Service
}

// NewAlarmHandler creates a new AlarmHandler instance
func NewAlarmHandler(service alarm.Service) *AlarmHandler {
	return &AlarmHandler{service: service}
}

// ScheduleAlarm saves the alarm slot, replacing any previous schedule
func (h *AlarmHandler) ScheduleAlarm(c *gin.Context) {
	var req dto.ScheduleAlarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := alarm.ScheduleInput{
		Hour:         req.Hour,
		Minute:       req.Minute,
		Days:         req.Days,
		ToneID:       req.ToneID,
		Challenges:   req.Challenges,
		MorningTasks: req.MorningTasks,
	}

	a, nextFire, err := h.service.Schedule(c.Request.Context(), input)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch err {
		case alarm.ErrInvalidTime, alarm.ErrNoDaysSelected, alarm.ErrInvalidDay,
			alarm.ErrNoChallengeSelected, alarm.ErrUnknownTask,
			tone.ErrToneNotFound, challenge.ErrUnknownChallenge:
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": AlarmToResponse(a, nextFire)})
}

// GetAlarm returns the current schedule and its next fire time
func (h *AlarmHandler) GetAlarm(c *gin.Context) {
	a, err := h.service.Current(c.Request.Context())
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == alarm.ErrAlarmNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	nextFire, err := h.service.PreviewNext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": AlarmToResponse(a, nextFire)})
}

// GetNextFire returns just the next fire time
func (h *AlarmHandler) GetNextFire(c *gin.Context) {
	nextFire, err := h.service.PreviewNext(c.Request.Context())
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == alarm.ErrAlarmNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NextFireResponse{NextFire: nextFire}})
}

// DisableAlarm clears the schedule and cancels the pending timer
func (h *AlarmHandler) DisableAlarm(c *gin.Context) {
	if err := h.service.Disable(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "alarm disabled"})
}

// SnoozeAlarm pauses the current ring and re-arms a few minutes out
func (h *AlarmHandler) SnoozeAlarm(c *gin.Context) {
	sessionID, ok := h.bindSessionID(c)
	if !ok {
		return
	}

	refireAt, err := h.service.Snooze(c.Request.Context(), sessionID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch err {
		case alarm.ErrAlarmNotFound:
			statusCode = http.StatusNotFound
		case challenge.ErrSessionNotFound:
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	middleware.CountRing("snoozed")
	c.JSON(http.StatusOK, gin.H{"data": dto.SnoozeResponse{RefireAt: refireAt}})
}

// DismissAlarm ends the ring. The gate stays shut until every challenge in
// the session is complete; an early dismiss gets a conflict.
func (h *AlarmHandler) DismissAlarm(c *gin.Context) {
	sessionID, ok := h.bindSessionID(c)
	if !ok {
		return
	}

	if err := h.service.Dismiss(c.Request.Context(), sessionID); err != nil {
		statusCode := http.StatusInternalServerError
		switch err {
		case alarm.ErrChallengesIncomplete:
			statusCode = http.StatusConflict
		case challenge.ErrSessionNotFound:
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	middleware.CountRing("dismissed")
	c.JSON(http.StatusOK, gin.H{"message": "alarm dismissed"})
}

func (h *AlarmHandler) bindSessionID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.RingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return uuid.Nil, false
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return uuid.Nil, false
	}
	return sessionID, true
}
