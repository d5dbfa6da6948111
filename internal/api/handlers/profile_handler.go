package handlers

import (
	"net/http"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/dto"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/profile"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/routine"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler handles HTTP requests for the user profile and the
// onboarding interview
type ProfileHandler struct {
	service profile.Service
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(service profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile returns the stored profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context())
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == profile.ErrProfileNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ProfileToResponse(p)})
}

// UpdateProfile overwrites the stored profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), profile.UpdateInput{
		Name:           req.Name,
		Age:            req.Age,
		Occupation:     req.Occupation,
		WakeHour:       req.WakeHour,
		WakeMinute:     req.WakeMinute,
		MorningSummary: req.MorningSummary,
		RoutineTaskIDs: req.RoutineTaskIDs,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch err {
		case profile.ErrInvalidWakeTime, routine.ErrStepNotFound:
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ProfileToResponse(p)})
}

// DeleteProfile removes the stored profile
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile deleted"})
}

// StartOnboarding opens a fresh onboarding interview
func (h *ProfileHandler) StartOnboarding(c *gin.Context) {
	conv, err := h.service.StartOnboarding(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": ConversationToResponse(conv, nil)})
}

// GetOnboarding returns the state of an in-flight interview
func (h *ProfileHandler) GetOnboarding(c *gin.Context) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation ID"})
		return
	}

	conv, err := h.service.GetConversation(c.Request.Context(), conversationID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == profile.ErrConversationNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ConversationToResponse(conv, nil)})
}

// ReplyOnboarding feeds one answer into an interview. The final reply
// persists the drafted profile and returns it alongside the conversation.
func (h *ProfileHandler) ReplyOnboarding(c *gin.Context) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation ID"})
		return
	}

	var req dto.OnboardingReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, p, err := h.service.Reply(c.Request.Context(), conversationID, req.Answer)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch err {
		case profile.ErrConversationNotFound:
			statusCode = http.StatusNotFound
		case profile.ErrConversationDone:
			statusCode = http.StatusConflict
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ConversationToResponse(conv, p)})
}
