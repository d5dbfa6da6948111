package handlers

import (
	"net/http"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/dto"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/challenge"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChallengeHandler handles HTTP requests for ring sessions and the
// challenge catalog
type ChallengeHandler struct {
	service challenge.Service
}

// NewChallengeHandler creates a new ChallengeHandler instance
func NewChallengeHandler(service challenge.Service) *ChallengeHandler {
	return &ChallengeHandler{service: service}
}

// ListChallenges returns the challenge catalog
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	defs := h.service.ListCatalog(c.Request.Context())

	resp := make([]dto.ChallengeDefinitionResponse, 0, len(defs))
	for _, d := range defs {
		resp = append(resp, DefinitionToResponse(d))
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// GetSession returns the state of a ring session, including the dismiss gate
func (h *ChallengeHandler) GetSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	session, err := h.service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == challenge.ErrSessionNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": SessionToResponse(session)})
}

// SubmitChallenge feeds one input event to a challenge within a session.
// A rejected submission is still a 200; rejection is the normal state of a
// wrong answer, not a transport error.
func (h *ChallengeHandler) SubmitChallenge(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	var req dto.SubmitChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Submit(c.Request.Context(), sessionID, c.Param("challenge_id"), req.Input)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch err {
		case challenge.ErrSessionNotFound, challenge.ErrChallengeNotFound:
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	canDismiss, err := h.service.CanDismiss(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.SubmitChallengeResponse{
		Accepted:   result.Accepted,
		Complete:   result.Complete,
		Prompt:     result.Prompt,
		CanDismiss: canDismiss,
	}})
}
