package handlers

import (
	"net/http"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/dto"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/routine"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoutineHandler handles HTTP requests for guided runs and the feed
type RoutineHandler struct {
	service routine.Service
}

// NewRoutineHandler creates a new RoutineHandler instance
func NewRoutineHandler(service routine.Service) *RoutineHandler {
	return &RoutineHandler{service: service}
}

// ListSteps returns the routine step catalog
func (h *RoutineHandler) ListSteps(c *gin.Context) {
	steps := h.service.ListSteps(c.Request.Context())

	resp := make([]dto.StepResponse, 0, len(steps))
	for _, s := range steps {
		resp = append(resp, StepToResponse(s))
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// StartRun opens a guided run over the selected steps
func (h *RoutineHandler) StartRun(c *gin.Context) {
	var req dto.StartRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := h.service.StartRun(c.Request.Context(), req.StepIDs)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == routine.ErrStepNotFound {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": RunToResponse(run)})
}

// GetRun returns the state of an in-flight run
func (h *RoutineHandler) GetRun(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
		return
	}

	run, err := h.service.GetRun(c.Request.Context(), runID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == routine.ErrRunNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": RunToResponse(run)})
}

// CompleteStep records the result for the run's current step. Finishing
// the last step writes the run to the feed and returns the new entry.
func (h *RoutineHandler) CompleteStep(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
		return
	}

	var req dto.CompleteStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, entry, err := h.service.CompleteStep(c.Request.Context(), runID, routine.StepResultInput{
		Note:        req.Note,
		PhotoBase64: req.PhotoBase64,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch err {
		case routine.ErrRunNotFound:
			statusCode = http.StatusNotFound
		case routine.ErrRunFinished:
			statusCode = http.StatusConflict
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"data": RunToResponse(run)}
	if entry != nil {
		response["entry"] = EntryToResponse(*entry)
	}
	c.JSON(http.StatusOK, response)
}

// AbandonRun discards an in-flight run without touching the feed
func (h *RoutineHandler) AbandonRun(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
		return
	}

	if err := h.service.AbandonRun(c.Request.Context(), runID); err != nil {
		statusCode := http.StatusInternalServerError
		if err == routine.ErrRunNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "run abandoned"})
}

// ListFeed returns every completed routine, newest first
func (h *RoutineHandler) ListFeed(c *gin.Context) {
	entries, err := h.service.ListFeed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.FeedEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, EntryToResponse(e))
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// GetFeedEntry returns one feed entry by its RFC3339 timestamp
func (h *RoutineHandler) GetFeedEntry(c *gin.Context) {
	ts, err := time.Parse(time.RFC3339, c.Param("timestamp"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timestamp"})
		return
	}

	entry, err := h.service.GetEntry(c.Request.Context(), ts)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == routine.ErrEntryNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": EntryToResponse(*entry)})
}
