package handlers

import (
	"net/http"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/dto"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/tone"
	"github.com/gin-gonic/gin"
)

// ToneHandler handles HTTP requests for the alarm tone catalog
type ToneHandler struct {
	service tone.Service
}

// NewToneHandler creates a new ToneHandler instance
func NewToneHandler(service tone.Service) *ToneHandler {
	return &ToneHandler{service: service}
}

// ListTones returns the tone catalog
func (h *ToneHandler) ListTones(c *gin.Context) {
	tones := h.service.ListTones(c.Request.Context())

	resp := make([]dto.ToneResponse, 0, len(tones))
	for _, t := range tones {
		resp = append(resp, ToneToResponse(t))
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToneListResponse{Tones: resp}})
}

// GetTone returns one catalog tone
func (h *ToneHandler) GetTone(c *gin.Context) {
	t, err := h.service.GetTone(c.Request.Context(), c.Param("id"))
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == tone.ErrToneNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ToneToResponse(t)})
}

// RenderTone streams the synthesized WAV for a catalog tone
func (h *ToneHandler) RenderTone(c *gin.Context) {
	data, err := h.service.Render(c.Request.Context(), c.Param("id"))
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == tone.ErrToneNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "audio/wav", data)
}
