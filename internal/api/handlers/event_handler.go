package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/events"
	"github.com/gin-gonic/gin"
)

// EventSource delivers ring lifecycle events until the context ends.
type EventSource interface {
	SubscribeToRingEvents(ctx context.Context, callback func(*events.RingEvent) error) error
}

// EventHandler bridges the ring event channel to HTTP clients. The mobile
// app keeps one stream open to follow rings, routine completions, and
// profile edits without polling.
type EventHandler struct {
	source EventSource
}

// NewEventHandler creates a new EventHandler instance
func NewEventHandler(source EventSource) *EventHandler {
	return &EventHandler{source: source}
}

// StreamEvents replays ring events to the client as server-sent events
// until the client disconnects
func (h *EventHandler) StreamEvents(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	err := h.source.SubscribeToRingEvents(c.Request.Context(), func(event *events.RingEvent) error {
		c.SSEvent(event.EventType, event)
		c.Writer.Flush()
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		// The stream is already committed; there is nothing useful to send.
		c.Error(err)
	}
}
