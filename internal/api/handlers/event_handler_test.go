package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/events"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEventSource replays a fixed event list and then drops the stream the
// way a client disconnect does.
type stubEventSource struct {
	events []*events.RingEvent
}

func (s *stubEventSource) SubscribeToRingEvents(ctx context.Context, callback func(*events.RingEvent) error) error {
	for _, event := range s.events {
		if err := callback(event); err != nil {
			return err
		}
	}
	return context.Canceled
}

func TestStreamEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sessionID := uuid.New()
	source := &stubEventSource{events: []*events.RingEvent{
		{
			EventType: events.EventTypeRingStarted,
			SessionID: sessionID,
			Timestamp: time.Now().UTC(),
			Details:   map[string]interface{}{"tone_id": "classic"},
		},
		{
			EventType: events.EventTypeRingDismissed,
			SessionID: sessionID,
			Timestamp: time.Now().UTC(),
		},
	}}

	handler := NewEventHandler(source)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/events/stream", nil)

	handler.StreamEvents(c)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/event-stream", recorder.Header().Get("Content-Type"))

	body := recorder.Body.String()
	assert.Contains(t, body, "event:"+events.EventTypeRingStarted)
	assert.Contains(t, body, "event:"+events.EventTypeRingDismissed)
	assert.Contains(t, body, sessionID.String())
	assert.Contains(t, body, "classic")
	assert.Empty(t, c.Errors)
}
