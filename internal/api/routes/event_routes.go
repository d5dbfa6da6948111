package routes

import (
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/handlers"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type EventRoutes struct {
	handler *handlers.EventHandler
}

func NewEventRoutes(handler *handlers.EventHandler) *EventRoutes {
	return &EventRoutes{handler: handler}
}

// RegisterRoutes registers the ring event stream
func (e *EventRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	events := router.Group("/api/events")

	// The stream is long-lived; it never goes through the response cache.
	events.GET("/stream", e.handler.StreamEvents)
}
