package routes

import (
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/handlers"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type AlarmRoutes struct {
	handler *handlers.AlarmHandler
}

func NewAlarmRoutes(handler *handlers.AlarmHandler) *AlarmRoutes {
	return &AlarmRoutes{handler: handler}
}

// RegisterRoutes registers all alarm-related routes
func (a *AlarmRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	alarm := router.Group("/api/alarm")

	alarm.GET("", cache.CacheResponse(), a.handler.GetAlarm)
	alarm.PUT("", cache.CacheInvalidate("api:alarm*"), a.handler.ScheduleAlarm)
	alarm.DELETE("", cache.CacheInvalidate("api:alarm*"), a.handler.DisableAlarm)
	alarm.GET("/next", a.handler.GetNextFire)

	// Ring lifecycle. These never cache; ring state changes under them.
	alarm.POST("/snooze", a.handler.SnoozeAlarm)
	alarm.POST("/dismiss", a.handler.DismissAlarm)
}
