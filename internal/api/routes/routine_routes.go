package routes

import (
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/handlers"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type RoutineRoutes struct {
	handler *handlers.RoutineHandler
}

func NewRoutineRoutes(handler *handlers.RoutineHandler) *RoutineRoutes {
	return &RoutineRoutes{handler: handler}
}

// RegisterRoutes registers all routine-related routes
func (r *RoutineRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	routines := router.Group("/api/routines")

	routines.GET("/steps", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.ListSteps)

	// Guided runs
	routines.POST("/runs", r.handler.StartRun)
	routines.GET("/runs/:id", r.handler.GetRun)
	routines.POST("/runs/:id/complete", cache.CacheInvalidate("api:feed*"), r.handler.CompleteStep)
	routines.DELETE("/runs/:id", r.handler.AbandonRun)

	// Feed entries carry base64 photos, compression pays for itself here
	feed := router.Group("/api/feed")
	feed.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.ListFeed)
	feed.GET("/:timestamp", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.GetFeedEntry)
}
