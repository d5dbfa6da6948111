package routes

import (
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/handlers"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type ToneRoutes struct {
	handler *handlers.ToneHandler
}

func NewToneRoutes(handler *handlers.ToneHandler) *ToneRoutes {
	return &ToneRoutes{handler: handler}
}

// RegisterRoutes registers all tone-related routes
func (t *ToneRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	tones := router.Group("/api/tones")

	tones.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), t.handler.ListTones)
	tones.GET("/:id", cache.CacheResponse(), t.handler.GetTone)

	// WAV payloads are raw PCM and do not go through the JSON response
	// cache; the tone service keeps its own per-tone render cache.
	tones.GET("/:id/audio", t.handler.RenderTone)
}
