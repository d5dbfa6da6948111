package routes

import (
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/handlers"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type ProfileRoutes struct {
	handler *handlers.ProfileHandler
}

func NewProfileRoutes(handler *handlers.ProfileHandler) *ProfileRoutes {
	return &ProfileRoutes{handler: handler}
}

// RegisterRoutes registers all profile-related routes
func (p *ProfileRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	profile := router.Group("/api/profile")

	profile.GET("", cache.CacheResponse(), p.handler.GetProfile)
	profile.PUT("", cache.CacheInvalidate("api:profile*"), p.handler.UpdateProfile)
	profile.DELETE("", cache.CacheInvalidate("api:profile*"), p.handler.DeleteProfile)

	onboarding := router.Group("/api/onboarding")
	onboarding.POST("", p.handler.StartOnboarding)
	onboarding.GET("/:id", p.handler.GetOnboarding)
	onboarding.POST("/:id/reply", cache.CacheInvalidate("api:profile*"), p.handler.ReplyOnboarding)
}
