package routes

import (
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/handlers"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type ChallengeRoutes struct {
	handler *handlers.ChallengeHandler
}

func NewChallengeRoutes(handler *handlers.ChallengeHandler) *ChallengeRoutes {
	return &ChallengeRoutes{handler: handler}
}

// RegisterRoutes registers all challenge-related routes
func (ch *ChallengeRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	challenges := router.Group("/api/challenges")
	challenges.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), ch.handler.ListChallenges)

	// Session state changes on every tap; caching would serve stale gates.
	sessions := router.Group("/api/sessions")
	sessions.GET("/:id", ch.handler.GetSession)
	sessions.POST("/:id/challenges/:challenge_id/submit", ch.handler.SubmitChallenge)
}
