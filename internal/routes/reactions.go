package routes

import (
	"github.com/Mod-Checkup/mod-checkup-backend/internal/handlers"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterReactionRoutes wires the generic reaction surface: the entity id
// may belong to a comment or a post, resolved server-side.
func RegisterReactionRoutes(r gin.IRouter) {
	reactions := r.Group("/reactions")
	{
		reactions.GET("/:entityId/rating", handlers.GetEntityRating)

		protected := reactions.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/:entityId/like", handlers.LikeEntity)
			protected.POST("/:entityId/dislike", handlers.DislikeEntity)
		}
	}
}
