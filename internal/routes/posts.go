package routes

import (
	"github.com/Mod-Checkup/mod-checkup-backend/internal/handlers"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterPostRoutes(r gin.IRouter) {
	posts := r.Group("/posts")
	{
		posts.GET("/:postId", handlers.GetPostByID)
		posts.GET("/:postId/rating", handlers.GetEntityRating)

		protected := posts.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("", handlers.CreatePost)
			protected.PUT("/:postId", handlers.UpdatePost)
			protected.DELETE("/:postId", handlers.SoftDeletePost)

			protected.POST("/:postId/like", handlers.LikePost)
			protected.POST("/:postId/dislike", handlers.DislikePost)
		}
	}
}
