package routes

import (
	"github.com/Mod-Checkup/mod-checkup-backend/internal/handlers"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/middleware"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterCommentRoutes(r gin.IRouter) {
	comments := r.Group("/comments")
	{
		// Public reads
		comments.GET("/post/:postId", handlers.GetActiveCommentsByPost)
		comments.GET("/post/:postId/page/:pageNo/size/:pageSize", handlers.GetActiveCommentsByPostAndPage)
		comments.GET("/:commentId", handlers.GetCommentByID)
		comments.GET("/:commentId/rating", handlers.GetEntityRating)

		protected := comments.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("", handlers.AddComment)
			protected.PUT("/:commentId", handlers.EditComment)
			protected.DELETE("/:commentId", handlers.SoftDeleteComment)

			protected.POST("/:commentId/like", handlers.LikeComment)
			protected.POST("/:commentId/dislike", handlers.DislikeComment)
		}

		// Bulk CSV round-trip, admin-gated; import fans out per row
		csv := comments.Group("/csv")
		csv.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
		{
			csv.POST("/import", middleware.ImportRateLimit(), handlers.ImportCommentsCSV)
			csv.GET("/export", handlers.ExportCommentsCSV)
		}
	}
}
