package routes

import (
	"github.com/Mod-Checkup/mod-checkup-backend/internal/handlers"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/middleware"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterSubjectRoutes(r gin.IRouter) {
	subjects := r.Group("/subjects")
	{
		// Everyone
		subjects.GET("", handlers.GetAllActiveSubjects)
		subjects.GET("/page/:pageNo/size/:pageSize", handlers.GetAllActiveSubjectsByPage)
		subjects.GET("/search/:subjectAbbr", handlers.SearchSubjectByAbbr)
		subjects.GET("/:subject", handlers.GetSubjectInfo)
		subjects.GET("/:subject/posts", handlers.GetPostsBySubject)
		subjects.GET("/:subject/posts/page/:pageNo/size/:pageSize", handlers.GetActivePostsBySubjectAndPage)

		// Curation is restricted to teachers and admins
		curated := subjects.Group("")
		curated.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
		{
			curated.POST("", handlers.AddSubject)
			curated.PUT("/:subject", handlers.UpdateSubject)
		}
	}
}
