package routes

import (
	"github.com/Mod-Checkup/mod-checkup-backend/internal/handlers"
	"github.com/Mod-Checkup/mod-checkup-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.GET("/google/login", handlers.GoogleLogin)
	r.GET("/google/callback", handlers.GoogleCallback)
	r.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)
}
