package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, authService AuthServiceAPI) {
	authController := &AuthController{Service: authService}

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", authController.Login)
	}
}
