package topper

import (
	"school-site-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, topperService TopperServiceAPI) {
	topperController := &TopperController{Service: topperService}

	topperGroup := r.Group("/api/toppers")
	{
		topperGroup.GET("", topperController.GetToppers)
		topperGroup.POST("", middlewares.AuthMiddleware(), topperController.CreateTopper)
		topperGroup.DELETE("", middlewares.AuthMiddleware(), topperController.DeleteTopper)
	}
}
