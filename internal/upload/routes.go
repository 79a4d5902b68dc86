package upload

import (
	"github.com/gin-gonic/gin"

	"school-site-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, service UploadServiceAPI) {
	controller := &UploadController{Service: service}

	r.POST("/api/upload", middlewares.AuthMiddleware(), controller.Upload)
}
