package gallery

import (
	"school-site-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, galleryService GalleryServiceAPI) {
	galleryController := &GalleryController{Service: galleryService}

	galleryGroup := r.Group("/api/gallery")
	{
		galleryGroup.GET("", galleryController.GetImages)
		galleryGroup.POST("", middlewares.AuthMiddleware(), galleryController.CreateImage)
		galleryGroup.DELETE("", middlewares.AuthMiddleware(), galleryController.DeleteImage)
	}
}
