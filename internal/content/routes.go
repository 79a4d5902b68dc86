package content

import (
	"school-site-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, contentService ContentServiceAPI) {
	contentController := &ContentController{Service: contentService}

	contentGroup := r.Group("/api/content")
	{
		contentGroup.GET("/:page", contentController.GetPageContent)
		contentGroup.PUT("/:page/:section", middlewares.AuthMiddleware(), contentController.UpsertSection)
	}
}
