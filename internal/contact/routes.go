package contact

import (
	"github.com/gin-gonic/gin"

	"school-site-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, service ContactServiceAPI) {
	controller := &ContactController{Service: service}

	r.POST("/api/contact/submissions", controller.Submit)
	r.GET("/api/contact/submissions", middlewares.AuthMiddleware(), controller.List)
	r.PUT("/api/contact/submissions", middlewares.AuthMiddleware(), controller.MarkRead)
	r.GET("/api/contact/submissions/export", middlewares.AuthMiddleware(), controller.Export)
}
