package music

import (
	"github.com/gin-gonic/gin"

	"school-site-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, service MusicServiceAPI) {
	controller := &MusicController{Service: service}

	r.GET("/api/music", controller.GetSettings)
	r.PUT("/api/music", middlewares.AuthMiddleware(), controller.UpdateSettings)
}
