package activity

import (
	"school-site-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, activityService ActivityServiceAPI) {
	activityController := &ActivityController{Service: activityService}

	activityGroup := r.Group("/api/activities")
	{
		activityGroup.GET("", activityController.GetActivities)
		activityGroup.POST("", middlewares.AuthMiddleware(), activityController.CreateActivity)
		activityGroup.DELETE("", middlewares.AuthMiddleware(), activityController.DeleteActivity)
	}
}
