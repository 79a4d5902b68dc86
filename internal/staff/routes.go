package staff

import (
	"school-site-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, staffService StaffServiceAPI) {
	staffController := &StaffController{Service: staffService}

	staffGroup := r.Group("/api/staff")
	{
		staffGroup.GET("", staffController.GetStaff)
		staffGroup.POST("", middlewares.AuthMiddleware(), staffController.CreateStaffMember)
		staffGroup.DELETE("", middlewares.AuthMiddleware(), staffController.DeleteStaffMember)
	}
}
