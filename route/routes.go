package route

import (
	"cafeadmin/controller"

	"github.com/gin-gonic/gin"
)

func ConsoleRoutes(router *gin.Engine, h *controller.Handler) {
	api := router.Group("/api")
	{
		api.GET("/cafes", h.ListCafes)
		api.POST("/cafes", h.CreateCafe)
		api.PUT("/cafes/:id", h.UpdateCafe)
		api.DELETE("/cafes/:id", h.DeleteCafe)
		api.GET("/export/cafes", h.ExportCafes)

		api.GET("/cafes/:id/employees", h.ListEmployees)
		api.POST("/cafes/:id/employees", h.CreateEmployee)
		api.PUT("/cafes/:id/employees/:employeeId", h.UpdateEmployee)
		api.DELETE("/cafes/:id/employees/:employeeId", h.DeleteEmployee)
		api.GET("/cafes/:id/employees/export", h.ExportEmployees)
		api.POST("/cafes/:id/employees/import", h.ImportEmployees)

		api.GET("/activity", h.ListActivity)
	}
}
