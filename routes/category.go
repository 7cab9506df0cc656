package routes

import (
	"github.com/gin-gonic/gin"

	categorycontroller "github.com/salvarez-dev/eshop-api/controllers/category"
)

func SetupCategoryRoutes(api *gin.RouterGroup, d Deps) {
	categories := api.Group("/categories")
	{
		categories.GET("", categorycontroller.GetCategories(d.Categories))
		categories.POST("", categorycontroller.CreateCategory(d.Categories))
		categories.GET("/:id", categorycontroller.GetCategoryByID(d.Categories))
		categories.PUT("/:id", categorycontroller.UpdateCategory(d.Categories))
		categories.DELETE("/:id", categorycontroller.DeleteCategory(d.Categories))
	}
}
