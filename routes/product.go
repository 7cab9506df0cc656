package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/salvarez-dev/eshop-api/controllers/product"
)

func SetupProductRoutes(api *gin.RouterGroup, d Deps) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(d.Products))
		products.POST("", productcontroller.CreateProduct(d.Products, d.Categories, d.Uploads))
		products.GET("/:id", productcontroller.GetProductByID(d.Products))
		products.PUT("/:id", productcontroller.UpdateProduct(d.Products, d.Categories, d.Uploads))
		products.DELETE("/:id", productcontroller.DeleteProduct(d.Products))

		products.GET("/get/count", productcontroller.GetProductCount(d.Products))
		// The count segment is optional; both spellings are served.
		products.GET("/get/featured", productcontroller.GetFeaturedProducts(d.Products))
		products.GET("/get/featured/:count", productcontroller.GetFeaturedProducts(d.Products))
		products.GET("/get/export", productcontroller.ExportProducts(d.Products))
	}
}
