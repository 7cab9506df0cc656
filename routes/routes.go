package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/salvarez-dev/eshop-api/repository"
	"github.com/salvarez-dev/eshop-api/services"
	"github.com/salvarez-dev/eshop-api/upload"
)

// Deps bundles everything the route groups need.
type Deps struct {
	Products   repository.ProductRepository
	Categories repository.CategoryRepository
	Users      repository.UserRepository
	Orders     *services.OrderService
	Uploads    *upload.Saver
	JWTSecret  string
}

// SetupRoutes wires every resource group under the API root.
func SetupRoutes(r *gin.Engine, apiRoot string, d Deps) {
	api := r.Group(apiRoot)

	SetupProductRoutes(api, d)
	SetupCategoryRoutes(api, d)
	SetupOrderRoutes(api, d)
	SetupUserRoutes(api, d)
}
