package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/salvarez-dev/eshop-api/controllers/user"
)

func SetupUserRoutes(api *gin.RouterGroup, d Deps) {
	users := api.Group("/users")
	{
		users.GET("", userControllers.GetUsers(d.Users))
		users.POST("", userControllers.CreateUser(d.Users))
		users.GET("/:id", userControllers.GetUserByID(d.Users))
		users.DELETE("/:id", userControllers.DeleteUser(d.Users))

		users.POST("/login", userControllers.Login(d.Users, d.JWTSecret))
		users.POST("/register", userControllers.Register(d.Users))
		users.GET("/get/count", userControllers.GetUserCount(d.Users))
	}
}
