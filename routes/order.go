package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/salvarez-dev/eshop-api/controllers/order"
)

func SetupOrderRoutes(api *gin.RouterGroup, d Deps) {
	feed := orderControllers.NewFeed()

	orders := api.Group("/orders")
	{
		orders.GET("", orderControllers.GetOrders(d.Orders))
		orders.POST("", orderControllers.PlaceOrder(d.Orders, feed))
		orders.GET("/:id", orderControllers.GetOrderByID(d.Orders))
		orders.PUT("/:id", orderControllers.UpdateOrderStatus(d.Orders, feed))
		orders.DELETE("/:id", orderControllers.DeleteOrder(d.Orders))

		orders.GET("/get/totalsales", orderControllers.GetTotalSales(d.Orders))
		orders.GET("/get/count", orderControllers.GetOrderCount(d.Orders))
		orders.GET("/get/userorders/:userid", orderControllers.GetUserOrders(d.Orders))

		orders.GET("/ws", feed.ServeWS)
	}
}
