package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salvarez-dev/eshop-api/repository"
	"github.com/salvarez-dev/eshop-api/services"
)

type CreateOrderRequest struct {
	OrderItems       []services.OrderItemInput `json:"orderItems" binding:"required"`
	ShippingAddress1 string                    `json:"shippingAddress1" binding:"required"`
	ShippingAddress2 string                    `json:"shippingAddress2"`
	City             string                    `json:"city"`
	Zip              string                    `json:"zip"`
	Country          string                    `json:"country"`
	Phone            string                    `json:"phone"`
	User             uint                      `json:"user" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func parseID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// PlaceOrder runs the assembly flow and announces the new order on the feed.
func PlaceOrder(orders *services.OrderService, feed *Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := orders.PlaceOrder(c, services.OrderInput{
			Items:            req.OrderItems,
			ShippingAddress1: req.ShippingAddress1,
			ShippingAddress2: req.ShippingAddress2,
			City:             req.City,
			Zip:              req.Zip,
			Country:          req.Country,
			Phone:            req.Phone,
			UserID:           req.User,
		})
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) || errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "the order cannot be created"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
			return
		}

		if feed != nil {
			feed.Broadcast(order)
		}
		c.JSON(http.StatusOK, order)
	}
}

func GetOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.List(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetOrderByID(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		order, err := orders.Get(c, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func GetUserOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseID(c.Param("userid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		list, err := orders.ListByUser(c, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// UpdateOrderStatus mutates the single status field and announces the change.
func UpdateOrderStatus(orders *services.OrderService, feed *Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}
		order, err := orders.UpdateStatus(c, id, req.Status)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			if errors.Is(err, services.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
			return
		}
		if feed != nil {
			feed.Broadcast(order)
		}
		c.JSON(http.StatusOK, order)
	}
}

func DeleteOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		if err := orders.Delete(c, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "the order has been deleted"})
	}
}

func GetTotalSales(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := orders.TotalSales(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute total sales"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"totalsales": total})
	}
}

func GetOrderCount(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := orders.Count(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orderCount": n})
	}
}
