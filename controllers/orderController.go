package controllers

import (
	"errors"
	"net/http"

	"bakery/config"
	"bakery/models"
	"bakery/storage"

	"github.com/gin-gonic/gin"
)

func CreateOrder(c *gin.Context) {
	var input models.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name and items are required"})
		return
	}
	for name, qty := range input.Items {
		if qty <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity for product " + name})
			return
		}
	}

	order, err := config.Store.CreateOrder(input.CustomerName, input.Items)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, storage.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

func ListOrders(c *gin.Context) {
	if c.Query("status") == models.StatusPending {
		c.JSON(http.StatusOK, config.Store.PendingOrders())
		return
	}
	c.JSON(http.StatusOK, config.Store.Orders())
}

func GetOrder(c *gin.Context) {
	order, err := config.Store.Order(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// AppendOrderItem adds a product line to an existing order and marks the
// order Updated.
func AppendOrderItem(c *gin.Context) {
	orderID := c.Param("id")

	var input models.AppendItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity! Must be positive number"})
		return
	}

	err := config.Store.AppendOrderItem(orderID, input.ProductName, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, storage.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, storage.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

func RemoveOrderItem(c *gin.Context) {
	err := config.Store.RemoveOrderItem(c.Param("id"), c.Param("product"))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, storage.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not in order"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// CompleteOrders marks the selected orders as sold.
func CompleteOrders(c *gin.Context) {
	var input models.CompleteOrdersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.Store.CompleteOrders(input.OrderIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Orders completed"})
}

func DeleteOrder(c *gin.Context) {
	err := config.Store.DeleteOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
