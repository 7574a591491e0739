package controllers

import (
	"errors"
	"net/http"

	"bakery/config"
	"bakery/models"
	"bakery/storage"

	"github.com/gin-gonic/gin"
)

func AddProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if product.Price < 0 || product.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price and quantity must not be negative"})
		return
	}

	if err := config.Store.AddProduct(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, config.Store.Products())
}

func DeleteProduct(c *gin.Context) {
	name := c.Param("name")

	err := config.Store.DeleteProduct(name)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// AddProductStock tops up finished stock directly, the counter flow for
// goods baked off the books.
func AddProductStock(c *gin.Context) {
	name := c.Param("name")

	var input models.AddStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a positive number"})
		return
	}

	err := config.Store.AddProductStock(name, input.Quantity)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product stock"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock updated"})
}

// ProduceProduct bakes a batch, consuming the recipe from ingredient stock.
func ProduceProduct(c *gin.Context) {
	name := c.Param("name")

	var input models.ProduceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a positive number"})
		return
	}

	err := config.Store.ProduceBatch(name, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, storage.ErrIngredientNotFound):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, storage.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to produce batch"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Batch produced"})
}
