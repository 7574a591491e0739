package controllers

import (
	"errors"
	"net/http"

	"bakery/config"
	"bakery/models"
	"bakery/storage"

	"github.com/gin-gonic/gin"
)

func AddIngredient(c *gin.Context) {
	var ing models.Ingredient
	if err := c.ShouldBindJSON(&ing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if ing.Quantity < 0 || ing.ReorderLevel < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity and reorder level must not be negative"})
		return
	}

	if err := config.Store.AddIngredient(ing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save ingredient"})
		return
	}
	c.JSON(http.StatusCreated, ing)
}

func ListIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, config.Store.Ingredients())
}

func RestockIngredient(c *gin.Context) {
	var input models.RestockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a positive number"})
		return
	}

	err := config.Store.RestockIngredient(input.Name, input.Quantity)
	if err != nil {
		if errors.Is(err, storage.ErrIngredientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restock ingredient"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restocked successfully"})
}

func DeleteIngredient(c *gin.Context) {
	name := c.Param("name")

	err := config.Store.DeleteIngredient(name)
	if err != nil {
		if errors.Is(err, storage.ErrIngredientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ingredient"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted"})
}

func GetLowStock(c *gin.Context) {
	low := config.Store.LowStock()
	c.JSON(http.StatusOK, gin.H{
		"low_stock": low,
		"count":     len(low),
	})
}
