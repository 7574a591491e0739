package controllers

import (
	"net/http"
	"time"

	"bakery/config"

	"github.com/gin-gonic/gin"
)

func GetSalesReport(c *gin.Context) {
	c.JSON(http.StatusOK, config.Store.SalesReport())
}

func GetSoldItems(c *gin.Context) {
	rows, totalRevenue := config.Store.SoldItems()
	c.JSON(http.StatusOK, gin.H{
		"sold_items":    rows,
		"total_entries": len(rows),
		"total_revenue": totalRevenue,
	})
}

func GetEarnings(c *gin.Context) {
	now := time.Now()
	// reports can be pinned to a reference date for bookkeeping
	if at := c.Query("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'at' timestamp, want RFC3339"})
			return
		}
		now = parsed
	}
	c.JSON(http.StatusOK, config.Store.Earnings(now))
}
