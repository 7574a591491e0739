package routes

import (
	"bakery/controllers"
	"bakery/middleware"

	"github.com/gin-gonic/gin"
)

func InitializeRoutes(router *gin.Engine) {
	router.POST("/login", controllers.Login)
	router.POST("/registration", controllers.RegisterStaff)

	router.GET("/ingredients", controllers.ListIngredients)
	router.GET("/ingredients/lowstock", controllers.GetLowStock)
	router.GET("/products", controllers.ListProducts)
	router.GET("/orders", controllers.ListOrders)
	router.GET("/orders/:id", controllers.GetOrder)

	staff := router.Group("/staff")
	staff.Use(middleware.AuthMiddleware("staff"))
	{
		staff.POST("/ingredients", controllers.AddIngredient)
		staff.PUT("/ingredients/restock", controllers.RestockIngredient)
		staff.DELETE("/ingredients/:name", controllers.DeleteIngredient)

		staff.POST("/products", controllers.AddProduct)
		staff.PUT("/products/:name/stock", controllers.AddProductStock)
		staff.PUT("/products/:name/produce", controllers.ProduceProduct)
		staff.DELETE("/products/:name", controllers.DeleteProduct)

		staff.POST("/orders", controllers.CreateOrder)
		staff.PUT("/orders/complete", controllers.CompleteOrders)
		staff.PUT("/orders/:id/items", controllers.AppendOrderItem)
		staff.DELETE("/orders/:id/items/:product", controllers.RemoveOrderItem)
		staff.DELETE("/orders/:id", controllers.DeleteOrder)

		staff.GET("/members", controllers.ListStaff)
		staff.POST("/members", controllers.AddStaff)
		staff.DELETE("/members/:role", controllers.DeleteStaff)

		staff.GET("/reports/sales", controllers.GetSalesReport)
		staff.GET("/reports/sold", controllers.GetSoldItems)
		staff.GET("/reports/earnings", controllers.GetEarnings)
	}
}
