package models

import "time"

type RestockInput struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

type AddStockInput struct {
	Quantity float64 `json:"quantity" binding:"required"`
}

type ProduceInput struct {
	Quantity float64 `json:"quantity" binding:"required"`
}

type CreateOrderInput struct {
	CustomerName string             `json:"customer_name" binding:"required"`
	Items        map[string]float64 `json:"items" binding:"required"`
}

type AppendItemInput struct {
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
}

type CompleteOrdersInput struct {
	OrderIDs []string `json:"order_ids" binding:"required"`
}

type AddStaffInput struct {
	Name     string   `json:"name" binding:"required"`
	Role     string   `json:"role" binding:"required"`
	Shifts   []string `json:"shifts" binding:"required"`
	Password string   `json:"password" binding:"required"`
}

type LoginInput struct {
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PopularProduct is one row of the popularity ranking, highest quantity first.
type PopularProduct struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

type SalesReport struct {
	TotalSales      float64          `json:"total_sales"`
	TotalOrders     int              `json:"total_orders"`
	PopularProducts []PopularProduct `json:"popular_products"`
}

// SoldItemRow is one sold line of a completed order. Revenue is taken from
// the current price table, not the total stored on the order.
type SoldItemRow struct {
	CustomerName string  `json:"customer_name"`
	OrderID      string  `json:"order_id"`
	ProductName  string  `json:"product_name"`
	Quantity     float64 `json:"quantity"`
	Revenue      float64 `json:"revenue"`
}

type EarningsReport struct {
	Daily   float64   `json:"daily"`
	Weekly  float64   `json:"weekly"`
	Monthly float64   `json:"monthly"`
	Total   float64   `json:"total"`
	AsOf    time.Time `json:"as_of"`
}
