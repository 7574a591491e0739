package models

import "time"

// Order statuses. "Updated" marks orders that were changed after creation.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusUpdated   = "Updated"
)

type Ingredient struct {
	Name         string  `json:"name" binding:"required"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit" binding:"required"`
	ReorderLevel float64 `json:"reorder_level"`
}

// LowStock reports whether the ingredient is below its reorder level.
// Sitting exactly at the level does not count.
func (i Ingredient) LowStock() bool {
	return i.Quantity < i.ReorderLevel
}

type Product struct {
	Name     string             `json:"name" binding:"required"`
	Price    float64            `json:"price"`
	Recipe   map[string]float64 `json:"recipe"`
	Quantity float64            `json:"quantity"`
}

type Order struct {
	OrderID      string             `json:"order_id"`
	CustomerName string             `json:"customer_name"`
	Items        map[string]float64 `json:"items"`
	Total        float64            `json:"total"`
	Status       string             `json:"status"`
	Timestamp    time.Time          `json:"timestamp"`
}

type Staff struct {
	Name   string   `json:"name"`
	Role   string   `json:"role"`
	Shifts []string `json:"shifts"`

	// bcrypt hash, kept in staff.json but never rendered in API responses
	PasswordHash string `json:"password_hash,omitempty"`
}

// Public strips the credential hash for API responses.
func (s Staff) Public() Staff {
	s.PasswordHash = ""
	return s
}
