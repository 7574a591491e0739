package storage

import (
	"testing"
	"time"

	"bakery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesReport(t *testing.T) {
	dir := t.TempDir()
	store := seedOrders(t, dir, []models.Order{
		{OrderID: "1", CustomerName: "Alice", Items: map[string]float64{"Croissant": 3}, Total: 7.5, Status: models.StatusCompleted, Timestamp: time.Now()},
		{OrderID: "2", CustomerName: "Bob", Items: map[string]float64{"Croissant": 1, "Baguette": 5}, Total: 11.5, Status: models.StatusPending, Timestamp: time.Now()},
		{OrderID: "3", CustomerName: "Carol", Items: map[string]float64{"Muffin": 2}, Total: 6.4, Status: models.StatusCompleted, Timestamp: time.Now()},
	})

	report := store.SalesReport()

	// only completed orders count toward sales, every order toward the count
	assert.InDelta(t, 13.9, report.TotalSales, 1e-9)
	assert.Equal(t, 3, report.TotalOrders)

	require.Len(t, report.PopularProducts, 3)
	assert.Equal(t, models.PopularProduct{Name: "Baguette", Quantity: 5}, report.PopularProducts[0])
	assert.Equal(t, models.PopularProduct{Name: "Croissant", Quantity: 4}, report.PopularProducts[1])
	assert.Equal(t, models.PopularProduct{Name: "Muffin", Quantity: 2}, report.PopularProducts[2])
}

func TestSoldItemsUseCurrentPrices(t *testing.T) {
	dir := t.TempDir()
	store := seedOrders(t, dir, []models.Order{
		{OrderID: "1", CustomerName: "Alice", Items: map[string]float64{"Croissant": 2}, Total: 5, Status: models.StatusCompleted, Timestamp: time.Now()},
		{OrderID: "2", CustomerName: "Bob", Items: map[string]float64{"Croissant": 1}, Total: 2.5, Status: models.StatusPending, Timestamp: time.Now()},
	})
	// price changed after the sale; revenue follows the current table
	require.NoError(t, store.AddProduct(models.Product{Name: "Croissant", Price: 3.0, Quantity: 10}))

	rows, total := store.SoldItems()

	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].CustomerName)
	assert.InDelta(t, 6.0, rows[0].Revenue, 1e-9)
	assert.InDelta(t, 6.0, total, 1e-9)
}

func TestEarningsBuckets(t *testing.T) {
	now := time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC) // Thursday, ISO week 34

	dir := t.TempDir()
	store := seedOrders(t, dir, []models.Order{
		{OrderID: "today", Items: map[string]float64{}, Total: 10, Status: models.StatusCompleted, Timestamp: time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)},
		{OrderID: "same-week", Items: map[string]float64{}, Total: 20, Status: models.StatusCompleted, Timestamp: time.Date(2026, 8, 18, 8, 0, 0, 0, time.UTC)},
		{OrderID: "same-month", Items: map[string]float64{}, Total: 40, Status: models.StatusCompleted, Timestamp: time.Date(2026, 8, 3, 8, 0, 0, 0, time.UTC)},
		{OrderID: "other-month", Items: map[string]float64{}, Total: 80, Status: models.StatusCompleted, Timestamp: time.Date(2026, 7, 3, 8, 0, 0, 0, time.UTC)},
		{OrderID: "pending", Items: map[string]float64{}, Total: 160, Status: models.StatusPending, Timestamp: time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)},
	})

	report := store.Earnings(now)

	assert.InDelta(t, 10, report.Daily, 1e-9)
	assert.InDelta(t, 30, report.Weekly, 1e-9)
	assert.InDelta(t, 70, report.Monthly, 1e-9)
	assert.InDelta(t, 150, report.Total, 1e-9)
}
