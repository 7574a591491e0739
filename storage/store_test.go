package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bakery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	return store
}

// seedOrders writes an orders.json and reopens the store on top of it.
func seedOrders(t *testing.T, dir string, orders []models.Order) *Store {
	t.Helper()
	blob, err := json.Marshal(orders)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, OrdersFile), blob, 0o644))

	store, err := Open(dir)
	require.NoError(t, err)
	return store
}

func TestOpenEmptyDir(t *testing.T) {
	store := newTestStore(t)

	assert.Empty(t, store.Ingredients())
	assert.Empty(t, store.Products())
	assert.Empty(t, store.Orders())
	assert.Empty(t, store.Staff())
}

func TestPersistAndReload(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.AddIngredient(models.Ingredient{Name: "Flour", Quantity: 5000, Unit: "grams", ReorderLevel: 1000}))
	require.NoError(t, store.AddProduct(models.Product{Name: "Croissant", Price: 2.5, Recipe: map[string]float64{"Flour": 80}, Quantity: 12}))

	reloaded, err := Open(dir)
	require.NoError(t, err)

	ingredients := reloaded.Ingredients()
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Flour", ingredients[0].Name)
	assert.Equal(t, 5000.0, ingredients[0].Quantity)

	products := reloaded.Products()
	require.Len(t, products, 1)
	assert.Equal(t, 80.0, products[0].Recipe["Flour"])
}

func TestCorruptFileLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, IngredientsFile), []byte("{not json"), 0o644))

	store, err := Open(dir)
	require.NoError(t, err)
	assert.Empty(t, store.Ingredients())
}

func TestFlushWritesAllFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.AddIngredient(models.Ingredient{Name: "Sugar", Quantity: 900, Unit: "grams", ReorderLevel: 200}))

	for _, file := range []string{IngredientsFile, ProductsFile, OrdersFile, StaffFile} {
		_, err := os.Stat(filepath.Join(dir, file))
		assert.NoError(t, err, file)
	}
	// no leftover temp files after a clean flush
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}

func TestSeededOrdersSurviveReload(t *testing.T) {
	dir := t.TempDir()
	stamp := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	store := seedOrders(t, dir, []models.Order{{
		OrderID:      "20260314093000",
		CustomerName: "Alice",
		Items:        map[string]float64{"Croissant": 2},
		Total:        5,
		Status:       models.StatusPending,
		Timestamp:    stamp,
	}})

	order, err := store.Order("20260314093000")
	require.NoError(t, err)
	assert.Equal(t, "Alice", order.CustomerName)
	assert.True(t, order.Timestamp.Equal(stamp))
}
