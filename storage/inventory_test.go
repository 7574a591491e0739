package storage

import (
	"testing"

	"bakery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestockIngredient(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddIngredient(models.Ingredient{Name: "Butter", Quantity: 400, Unit: "grams", ReorderLevel: 500}))

	require.NoError(t, store.RestockIngredient("Butter", 600))

	ingredients := store.Ingredients()
	require.Len(t, ingredients, 1)
	assert.Equal(t, 1000.0, ingredients[0].Quantity)
}

func TestRestockUnknownIngredient(t *testing.T) {
	store := newTestStore(t)

	err := store.RestockIngredient("Saffron", 10)
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestDeleteIngredient(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddIngredient(models.Ingredient{Name: "Yeast", Quantity: 50, Unit: "grams", ReorderLevel: 20}))

	require.NoError(t, store.DeleteIngredient("Yeast"))
	assert.Empty(t, store.Ingredients())

	assert.ErrorIs(t, store.DeleteIngredient("Yeast"), ErrIngredientNotFound)
}

func TestLowStockIsStrictlyBelowReorderLevel(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddIngredient(models.Ingredient{Name: "Flour", Quantity: 999, Unit: "grams", ReorderLevel: 1000}))
	require.NoError(t, store.AddIngredient(models.Ingredient{Name: "Sugar", Quantity: 200, Unit: "grams", ReorderLevel: 200}))
	require.NoError(t, store.AddIngredient(models.Ingredient{Name: "Salt", Quantity: 300, Unit: "grams", ReorderLevel: 100}))

	low := store.LowStock()
	require.Len(t, low, 1)
	// sitting exactly at the reorder level is not low
	assert.Equal(t, "Flour", low[0].Name)
}

func TestDuplicateIngredientNamesAllowed(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddIngredient(models.Ingredient{Name: "Flour", Quantity: 100, Unit: "grams", ReorderLevel: 10}))
	require.NoError(t, store.AddIngredient(models.Ingredient{Name: "Flour", Quantity: 200, Unit: "grams", ReorderLevel: 10}))

	// restock hits the first match only
	require.NoError(t, store.RestockIngredient("Flour", 50))
	ingredients := store.Ingredients()
	assert.Equal(t, 150.0, ingredients[0].Quantity)
	assert.Equal(t, 200.0, ingredients[1].Quantity)
}
