package storage

import (
	"fmt"

	"bakery/models"
)

func (s *Store) AddProduct(p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Recipe == nil {
		p.Recipe = map[string]float64{}
	}
	s.products = append(s.products, p)
	return s.persist()
}

func (s *Store) DeleteProduct(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].Name == name {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return s.persist()
		}
	}
	return ErrProductNotFound
}

// AddProductStock tops up finished-product stock without touching ingredients.
func (s *Store) AddProductStock(name string, quantity float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].Name == name {
			s.products[i].Quantity += quantity
			return s.persist()
		}
	}
	return ErrProductNotFound
}

// ProduceBatch bakes quantity units of a product, consuming its recipe from
// ingredient stock. Nothing is mutated if any ingredient is missing or short.
func (s *Store) ProduceBatch(name string, quantity float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var product *models.Product
	for i := range s.products {
		if s.products[i].Name == name {
			product = &s.products[i]
			break
		}
	}
	if product == nil {
		return ErrProductNotFound
	}

	for ingName, perUnit := range product.Recipe {
		ing := s.findIngredient(ingName)
		if ing == nil {
			return fmt.Errorf("%w: %s", ErrIngredientNotFound, ingName)
		}
		if ing.Quantity < perUnit*quantity {
			return fmt.Errorf("%w: %s", ErrInsufficientStock, ingName)
		}
	}
	for ingName, perUnit := range product.Recipe {
		s.findIngredient(ingName).Quantity -= perUnit * quantity
	}
	product.Quantity += quantity
	return s.persist()
}

func (s *Store) findIngredient(name string) *models.Ingredient {
	for i := range s.ingredients {
		if s.ingredients[i].Name == name {
			return &s.ingredients[i]
		}
	}
	return nil
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductPrice returns the current price, or 0 for an unknown product.
func (s *Store) ProductPrice(name string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productPrice(name)
}

func (s *Store) productPrice(name string) float64 {
	for i := range s.products {
		if s.products[i].Name == name {
			return s.products[i].Price
		}
	}
	return 0
}
