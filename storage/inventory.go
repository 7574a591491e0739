package storage

import "bakery/models"

// AddIngredient appends an ingredient. Duplicate names are not rejected;
// restocks always hit the first match.
func (s *Store) AddIngredient(ing models.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ingredients = append(s.ingredients, ing)
	return s.persist()
}

func (s *Store) RestockIngredient(name string, quantity float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.ingredients {
		if s.ingredients[i].Name == name {
			s.ingredients[i].Quantity += quantity
			return s.persist()
		}
	}
	return ErrIngredientNotFound
}

func (s *Store) DeleteIngredient(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.ingredients {
		if s.ingredients[i].Name == name {
			s.ingredients = append(s.ingredients[:i], s.ingredients[i+1:]...)
			return s.persist()
		}
	}
	return ErrIngredientNotFound
}

func (s *Store) Ingredients() []models.Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Ingredient, len(s.ingredients))
	copy(out, s.ingredients)
	return out
}

// LowStock returns every ingredient strictly below its reorder level.
func (s *Store) LowStock() []models.Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var low []models.Ingredient
	for _, ing := range s.ingredients {
		if ing.LowStock() {
			low = append(low, ing)
		}
	}
	return low
}
