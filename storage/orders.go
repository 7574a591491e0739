package storage

import (
	"fmt"
	"time"

	"bakery/models"
)

const orderIDLayout = "20060102150405"

// CreateOrder validates product stock, deducts it, and records the order with
// a total taken from the current price table. Ingredient stock is not
// touched here; recipes are consumed when batches are produced.
func (s *Store) CreateOrder(customerName string, items map[string]float64) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, qty := range items {
		product := s.findProduct(name)
		if product == nil {
			return models.Order{}, fmt.Errorf("%w: %s", ErrProductNotFound, name)
		}
		if product.Quantity < qty {
			return models.Order{}, fmt.Errorf("%w: %s", ErrInsufficientStock, name)
		}
	}

	var total float64
	for name, qty := range items {
		s.findProduct(name).Quantity -= qty
		total += s.productPrice(name) * qty
	}

	now := time.Now()
	order := models.Order{
		OrderID:      s.nextOrderID(now),
		CustomerName: customerName,
		Items:        cloneItems(items),
		Total:        total,
		Status:       models.StatusPending,
		Timestamp:    now,
	}
	s.orders = append(s.orders, order)
	if err := s.persist(); err != nil {
		return models.Order{}, err
	}
	return snapshotOrder(order), nil
}

// snapshotOrder copies an order with its own Items map, so callers can hold
// it outside the lock while mutations keep landing on the live state.
func snapshotOrder(o models.Order) models.Order {
	o.Items = cloneItems(o.Items)
	return o
}

func cloneItems(items map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(items))
	for name, qty := range items {
		out[name] = qty
	}
	return out
}

// nextOrderID derives the ID from the wall clock. Orders landing in the same
// second get a numeric suffix so lookups stay unambiguous.
func (s *Store) nextOrderID(now time.Time) string {
	id := now.Format(orderIDLayout)
	for n := 1; s.findOrder(id) != nil; n++ {
		id = fmt.Sprintf("%s-%d", now.Format(orderIDLayout), n)
	}
	return id
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, snapshotOrder(o))
	}
	return out
}

func (s *Store) PendingOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []models.Order
	for _, o := range s.orders {
		if o.Status == models.StatusPending {
			pending = append(pending, snapshotOrder(o))
		}
	}
	return pending
}

func (s *Store) Order(orderID string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if o := s.findOrder(orderID); o != nil {
		return snapshotOrder(*o), nil
	}
	return models.Order{}, ErrOrderNotFound
}

// AppendOrderItem adds quantity of a product to an existing order, deducting
// product stock and growing the stored total at the current price. The order
// is flagged Updated.
func (s *Store) AppendOrderItem(orderID, productName string, quantity float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(orderID)
	if order == nil {
		return ErrOrderNotFound
	}
	product := s.findProduct(productName)
	if product == nil {
		return ErrProductNotFound
	}
	if product.Quantity < quantity {
		return fmt.Errorf("%w: %s", ErrInsufficientStock, productName)
	}

	order.Items[productName] += quantity
	order.Total += product.Price * quantity
	order.Status = models.StatusUpdated
	product.Quantity -= quantity
	return s.persist()
}

// RemoveOrderItem drops one product line from an order. The stored total is
// left as is.
func (s *Store) RemoveOrderItem(orderID, productName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(orderID)
	if order == nil {
		return ErrOrderNotFound
	}
	if _, ok := order.Items[productName]; !ok {
		return ErrProductNotFound
	}
	delete(order.Items, productName)
	return s.persist()
}

// CompleteOrders marks every matching order Completed. Unknown IDs are
// skipped silently.
func (s *Store) CompleteOrders(orderIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	for i := range s.orders {
		if wanted[s.orders[i].OrderID] {
			s.orders[i].Status = models.StatusCompleted
		}
	}
	return s.persist()
}

func (s *Store) DeleteOrder(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return s.persist()
		}
	}
	return ErrOrderNotFound
}

func (s *Store) findOrder(orderID string) *models.Order {
	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			return &s.orders[i]
		}
	}
	return nil
}

func (s *Store) findProduct(name string) *models.Product {
	for i := range s.products {
		if s.products[i].Name == name {
			return &s.products[i]
		}
	}
	return nil
}
