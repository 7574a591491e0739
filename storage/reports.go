package storage

import (
	"sort"
	"time"

	"bakery/models"
)

// SalesReport sums completed order totals, counts every order regardless of
// status, and ranks product popularity across all orders.
func (s *Store) SalesReport() models.SalesReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var totalSales float64
	counts := map[string]float64{}
	for _, o := range s.orders {
		if o.Status == models.StatusCompleted {
			totalSales += o.Total
		}
		for name, qty := range o.Items {
			counts[name] += qty
		}
	}

	popular := make([]models.PopularProduct, 0, len(counts))
	for name, qty := range counts {
		popular = append(popular, models.PopularProduct{Name: name, Quantity: qty})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Quantity != popular[j].Quantity {
			return popular[i].Quantity > popular[j].Quantity
		}
		return popular[i].Name < popular[j].Name
	})

	return models.SalesReport{
		TotalSales:      totalSales,
		TotalOrders:     len(s.orders),
		PopularProducts: popular,
	}
}

// SoldItems expands completed orders into per-product rows. Revenue is priced
// from the current price table, so rows drift if prices change after the sale.
func (s *Store) SoldItems() ([]models.SoldItemRow, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []models.SoldItemRow
	var totalRevenue float64
	for _, o := range s.orders {
		if o.Status != models.StatusCompleted {
			continue
		}
		for name, qty := range o.Items {
			revenue := s.productPrice(name) * qty
			totalRevenue += revenue
			rows = append(rows, models.SoldItemRow{
				CustomerName: o.CustomerName,
				OrderID:      o.OrderID,
				ProductName:  name,
				Quantity:     qty,
				Revenue:      revenue,
			})
		}
	}
	return rows, totalRevenue
}

// Earnings buckets completed order totals against now. Daily matches the
// calendar date, weekly the ISO week number, monthly the month number.
func (s *Store) Earnings(now time.Time) models.EarningsReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := models.EarningsReport{AsOf: now}
	_, nowWeek := now.ISOWeek()
	for _, o := range s.orders {
		if o.Status != models.StatusCompleted {
			continue
		}
		report.Total += o.Total

		y, m, d := o.Timestamp.Date()
		ny, nm, nd := now.Date()
		if y == ny && m == nm && d == nd {
			report.Daily += o.Total
		}
		if _, week := o.Timestamp.ISOWeek(); week == nowWeek {
			report.Weekly += o.Total
		}
		if m == nm {
			report.Monthly += o.Total
		}
	}
	return report
}
