package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"bakery/models"
)

// Data files, one whole-file JSON dump per collection.
const (
	IngredientsFile = "ingredients.json"
	ProductsFile    = "products.json"
	OrdersFile      = "orders.json"
	StaffFile       = "staff.json"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrRoleTaken          = errors.New("role already exists")
	ErrRegistrationClosed = errors.New("registration closed")
)

// Store holds the four collections in memory and flushes every one of them
// to its own JSON file after each mutation.
type Store struct {
	mu sync.RWMutex

	dir         string
	ingredients []models.Ingredient
	products    []models.Product
	orders      []models.Order
	staff       []models.Staff
}

// Open loads all collections from dir, creating it if needed. A missing or
// undecodable file yields an empty collection.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{dir: dir}
	loadFile(filepath.Join(dir, IngredientsFile), &s.ingredients)
	loadFile(filepath.Join(dir, ProductsFile), &s.products)
	loadFile(filepath.Join(dir, OrdersFile), &s.orders)
	loadFile(filepath.Join(dir, StaffFile), &s.staff)

	// a dump may carry "items": null; item appends rely on a live map
	for i := range s.orders {
		if s.orders[i].Items == nil {
			s.orders[i].Items = map[string]float64{}
		}
	}
	return s, nil
}

func loadFile(path string, dst interface{}) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, dst)
}

// persist flushes all four collections. Callers must hold the write lock.
// Files are written through a temp file and renamed, so an aborted flush
// leaves the previous dump intact.
func (s *Store) persist() error {
	dumps := []struct {
		file string
		data interface{}
	}{
		{IngredientsFile, s.ingredients},
		{ProductsFile, s.products},
		{OrdersFile, s.orders},
		{StaffFile, s.staff},
	}
	for _, d := range dumps {
		if err := writeFile(filepath.Join(s.dir, d.file), d.data); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, data interface{}) error {
	blob, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
