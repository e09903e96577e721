// internal/domain/catalog/service.go
package catalog

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Service holds the product catalog and categories.
//
// Every mutation builds a fresh slice and swaps it in, so a slice handed
// out by an earlier read is never modified underneath its reader.
type Service struct {
	mu         sync.RWMutex
	products   []Product
	categories []Category
	logger     *logrus.Logger
}

// NewService creates a catalog seeded with products and categories
func NewService(products []Product, categories []Category, logger *logrus.Logger) *Service {
	s := &Service{
		categories: append([]Category(nil), categories...),
		logger:     logger,
	}

	seeded := make([]Product, 0, len(products))
	for _, p := range products {
		p = p.clone()
		p.syncStock()
		seeded = append(seeded, p)
	}
	s.products = seeded

	return s
}

// List returns all products in insertion order
func (s *Service) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.products)
}

// Categories returns the category list
func (s *Service) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Category(nil), s.categories...)
}

// Get returns a product by ID
func (s *Service) Get(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.products[i].clone(), true
	}
	return Product{}, false
}

// Search matches term case-insensitively against name or category.
// A blank term returns the whole catalog.
func (s *Service) Search(term string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return cloneAll(s.products)
	}

	matches := make([]Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			matches = append(matches, p.clone())
		}
	}
	return matches
}

// ByCategory returns the products whose category is exactly name
func (s *Service) ByCategory(name string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]Product, 0)
	for _, p := range s.products {
		if p.Category == name {
			matches = append(matches, p.clone())
		}
	}
	return matches
}

// NextID returns an ID greater than every ID in the catalog
func (s *Service) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	next := 1
	for _, p := range s.products {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// ApplyStockDelta removes delta units from stock, flooring at zero
func (s *Service) ApplyStockDelta(id, delta int) {
	if delta < 0 {
		delta = 0
	}

	s.update(id, func(p *Product) {
		p.Stock = max(0, p.Stock-delta)
	})
}

// SetStock overwrites a product's stock level
func (s *Service) SetStock(id, stock int) {
	s.update(id, func(p *Product) {
		p.Stock = stock
	})
}

// Upsert replaces the product with the same ID, or appends it
func (s *Service) Upsert(product Product) {
	product = product.clone()
	product.syncStock()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.products)
	if i := s.indexOf(product.ID); i >= 0 {
		next[i] = product
	} else {
		next = append(next, product)
	}
	s.products = next

	s.logger.WithFields(logrus.Fields{
		"product_id": product.ID,
		"stock":      product.Stock,
	}).Debug("catalog product upserted")
}

// Remove deletes a product. Absent IDs are ignored.
func (s *Service) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}

	next := make([]Product, 0, len(s.products)-1)
	next = append(next, s.products[:i]...)
	next = append(next, s.products[i+1:]...)
	s.products = next

	s.logger.WithField("product_id", id).Debug("catalog product removed")
}

func (s *Service) update(id int, mutate func(*Product)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}

	next := cloneAll(s.products)
	mutate(&next[i])
	next[i].syncStock()
	s.products = next

	s.logger.WithFields(logrus.Fields{
		"product_id": id,
		"stock":      next[i].Stock,
		"in_stock":   next[i].InStock,
	}).Debug("catalog stock updated")
}

// indexOf must be called with s.mu held
func (s *Service) indexOf(id int) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.clone()
	}
	return out
}
