// internal/domain/cart/service.go
package cart

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/dryfruits-storefront/internal/config"
	"github.com/your-org/dryfruits-storefront/internal/domain/catalog"
	"github.com/your-org/dryfruits-storefront/internal/domain/session"
)

// IdentityChecker reports whether a shopper is logged in
type IdentityChecker interface {
	RequireIdentity() (session.Identity, error)
}

// Service is the cart of the active session
type Service struct {
	mu     sync.RWMutex
	lines  []CartLine
	auth   IdentityChecker
	config config.StoreConfig
	logger *logrus.Logger
}

// NewService creates an empty cart
func NewService(auth IdentityChecker, cfg config.StoreConfig, logger *logrus.Logger) *Service {
	return &Service{
		auth:   auth,
		config: cfg,
		logger: logger,
	}
}

// Add puts one unit of product in the cart. Logged-out callers get
// session.ErrAuthenticationRequired and the cart is left alone.
// Stock is not checked here.
func (s *Service) Add(product catalog.Product) error {
	if _, err := s.auth.RequireIdentity(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneLines(s.lines)
	found := false
	for i := range next {
		if next[i].ID == product.ID {
			next[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		next = append(next, CartLine{Product: product, Quantity: 1})
	}
	s.lines = next

	s.logger.WithFields(logrus.Fields{
		"product_id": product.ID,
		"lines":      len(next),
	}).Debug("cart item added")

	return nil
}

// SetQuantity replaces a line's quantity; zero or less removes it
func (s *Service) SetQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneLines(s.lines)
	for i := range next {
		if next[i].ID == productID {
			next[i].Quantity = quantity
			s.lines = next
			return
		}
	}
}

// Remove deletes a line if present
func (s *Service) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]CartLine, 0, len(s.lines))
	for _, l := range s.lines {
		if l.ID != productID {
			next = append(next, l)
		}
	}
	s.lines = next
}

// Clear empties the cart
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the cart lines in insertion order
func (s *Service) Lines() []CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLines(s.lines)
}

// Count returns the total number of units in the cart
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines
func (s *Service) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines) == 0
}

// Subtotal is the sum of discount price times quantity
func (s *Service) Subtotal() int64 {
	return Subtotal(s.Lines())
}

// ShippingCost is free above the threshold, else the flat fee
func (s *Service) ShippingCost() int64 {
	return ShippingCost(s.Subtotal(), s.config)
}

// Total is subtotal plus shipping
func (s *Service) Total() int64 {
	return s.Totals().TotalAmount
}

// Totals computes all totals from one consistent view of the lines
func (s *Service) Totals() CartTotals {
	return CalculateTotals(s.Lines(), s.config)
}

// Subtotal sums discount price times quantity over lines
func Subtotal(lines []CartLine) int64 {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.LineTotal()
	}
	return subtotal
}

// ShippingCost applies the free-shipping rule to subtotal
func ShippingCost(subtotal int64, cfg config.StoreConfig) int64 {
	if subtotal > cfg.FreeShippingThreshold {
		return 0
	}
	return cfg.ShippingFee
}

// CalculateTotals computes cart totals for lines
func CalculateTotals(lines []CartLine, cfg config.StoreConfig) CartTotals {
	var totals CartTotals

	totals.ItemCount = len(lines)
	for _, l := range lines {
		totals.TotalQuantity += l.Quantity
	}

	totals.SubTotal = Subtotal(lines)
	totals.ShippingCost = ShippingCost(totals.SubTotal, cfg)
	totals.TotalAmount = totals.SubTotal + totals.ShippingCost

	return totals
}

func cloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	for i, l := range lines {
		l.Features = append([]string(nil), l.Features...)
		out[i] = l
	}
	return out
}
