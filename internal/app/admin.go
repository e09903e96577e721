// internal/app/admin.go
package app

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/dryfruits-storefront/internal/domain/analytics"
	"github.com/your-org/dryfruits-storefront/internal/domain/catalog"
	"github.com/your-org/dryfruits-storefront/internal/domain/customer"
	"github.com/your-org/dryfruits-storefront/internal/domain/order"
)

// CreateProduct adds a product under the next free ID
func (s *State) CreateProduct(input catalog.Product) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, err := s.Session.RequireAdmin()
	if err != nil {
		return catalog.Product{}, err
	}

	input.ID = s.Catalog.NextID()
	product, err := catalog.NewProduct(input)
	if err != nil {
		return catalog.Product{}, err
	}
	s.Catalog.Upsert(product)

	s.logger.WithFields(logrus.Fields{
		"admin":      admin.Email,
		"product_id": product.ID,
	}).Info("product created")

	return product, nil
}

// UpdateProduct replaces the product with the given ID. The bool is false
// and nothing changes when no product has the ID.
func (s *State) UpdateProduct(id int, input catalog.Product) (catalog.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, err := s.Session.RequireAdmin()
	if err != nil {
		return catalog.Product{}, false, err
	}

	if _, ok := s.Catalog.Get(id); !ok {
		return catalog.Product{}, false, nil
	}

	input.ID = id
	product, err := catalog.NewProduct(input)
	if err != nil {
		return catalog.Product{}, false, err
	}
	s.Catalog.Upsert(product)

	s.logger.WithFields(logrus.Fields{
		"admin":      admin.Email,
		"product_id": id,
	}).Info("product updated")

	return product, true, nil
}

// DeleteProduct removes a product. Carts and orders keep their snapshots.
func (s *State) DeleteProduct(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, err := s.Session.RequireAdmin()
	if err != nil {
		return err
	}
	s.Catalog.Remove(id)

	s.logger.WithFields(logrus.Fields{
		"admin":      admin.Email,
		"product_id": id,
	}).Info("product deleted")

	return nil
}

// SetStock overwrites a product's stock level
func (s *State) SetStock(id, stock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Session.RequireAdmin(); err != nil {
		return err
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", catalog.ErrInvalidProduct)
	}
	s.Catalog.SetStock(id, stock)
	return nil
}

// SetOrderStatus overwrites an order's status
func (s *State) SetOrderStatus(id string, status order.OrderStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Session.RequireAdmin(); err != nil {
		return false, err
	}
	return s.Orders.SetStatus(id, status)
}

// SetPaymentStatus overwrites an order's payment status
func (s *State) SetPaymentStatus(id string, status order.PaymentStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Session.RequireAdmin(); err != nil {
		return false, err
	}
	return s.Orders.SetPaymentStatus(id, status)
}

// AllOrders returns every order, newest first
func (s *State) AllOrders() ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.Session.RequireAdmin(); err != nil {
		return nil, err
	}
	return s.Orders.List(), nil
}

// Dashboard computes the admin overview
func (s *State) Dashboard() (analytics.Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.Session.RequireAdmin(); err != nil {
		return analytics.Dashboard{}, err
	}

	return analytics.BuildDashboard(
		s.Catalog.List(),
		s.Orders.List(),
		s.Ledger.List(),
		s.config.Store.LowStockThreshold,
	), nil
}

// Customers lists every customer in first-seen order
func (s *State) Customers() ([]customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.Session.RequireAdmin(); err != nil {
		return nil, err
	}
	return s.Ledger.List(), nil
}

// CustomerDetail is a customer with their orders
type CustomerDetail struct {
	Customer          customer.Customer `json:"customer"`
	Orders            []order.Order     `json:"orders"`
	AverageOrderValue float64           `json:"averageOrderValue"`
}

// CustomerDetail returns one customer with their order history
func (s *State) CustomerDetail(email string) (CustomerDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.Session.RequireAdmin(); err != nil {
		return CustomerDetail{}, err
	}

	c, ok := s.Ledger.Get(email)
	if !ok {
		return CustomerDetail{}, fmt.Errorf("%w: %s", customer.ErrCustomerNotFound, email)
	}

	return CustomerDetail{
		Customer:          c,
		Orders:            s.Orders.ForCustomer(email),
		AverageOrderValue: s.Ledger.AverageOrderValue(c),
	}, nil
}
