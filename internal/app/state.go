// internal/app/state.go
package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/dryfruits-storefront/internal/config"
	"github.com/your-org/dryfruits-storefront/internal/domain/cart"
	"github.com/your-org/dryfruits-storefront/internal/domain/catalog"
	"github.com/your-org/dryfruits-storefront/internal/domain/customer"
	"github.com/your-org/dryfruits-storefront/internal/domain/order"
	"github.com/your-org/dryfruits-storefront/internal/domain/session"
)

// State is the storefront's application state.
//
// The stores guard themselves, but any operation that touches more than
// one of them takes mu so that readers never see half of a checkout.
type State struct {
	mu sync.RWMutex

	Catalog *catalog.Service
	Cart    *cart.Service
	Session *session.Gate
	Ledger  *customer.Ledger
	Orders  *order.Log

	ids    *order.IDGenerator
	config *config.Config
	logger *logrus.Logger
}

// New wires the stores together. The catalog is seeded when
// cfg.Store.SeedCatalog is set.
func New(cfg *config.Config, provider session.AuthProvider, logger *logrus.Logger) *State {
	var (
		products   []catalog.Product
		categories []catalog.Category
	)
	if cfg.Store.SeedCatalog {
		products = catalog.SeedProducts()
		categories = catalog.SeedCategories()
	}

	gate := session.NewGate(provider, logger)
	s := &State{
		Catalog: catalog.NewService(products, categories, logger),
		Cart:    cart.NewService(gate, cfg.Store, logger),
		Session: gate,
		Ledger:  customer.NewLedger(logger),
		Orders:  order.NewLog(logger),
		ids:     order.NewIDGenerator(),
		config:  cfg,
		logger:  logger,
	}

	// Logging out empties the cart
	gate.OnLogout(s.Cart.Clear)

	return s
}

// Config returns the configuration the state was built with
func (s *State) Config() *config.Config {
	return s.config
}

// Login authenticates and registers the shopper in the customer ledger
func (s *State) Login(ctx context.Context, email, password string) (session.Identity, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, sessionID, err := s.Session.Login(ctx, email, password)
	if err != nil {
		return session.Identity{}, "", err
	}

	s.Ledger.RecordLogin(identity)
	return identity, sessionID, nil
}

// Logout clears the identity and the cart
func (s *State) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Session.Logout()
}

// AddToCart adds one unit of the catalog product to the cart
func (s *State) AddToCart(productID int) (cart.CartTotals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.Catalog.Get(productID)
	if !ok {
		return cart.CartTotals{}, fmt.Errorf("%w: %d", catalog.ErrProductNotFound, productID)
	}
	if err := s.Cart.Add(product); err != nil {
		return cart.CartTotals{}, err
	}
	return s.Cart.Totals(), nil
}

// UpdateCartQuantity sets a line's quantity; zero or less removes it
func (s *State) UpdateCartQuantity(productID, quantity int) (cart.CartTotals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Session.RequireIdentity(); err != nil {
		return cart.CartTotals{}, err
	}
	s.Cart.SetQuantity(productID, quantity)
	return s.Cart.Totals(), nil
}

// RemoveFromCart deletes a line from the cart
func (s *State) RemoveFromCart(productID int) (cart.CartTotals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Session.RequireIdentity(); err != nil {
		return cart.CartTotals{}, err
	}
	s.Cart.Remove(productID)
	return s.Cart.Totals(), nil
}

// ClearCart empties the cart
func (s *State) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Session.RequireIdentity(); err != nil {
		return err
	}
	s.Cart.Clear()
	return nil
}

// CartView is the cart with its computed totals. Count is the header
// badge number.
type CartView struct {
	Lines  []cart.CartLine `json:"lines"`
	Totals cart.CartTotals `json:"totals"`
	Count  int             `json:"count"`
}

// ViewCart returns the cart lines and totals from one snapshot
func (s *State) ViewCart() (CartView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.Session.RequireIdentity(); err != nil {
		return CartView{}, err
	}

	lines := s.Cart.Lines()
	if lines == nil {
		lines = []cart.CartLine{}
	}
	return CartView{
		Lines:  lines,
		Totals: cart.CalculateTotals(lines, s.config.Store),
		Count:  s.Cart.Count(),
	}, nil
}

// MyOrders returns the orders placed with the logged-in shopper's email
func (s *State) MyOrders() ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	identity, err := s.Session.RequireIdentity()
	if err != nil {
		return nil, err
	}
	return s.Orders.ForCustomer(identity.Email), nil
}

// PlaceOrder turns the cart into an order.
//
// Nothing is changed unless the order is placed: a missing login, an empty
// cart, an invalid form, or a cancelled ctx all leave every store as it was.
// On success the order log, the customer ledger, the catalog stock and the
// cart are updated together.
func (s *State) PlaceOrder(ctx context.Context, form order.CheckoutForm) (order.Order, error) {
	form.Normalize()

	if _, err := s.checkCheckout(form); err != nil {
		return order.Order{}, err
	}

	if err := s.wait(ctx); err != nil {
		return order.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The session or cart may have changed while waiting
	identity, err := s.checkCheckout(form)
	if err != nil {
		return order.Order{}, err
	}

	o := s.buildOrder(identity, form, s.Cart.Lines())

	s.Orders.Prepend(o)
	s.Ledger.RecordOrder(identity.Email, identity.Name, o.Total)
	for _, item := range o.Items {
		s.Catalog.ApplyStockDelta(item.ProductID, item.Quantity)
	}
	s.Cart.Clear()

	s.logger.WithFields(logrus.Fields{
		"order_id":       o.ID,
		"email":          o.CustomerEmail,
		"items":          o.ItemCount(),
		"total":          o.Total,
		"payment_method": o.PaymentMethod,
	}).Info("order placed")

	return o, nil
}

func (s *State) checkCheckout(form order.CheckoutForm) (session.Identity, error) {
	identity, err := s.Session.RequireIdentity()
	if err != nil {
		return session.Identity{}, &order.ValidationError{
			Fields: map[string]string{"auth": "Please log in to place an order"},
			Cause:  err,
		}
	}
	if s.Cart.IsEmpty() {
		return session.Identity{}, order.NewValidationError("cart", "Your cart is empty")
	}
	if err := order.ValidateCheckout(form); err != nil {
		return session.Identity{}, err
	}
	return identity, nil
}

func (s *State) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	delay := s.config.Store.CheckoutProcessingDelay
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// buildOrder snapshots the cart at the discount price for the logged-in
// shopper. The form supplies only the phone and shipping address. The COD
// surcharge is not added to the total.
func (s *State) buildOrder(identity session.Identity, form order.CheckoutForm, lines []cart.CartLine) order.Order {
	items := make([]order.OrderItem, len(lines))
	for i, l := range lines {
		items[i] = order.OrderItem{
			ProductID: l.ID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.DiscountPrice,
			Image:     l.Image,
		}
	}

	totals := cart.CalculateTotals(lines, s.config.Store)

	return order.Order{
		ID:            s.ids.Next(),
		CustomerEmail: identity.Email,
		CustomerName:  identity.Name,
		CustomerPhone: strings.TrimSpace(form.Phone),
		Items:         items,
		Subtotal:      totals.SubTotal,
		ShippingCost:  totals.ShippingCost,
		Total:         totals.TotalAmount,
		Status:        order.OrderStatusPending,
		PaymentMethod: form.PaymentMethod,
		PaymentStatus: order.InitialPaymentStatus(form.PaymentMethod),
		OrderDate:     time.Now().UTC(),
		ShippingAddress: order.Address{
			Address: strings.TrimSpace(form.Address),
			City:    strings.TrimSpace(form.City),
			State:   strings.TrimSpace(form.State),
			ZipCode: strings.TrimSpace(form.ZipCode),
		},
		TrackingNumber: order.NewTrackingNumber(),
	}
}
