// internal/domain/order/log.go
package order

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Log is the list of placed orders, newest first
type Log struct {
	mu     sync.RWMutex
	orders []Order
	logger *logrus.Logger
}

// NewLog creates an empty order log
func NewLog(logger *logrus.Logger) *Log {
	return &Log{logger: logger}
}

// Prepend records a newly placed order at the head of the log
func (l *Log) Prepend(o Order) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]Order, 0, len(l.orders)+1)
	next = append(next, o.clone())
	next = append(next, l.orders...)
	l.orders = next

	l.logger.WithFields(logrus.Fields{
		"order_id": o.ID,
		"email":    o.CustomerEmail,
		"total":    o.Total,
	}).Info("order recorded")
}

// List returns every order, newest first
func (l *Log) List() []Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = o.clone()
	}
	return out
}

// Len returns the number of orders
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}

// Get returns the order with the given ID
func (l *Log) Get(id string) (Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, o := range l.orders {
		if o.ID == id {
			return o.clone(), nil
		}
	}
	return Order{}, ErrOrderNotFound
}

// ForCustomer returns the orders placed with email, newest first
func (l *Log) ForCustomer(email string) []Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	email = strings.TrimSpace(email)
	out := []Order{}
	for _, o := range l.orders {
		if strings.EqualFold(o.CustomerEmail, email) {
			out = append(out, o.clone())
		}
	}
	return out
}

// SetStatus changes an order's status. Any transition between known
// statuses is allowed. The bool is false when no order has the ID.
func (l *Log) SetStatus(id string, status OrderStatus) (bool, error) {
	if !status.IsValid() {
		return false, fmt.Errorf("%w: order status %q", ErrInvalidStatus, status)
	}
	return l.update(id, func(o *Order) {
		o.Status = status
	}), nil
}

// SetPaymentStatus changes an order's payment status
func (l *Log) SetPaymentStatus(id string, status PaymentStatus) (bool, error) {
	if !status.IsValid() {
		return false, fmt.Errorf("%w: payment status %q", ErrInvalidStatus, status)
	}
	return l.update(id, func(o *Order) {
		o.PaymentStatus = status
	}), nil
}

func (l *Log) update(id string, fn func(*Order)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID != id {
			continue
		}

		next := make([]Order, len(l.orders))
		copy(next, l.orders)
		updated := next[i].clone()
		fn(&updated)
		next[i] = updated
		l.orders = next

		l.logger.WithFields(logrus.Fields{
			"order_id":       id,
			"status":         updated.Status,
			"payment_status": updated.PaymentStatus,
		}).Info("order updated")
		return true
	}
	return false
}
