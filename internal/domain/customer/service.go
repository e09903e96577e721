// internal/domain/customer/service.go
package customer

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/dryfruits-storefront/internal/domain/session"
)

// Ledger keeps one Customer per email, in first-seen order
type Ledger struct {
	mu        sync.RWMutex
	customers []Customer
	now       func() time.Time
	logger    *logrus.Logger
}

// NewLedger creates an empty ledger
func NewLedger(logger *logrus.Logger) *Ledger {
	return &Ledger{
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// RecordLogin creates a customer for the identity's email if none exists
func (l *Ledger) RecordLogin(identity session.Identity) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.indexOf(identity.Email) >= 0 {
		return
	}

	l.customers = append(cloneAll(l.customers), l.newCustomer(identity.Email, identity.Name, identity.Phone))

	l.logger.WithField("email", identity.Email).Info("customer registered")
}

// RecordOrder adds an order to the customer's totals. A customer is
// created on demand when the email has never logged in.
func (l *Ledger) RecordOrder(email, name string, orderTotal int64) Customer {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := cloneAll(l.customers)
	i := l.indexOf(email)
	if i < 0 {
		next = append(next, l.newCustomer(email, name, ""))
		i = len(next) - 1

		l.logger.WithField("email", email).Warn("order recorded for unknown customer, creating entry")
	}

	now := l.now()
	c := &next[i]
	c.TotalOrders++
	c.TotalSpent += orderTotal
	c.LastOrderDate = &now
	c.Status = CustomerStatusActive
	l.customers = next

	return clone(*c)
}

// Get returns the customer for email
func (l *Ledger) Get(email string) (Customer, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.indexOf(email); i >= 0 {
		return clone(l.customers[i]), true
	}
	return Customer{}, false
}

// List returns all customers in first-seen order
func (l *Ledger) List() []Customer {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneAll(l.customers)
}

// AverageOrderValue returns spend per order for customer
func (l *Ledger) AverageOrderValue(c Customer) float64 {
	return c.AverageOrderValue()
}

func (l *Ledger) newCustomer(email, name, phone string) Customer {
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	if phone == "" {
		phone = DefaultPhone
	}

	return Customer{
		ID:       "CUST-" + uuid.NewString(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		JoinDate: l.now(),
		Status:   CustomerStatusActive,
	}
}

// indexOf matches emails case-insensitively, like the order log does.
// It must be called with l.mu held.
func (l *Ledger) indexOf(email string) int {
	email = strings.TrimSpace(email)
	for i := range l.customers {
		if strings.EqualFold(l.customers[i].Email, email) {
			return i
		}
	}
	return -1
}

func clone(c Customer) Customer {
	if c.LastOrderDate != nil {
		t := *c.LastOrderDate
		c.LastOrderDate = &t
	}
	return c
}

func cloneAll(customers []Customer) []Customer {
	out := make([]Customer, len(customers))
	for i, c := range customers {
		out[i] = clone(c)
	}
	return out
}
