// internal/domain/customer/entity.go
package customer

import (
	"errors"
	"time"
)

// ErrCustomerNotFound is returned when no customer has the email
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerStatus represents the customer status
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// DefaultPhone is recorded for customers whose identity carries no phone
const DefaultPhone = "+91 9876543210"

// Customer aggregates order statistics per email
type Customer struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	JoinDate      time.Time      `json:"joinDate"`
	TotalOrders   int            `json:"totalOrders"`
	TotalSpent    int64          `json:"totalSpent"`
	Status        CustomerStatus `json:"status"`
	LastOrderDate *time.Time     `json:"lastOrderDate"`
}

// AverageOrderValue returns spend per order, or 0 without orders
func (c Customer) AverageOrderValue() float64 {
	if c.TotalOrders == 0 {
		return 0
	}
	return float64(c.TotalSpent) / float64(c.TotalOrders)
}
