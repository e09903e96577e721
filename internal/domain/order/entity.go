// internal/domain/order/entity.go
package order

import (
	"errors"
	"time"
)

var (
	// ErrOrderNotFound is returned by reads that reference an absent order
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidStatus is returned for values outside the status enums
	ErrInvalidStatus = errors.New("invalid status")
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every order status in lifecycle order
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValid reports whether s is a known order status
func (s OrderStatus) IsValid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// PaymentMethod represents how the shopper pays
type PaymentMethod string

const (
	PaymentMethodCOD        PaymentMethod = "cod"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetBanking PaymentMethod = "netbanking"
	PaymentMethodOnline     PaymentMethod = "online"
)

// IsPrepaid reports whether the method settles at checkout
func (m PaymentMethod) IsPrepaid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetBanking, PaymentMethodOnline:
		return true
	}
	return false
}

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// IsValid reports whether s is a known payment status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// InitialPaymentStatus is completed for prepaid methods, pending for COD
func InitialPaymentStatus(m PaymentMethod) PaymentStatus {
	if m.IsPrepaid() {
		return PaymentStatusCompleted
	}
	return PaymentStatusPending
}

// Order represents a placed order
type Order struct {
	ID              string        `json:"id"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	Items           []OrderItem   `json:"items"`
	Subtotal        int64         `json:"subtotal"`
	ShippingCost    int64         `json:"shippingCost"`
	Total           int64         `json:"total"`
	Status          OrderStatus   `json:"status"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	OrderDate       time.Time     `json:"orderDate"`
	ShippingAddress Address       `json:"shippingAddress"`
	TrackingNumber  string        `json:"trackingNumber"`
}

// OrderItem is an ordered product with its price at order time
type OrderItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Image     string `json:"image"`
}

// Address represents the shipping address
type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// ItemCount returns the number of units in the order
func (o Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

func (o Order) clone() Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}
