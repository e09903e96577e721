// internal/domain/cart/entity.go
package cart

import "github.com/your-org/dryfruits-storefront/internal/domain/catalog"

// CartLine is a product snapshot plus the quantity in the cart
type CartLine struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// LineTotal returns discount price times quantity
func (l CartLine) LineTotal() int64 {
	return l.DiscountPrice * int64(l.Quantity)
}

// CartTotals represents calculated cart totals
type CartTotals struct {
	ItemCount     int   `json:"itemCount"`     // Number of unique items
	TotalQuantity int   `json:"totalQuantity"` // Sum of all quantities
	SubTotal      int64 `json:"subtotal"`
	ShippingCost  int64 `json:"shippingCost"`
	TotalAmount   int64 `json:"total"`
}
