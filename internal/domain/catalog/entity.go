// internal/domain/catalog/entity.go
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrProductNotFound is returned by reads that reference an absent product.
	// Mutations on absent products are silent no-ops instead.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProduct wraps field constraint violations
	ErrInvalidProduct = errors.New("invalid product")
)

var validate = validator.New()

// Product represents a catalog product. Prices are whole rupees.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Subcategory   string   `json:"subcategory"`
	Price         int64    `json:"price" validate:"gte=0"`
	DiscountPrice int64    `json:"discountPrice" validate:"gte=0,ltefield=Price"`
	Weight        string   `json:"weight"`
	Image         string   `json:"image" validate:"omitempty,url"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int      `json:"reviews" validate:"gte=0"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Stock         int      `json:"stock" validate:"gte=0"`
	InStock       bool     `json:"inStock"`
}

// Category represents a top-level product category
type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Validate checks the product's field constraints
func (p Product) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidProduct, strings.Join(msgs, ", "))
}

// NewProduct validates p and returns it with InStock derived from Stock
func NewProduct(p Product) (Product, error) {
	p.Features = append([]string(nil), p.Features...)
	p.syncStock()
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// IsLowStock reports whether the product is available but below threshold
func (p Product) IsLowStock(threshold int) bool {
	return p.Stock > 0 && p.Stock < threshold
}

// GetDiscountPercentage returns the discount off list price, rounded down
func (p Product) GetDiscountPercentage() int {
	if p.Price > 0 && p.DiscountPrice < p.Price {
		return int(((p.Price - p.DiscountPrice) * 100) / p.Price)
	}
	return 0
}

// syncStock restores the InStock == (Stock > 0) invariant
func (p *Product) syncStock() {
	if p.Stock < 0 {
		p.Stock = 0
	}
	p.InStock = p.Stock > 0
}

func (p Product) clone() Product {
	p.Features = append([]string(nil), p.Features...)
	return p
}
