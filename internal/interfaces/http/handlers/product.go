// internal/interfaces/http/handlers/product.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/dryfruits-storefront/internal/domain/catalog"
)

// ProductHandler serves the public catalog
type ProductHandler struct {
	catalog *catalog.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService *catalog.Service) *ProductHandler {
	return &ProductHandler{catalog: catalogService}
}

// productView is a product as the storefront renders it, with the
// derived discount badge
type productView struct {
	catalog.Product
	DiscountPercentage int `json:"discountPercentage"`
}

func newProductView(p catalog.Product) productView {
	return productView{Product: p, DiscountPercentage: p.GetDiscountPercentage()}
}

func newProductViews(products []catalog.Product) []productView {
	views := make([]productView, len(products))
	for i, p := range products {
		views[i] = newProductView(p)
	}
	return views
}

// ListProducts handles GET /products?search=&category=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products := h.catalog.Search(c.Query("search"))

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		filtered := make([]catalog.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    newProductViews(products),
		"total":   len(products),
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	product, found := h.catalog.Get(id)
	if !found {
		respondError(c, fmt.Errorf("%w: %d", catalog.ErrProductNotFound, id))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    newProductView(product),
	})
}

// ListCategories handles GET /categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.catalog.Categories(),
	})
}

// parseProductID reads the :id path parameter, answering 400 when it
// is not a number
func parseProductID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return 0, false
	}
	return id, true
}
