// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/dryfruits-storefront/internal/app"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	state *app.State
}

// NewCartHandler creates a new cart handler
func NewCartHandler(state *app.State) *CartHandler {
	return &CartHandler{state: state}
}

// AddToCartRequest represents the add-to-cart payload
type AddToCartRequest struct {
	ProductID int `json:"productId" binding:"required,gt=0"`
}

// UpdateCartItemRequest represents the quantity update payload. Zero
// removes the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.state.ViewCart()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    view,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.state.AddToCart(req.ProductID); err != nil {
		respondError(c, err)
		return
	}

	h.respondWithCart(c, "Item added to cart successfully")
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.state.UpdateCartQuantity(productID, *req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	h.respondWithCart(c, "Cart item updated successfully")
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	if _, err := h.state.RemoveFromCart(productID); err != nil {
		respondError(c, err)
		return
	}

	h.respondWithCart(c, "Item removed from cart successfully")
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.state.ClearCart(); err != nil {
		respondError(c, err)
		return
	}

	h.respondWithCart(c, "Cart cleared successfully")
}

func (h *CartHandler) respondWithCart(c *gin.Context, message string) {
	view, err := h.state.ViewCart()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    view,
	})
}
