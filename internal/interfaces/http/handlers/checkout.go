// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/dryfruits-storefront/internal/app"
	"github.com/your-org/dryfruits-storefront/internal/domain/order"
)

// CheckoutHandler handles order placement and the shopper's order history
type CheckoutHandler struct {
	state *app.State
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(state *app.State) *CheckoutHandler {
	return &CheckoutHandler{state: state}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var form order.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}

	placed, err := h.state.PlaceOrder(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// ListMyOrders handles GET /orders
func (h *CheckoutHandler) ListMyOrders(c *gin.Context) {
	orders, err := h.state.MyOrders()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
		"total":   len(orders),
	})
}
