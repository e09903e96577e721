// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/dryfruits-storefront/internal/app"
	"github.com/your-org/dryfruits-storefront/internal/domain/catalog"
	"github.com/your-org/dryfruits-storefront/internal/domain/order"
)

// AdminHandler handles the admin panel endpoints
type AdminHandler struct {
	state *app.State
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(state *app.State) *AdminHandler {
	return &AdminHandler{state: state}
}

// UpdateStockRequest represents the stock update payload
type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// UpdateOrderStatusRequest represents the order status payload
type UpdateOrderStatusRequest struct {
	Status order.OrderStatus `json:"status" binding:"required"`
}

// UpdatePaymentStatusRequest represents the payment status payload
type UpdatePaymentStatusRequest struct {
	PaymentStatus order.PaymentStatus `json:"paymentStatus" binding:"required"`
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.state.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard retrieved successfully",
		"data":    dashboard,
	})
}

// CreateProduct handles POST /admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var input catalog.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	product, err := h.state.CreateProduct(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    product,
	})
}

// UpdateProduct handles PUT /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var input catalog.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	product, updated, err := h.state.UpdateProduct(id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	if !updated {
		c.JSON(http.StatusOK, gin.H{
			"message": "No product with that ID, nothing changed",
			"updated": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"updated": true,
		"data":    product,
	})
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.state.DeleteProduct(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// UpdateStock handles PUT /admin/products/:id/stock
func (h *AdminHandler) UpdateStock(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.state.SetStock(id, *req.Stock); err != nil {
		respondError(c, err)
		return
	}

	product, found := h.state.Catalog.Get(id)
	c.JSON(http.StatusOK, gin.H{
		"message": "Stock updated successfully",
		"updated": found,
		"data":    product,
	})
}

// ListOrders handles GET /admin/orders
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.state.AllOrders()
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

// UpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.state.SetOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"updated": updated,
	})
}

// UpdatePaymentStatus handles PUT /admin/orders/:id/payment-status
func (h *AdminHandler) UpdatePaymentStatus(c *gin.Context) {
	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.state.SetPaymentStatus(c.Param("id"), req.PaymentStatus)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment status updated",
		"updated": updated,
	})
}

// ListCustomers handles GET /admin/customers
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	customers, err := h.state.Customers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customers retrieved successfully",
		"data":    customers,
		"total":   len(customers),
	})
}

// GetCustomer handles GET /admin/customers/:email
func (h *AdminHandler) GetCustomer(c *gin.Context) {
	detail, err := h.state.CustomerDetail(c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer retrieved successfully",
		"data":    detail,
	})
}
