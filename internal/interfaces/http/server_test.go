package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/dryfruits-storefront/internal/app"
	"github.com/your-org/dryfruits-storefront/internal/config"
	"github.com/your-org/dryfruits-storefront/internal/domain/session"
	"github.com/your-org/dryfruits-storefront/internal/pkg/logger"
)

type envelope struct {
	Message       string            `json:"message"`
	Error         string            `json:"error"`
	Errors        map[string]string `json:"errors"`
	LoginRequired bool              `json:"login_required"`
	Updated       *bool             `json:"updated"`
	Total         int               `json:"total"`
	Data          json.RawMessage   `json:"data"`
}

type client struct {
	t       *testing.T
	handler http.Handler
	token   string
}

func newClient(t *testing.T) *client {
	t.Helper()
	cfg := config.Default()
	log := logger.Discard()
	state := app.New(cfg, session.NewDemoProvider(cfg.Auth.AdminEmail), log)
	return &client{t: t, handler: NewServer(cfg, state, nil, log).Handler()}
}

func (c *client) do(method, path string, body any) (int, envelope) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (c *client) login(email string) {
	c.t.Helper()

	code, env := c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": email, "password": "secret"})
	require.Equal(c.t, http.StatusOK, code, env.Error)

	var data struct {
		Token    string `json:"token"`
		Identity struct {
			IsAdmin bool `json:"isAdmin"`
		} `json:"identity"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(c.t, data.Token)
	c.token = data.Token
}

func checkoutBody(phone string) map[string]string {
	return map[string]string{
		"firstName":     "Asha",
		"lastName":      "Rao",
		"email":         "asha@example.com",
		"phone":         phone,
		"address":       "12 MG Road",
		"city":          "Bengaluru",
		"state":         "Karnataka",
		"zipCode":       "560001",
		"paymentMethod": "cod",
	}
}

func TestHealth(t *testing.T) {
	c := newClient(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCatalogRoutes(t *testing.T) {
	c := newClient(t)

	code, env := c.do(http.MethodGet, "/api/v1/products", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 10, env.Total)

	code, env = c.do(http.MethodGet, "/api/v1/products?search=NUT", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 4, env.Total, "Cashew Nuts, Walnuts, Roasted Peanuts, Coconut Chips")

	code, env = c.do(http.MethodGet, "/api/v1/products?category=Healthy%20Snacks", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, env.Total)

	code, env = c.do(http.MethodGet, "/api/v1/products/3", nil)
	assert.Equal(t, http.StatusOK, code)
	var product struct {
		Name               string `json:"name"`
		Price              int64  `json:"price"`
		DiscountPercentage int    `json:"discountPercentage"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, "Mixed Dry Fruits", product.Name)
	assert.Equal(t, int64(699), product.Price)
	assert.Equal(t, 14, product.DiscountPercentage)

	code, _ = c.do(http.MethodGet, "/api/v1/products/404", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = c.do(http.MethodGet, "/api/v1/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = c.do(http.MethodGet, "/api/v1/categories", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestCartRequiresLogin(t *testing.T) {
	c := newClient(t)

	code, env := c.do(http.MethodPost, "/api/v1/cart/items", map[string]int{"productId": 1})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.True(t, env.LoginRequired)
}

func TestLoginRejectsBlankPassword(t *testing.T) {
	c := newClient(t)

	code, _ := c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "asha@example.com"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestShopperCheckoutFlow(t *testing.T) {
	c := newClient(t)
	c.login("asha@example.com")

	for _, id := range []int{1, 1, 2} {
		code, env := c.do(http.MethodPost, "/api/v1/cart/items", map[string]int{"productId": id})
		require.Equal(t, http.StatusOK, code, env.Error)
	}

	code, env := c.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, code)
	var view struct {
		Count int `json:"count"`
		Lines []struct {
			ID                 int  `json:"id"`
			Quantity           int  `json:"quantity"`
			DiscountPercentage *int `json:"discountPercentage"`
		} `json:"lines"`
		Totals struct {
			SubTotal     int64 `json:"subtotal"`
			ShippingCost int64 `json:"shippingCost"`
			Total        int64 `json:"total"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, int64(997), view.Totals.SubTotal)
	assert.Equal(t, int64(0), view.Totals.ShippingCost)
	assert.Equal(t, int64(997), view.Totals.Total)
	assert.Equal(t, 3, view.Count)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Nil(t, view.Lines[0].DiscountPercentage, "cart lines keep the plain product encoding")

	code, env = c.do(http.MethodPost, "/api/v1/checkout", checkoutBody("12345"))
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "Phone number must be 10 digits", env.Errors["phone"])

	code, env = c.do(http.MethodPost, "/api/v1/checkout", checkoutBody("9876543210"))
	require.Equal(t, http.StatusCreated, code, env.Error)
	var placed struct {
		ID            string `json:"id"`
		Total         int64  `json:"total"`
		PaymentStatus string `json:"paymentStatus"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &placed))
	assert.Equal(t, int64(997), placed.Total)
	assert.Equal(t, "pending", placed.PaymentStatus)

	code, env = c.do(http.MethodGet, "/api/v1/orders", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, env.Total)

	code, env = c.do(http.MethodPost, "/api/v1/checkout", checkoutBody("9876543210"))
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "cart")

	code, _ = c.do(http.MethodGet, "/api/v1/admin/dashboard", nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = c.do(http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, code)

	code, env = c.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, code, "tokens die with their session")
	assert.True(t, env.LoginRequired)
}

func TestNewLoginEndsPreviousToken(t *testing.T) {
	first := newClient(t)
	first.login("asha@example.com")

	second := &client{t: t, handler: first.handler}
	second.login("ravi@example.com")

	code, _ := first.do(http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = second.do(http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestAdminFlow(t *testing.T) {
	c := newClient(t)
	c.login("asha@example.com")
	_, _ = c.do(http.MethodPost, "/api/v1/cart/items", map[string]int{"productId": 7})
	code, env := c.do(http.MethodPost, "/api/v1/checkout", checkoutBody("9876543210"))
	require.Equal(t, http.StatusCreated, code, env.Error)
	var placed struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &placed))

	c.login("admin@dryfruits.com")

	code, env = c.do(http.MethodGet, "/api/v1/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	var dashboard struct {
		TotalOrders  int   `json:"totalOrders"`
		TotalRevenue int64 `json:"totalRevenue"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dashboard))
	assert.Equal(t, 1, dashboard.TotalOrders)
	assert.Equal(t, int64(149), dashboard.TotalRevenue)

	code, env = c.do(http.MethodPost, "/api/v1/admin/products", map[string]any{
		"name": "Pine Nuts", "category": "Dry Fruits", "price": 899, "discountPrice": 799, "stock": 4,
	})
	require.Equal(t, http.StatusCreated, code, env.Error)

	code, _ = c.do(http.MethodPost, "/api/v1/admin/products", map[string]any{
		"name": "Bad", "category": "Dry Fruits", "price": 100, "discountPrice": 200,
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = c.do(http.MethodPut, "/api/v1/admin/products/11/stock", map[string]int{"stock": 0})
	require.Equal(t, http.StatusOK, code)
	var stocked struct {
		InStock bool `json:"inStock"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stocked))
	assert.False(t, stocked.InStock)

	code, env = c.do(http.MethodPut, "/api/v1/admin/products/999", map[string]any{"name": "Ghost", "category": "Dry Fruits"})
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Updated)
	assert.False(t, *env.Updated)

	code, env = c.do(http.MethodPut, "/api/v1/admin/orders/"+placed.ID+"/status", map[string]string{"status": "shipped"})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, *env.Updated)

	code, _ = c.do(http.MethodPut, "/api/v1/admin/orders/"+placed.ID+"/status", map[string]string{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = c.do(http.MethodPut, "/api/v1/admin/orders/"+placed.ID+"/payment-status", map[string]string{"paymentStatus": "completed"})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, *env.Updated)

	code, env = c.do(http.MethodGet, "/api/v1/admin/orders", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, env.Total)

	code, env = c.do(http.MethodGet, "/api/v1/admin/customers", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, env.Total)

	code, _ = c.do(http.MethodGet, "/api/v1/admin/customers/asha@example.com", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = c.do(http.MethodGet, "/api/v1/admin/customers/ghost@example.com", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = c.do(http.MethodDelete, "/api/v1/admin/products/11", nil)
	assert.Equal(t, http.StatusOK, code)
}
