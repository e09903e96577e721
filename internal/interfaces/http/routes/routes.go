// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/dryfruits-storefront/internal/app"
	"github.com/your-org/dryfruits-storefront/internal/interfaces/http/handlers"
	"github.com/your-org/dryfruits-storefront/internal/interfaces/http/middleware"
	"github.com/your-org/dryfruits-storefront/internal/pkg/auth"
)

// SetupAuthRoutes sets up login and session routes
func SetupAuthRoutes(rg *gin.RouterGroup, state *app.State, jwtManager *auth.JWTManager, requireAuth gin.HandlerFunc) {
	authHandler := handlers.NewAuthHandler(state, jwtManager)

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)

		protected := authGroup.Group("")
		protected.Use(requireAuth)
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/me", authHandler.Me)
		}
	}
}

// SetupProductRoutes sets up the public catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, state *app.State) {
	productHandler := handlers.NewProductHandler(state.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	rg.GET("/categories", productHandler.ListCategories)
}

// SetupCartRoutes sets up cart routes
func SetupCartRoutes(rg *gin.RouterGroup, state *app.State, requireAuth gin.HandlerFunc) {
	cartHandler := handlers.NewCartHandler(state)

	cart := rg.Group("/cart")
	cart.Use(requireAuth)
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}
}

// SetupOrderRoutes sets up checkout and order history routes
func SetupOrderRoutes(rg *gin.RouterGroup, state *app.State, requireAuth gin.HandlerFunc) {
	checkoutHandler := handlers.NewCheckoutHandler(state)

	rg.POST("/checkout", requireAuth, checkoutHandler.Checkout)
	rg.GET("/orders", requireAuth, checkoutHandler.ListMyOrders)
}

// SetupAdminRoutes sets up admin routes
func SetupAdminRoutes(rg *gin.RouterGroup, state *app.State, requireAuth gin.HandlerFunc) {
	adminHandler := handlers.NewAdminHandler(state)

	admin := rg.Group("/admin")
	admin.Use(requireAuth, middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)

		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)
		admin.PUT("/products/:id/stock", adminHandler.UpdateStock)

		admin.GET("/orders", adminHandler.ListOrders)
		admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
		admin.PUT("/orders/:id/payment-status", adminHandler.UpdatePaymentStatus)

		admin.GET("/customers", adminHandler.ListCustomers)
		admin.GET("/customers/:email", adminHandler.GetCustomer)
	}
}

// SetupRoutes registers every API route on rg
func SetupRoutes(rg *gin.RouterGroup, state *app.State, jwtManager *auth.JWTManager) {
	requireAuth := middleware.AuthMiddleware(jwtManager, state.Session)

	SetupAuthRoutes(rg, state, jwtManager, requireAuth)
	SetupProductRoutes(rg, state)
	SetupCartRoutes(rg, state, requireAuth)
	SetupOrderRoutes(rg, state, requireAuth)
	SetupAdminRoutes(rg, state, requireAuth)
}
