package routes

import (
	"food-delivery-client/dashboard"
	"food-delivery-client/handlers"
	"food-delivery-client/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, sessions middleware.SessionSource, backendURL string) {
	r.GET("/health", handlers.Health(backendURL))

	// ── Sign in / sign up ──────────────────────────────────────────
	ui := r.Group("/")
	ui.Use(h.Serialize())
	{
		ui.GET("/", h.Home)
		ui.POST("/login", h.Login)
		ui.POST("/register", h.Register)
		ui.POST("/logout", h.Logout)
	}

	// ── Dashboard chosen by role ───────────────────────────────────
	authed := r.Group("/")
	authed.Use(h.Serialize(), middleware.SessionRequired(sessions))
	{
		authed.GET("/dashboard", h.Dashboard)
	}

	// ── Customer ───────────────────────────────────────────────────
	customer := r.Group("/customer")
	customer.Use(h.Serialize(), middleware.SessionRequired(sessions), middleware.ViewRequired(dashboard.KindCustomer))
	{
		customer.POST("/restaurants/reload", h.ReloadRestaurants)
		customer.POST("/restaurants/:id/select", h.SelectRestaurant)
		customer.POST("/menu/:productId/add", h.AddToCart)
		customer.POST("/cart/:productId", h.UpdateCartQuantity)
		customer.POST("/orders", h.PlaceOrder)
		customer.POST("/orders/reload", h.ReloadMyOrders)
	}

	// ── Driver ─────────────────────────────────────────────────────
	driver := r.Group("/driver")
	driver.Use(h.Serialize(), middleware.SessionRequired(sessions), middleware.ViewRequired(dashboard.KindDriver))
	{
		driver.POST("/orders/reload", h.ReloadAssignedOrders)
	}

	// ── Admin ──────────────────────────────────────────────────────
	admin := r.Group("/admin")
	admin.Use(h.Serialize(), middleware.SessionRequired(sessions), middleware.ViewRequired(dashboard.KindAdmin))
	{
		admin.POST("/orders/reload", h.ReloadOrdersPanel)
		admin.POST("/orders/:id/assign", h.AssignOrder)
		admin.POST("/orders/:id/delivered", h.MarkDelivered)

		admin.POST("/restaurants", h.CreateRestaurant)
		admin.POST("/restaurants/reload", h.ReloadAdminRestaurants)
		admin.POST("/restaurants/:id/select", h.SelectAdminRestaurant)
		admin.POST("/products", h.AddProduct)

		admin.GET("/reports/orders.csv", h.DownloadReport)
	}
}
