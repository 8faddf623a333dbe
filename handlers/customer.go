package handlers

import (
	"food-delivery-client/dashboard"
	"food-delivery-client/middleware"

	"github.com/gin-gonic/gin"
)

// restaurantsPanel returns the customer's restaurant browser, or nil when
// another tab is open
func (h *Handler) restaurantsPanel(c *gin.Context) *dashboard.CustomerRestaurants {
	v, _ := h.currentView(c, middleware.GetSession(c)).(*dashboard.CustomerView)
	if v == nil {
		return nil
	}
	return v.Restaurants
}

func (h *Handler) ReloadRestaurants(c *gin.Context) {
	if p := h.restaurantsPanel(c); p != nil {
		p.Load(c.Request.Context())
	}
	h.done(c)
}

func (h *Handler) SelectRestaurant(c *gin.Context) {
	if p := h.restaurantsPanel(c); p != nil {
		p.Select(c.Request.Context(), c.Param("id"))
	}
	h.done(c)
}

func (h *Handler) AddToCart(c *gin.Context) {
	if p := h.restaurantsPanel(c); p != nil {
		p.AddToCart(c.Param("productId"))
	}
	h.done(c)
}

func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	var form struct {
		Quantity int `form:"quantity"`
	}
	if p := h.restaurantsPanel(c); p != nil && c.ShouldBind(&form) == nil {
		p.UpdateQuantity(c.Param("productId"), form.Quantity)
	}
	h.done(c)
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	if p := h.restaurantsPanel(c); p != nil {
		p.PlaceOrder(c.Request.Context(), c.PostForm("address"))
	}
	h.done(c)
}

func (h *Handler) ReloadMyOrders(c *gin.Context) {
	v, _ := h.currentView(c, middleware.GetSession(c)).(*dashboard.CustomerView)
	if v != nil && v.Orders != nil {
		v.Orders.Load(c.Request.Context())
	}
	h.done(c)
}
