package handlers

import (
	"food-delivery-client/dashboard"
	"food-delivery-client/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ReloadAssignedOrders(c *gin.Context) {
	v, _ := h.currentView(c, middleware.GetSession(c)).(*dashboard.DriverView)
	if v != nil && v.Orders != nil {
		v.Orders.Load(c.Request.Context())
	}
	h.done(c)
}
