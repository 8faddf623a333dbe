package handlers

import (
	"net/http"

	"food-delivery-client/api"
	"food-delivery-client/dashboard"
	"food-delivery-client/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) adminView(c *gin.Context) *dashboard.AdminView {
	v, _ := h.currentView(c, middleware.GetSession(c)).(*dashboard.AdminView)
	return v
}

func (h *Handler) ordersPanel(c *gin.Context) *dashboard.AdminOrdersPanel {
	if v := h.adminView(c); v != nil {
		return v.Orders
	}
	return nil
}

func (h *Handler) restaurantAdmin(c *gin.Context) *dashboard.AdminRestaurants {
	if v := h.adminView(c); v != nil {
		return v.Restaurants
	}
	return nil
}

func (h *Handler) ReloadOrdersPanel(c *gin.Context) {
	if p := h.ordersPanel(c); p != nil {
		p.Load(c.Request.Context())
	}
	h.done(c)
}

func (h *Handler) AssignOrder(c *gin.Context) {
	if p := h.ordersPanel(c); p != nil {
		p.Assign(c.Request.Context(), c.Param("id"))
	}
	h.done(c)
}

func (h *Handler) MarkDelivered(c *gin.Context) {
	if p := h.ordersPanel(c); p != nil {
		p.MarkDelivered(c.Request.Context(), c.Param("id"))
	}
	h.done(c)
}

func (h *Handler) ReloadAdminRestaurants(c *gin.Context) {
	if p := h.restaurantAdmin(c); p != nil {
		p.Load(c.Request.Context())
	}
	h.done(c)
}

func (h *Handler) CreateRestaurant(c *gin.Context) {
	if p := h.restaurantAdmin(c); p != nil {
		p.CreateRestaurant(c.Request.Context(), dashboard.RestaurantDraft{
			Name:    c.PostForm("name"),
			Address: c.PostForm("address"),
		})
	}
	h.done(c)
}

func (h *Handler) SelectAdminRestaurant(c *gin.Context) {
	if p := h.restaurantAdmin(c); p != nil {
		p.Select(c.Request.Context(), c.Param("id"))
	}
	h.done(c)
}

func (h *Handler) AddProduct(c *gin.Context) {
	if p := h.restaurantAdmin(c); p != nil {
		p.AddProduct(c.Request.Context(), dashboard.ProductDraft{
			Name:        c.PostForm("name"),
			Description: c.PostForm("description"),
			Price:       c.PostForm("price"),
		})
	}
	h.done(c)
}

// DownloadReport streams the orders CSV back as a file attachment
func (h *Handler) DownloadReport(c *gin.Context) {
	v := h.adminView(c)
	if v == nil {
		h.done(c)
		return
	}
	v.Open(c.Request.Context(), dashboard.TabReports)

	data, ok := v.Reports.Download(c.Request.Context())
	if !ok {
		h.done(c)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+api.ReportFilename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
