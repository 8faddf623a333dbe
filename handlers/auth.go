package handlers

import (
	"net/http"

	"food-delivery-client/api"

	"github.com/gin-gonic/gin"
)

type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type RegisterForm struct {
	FullName string `form:"fullName" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// Home shows the sign-in screen, or the dashboard when already signed in
func (h *Handler) Home(c *gin.Context) {
	if h.sessions.Current() != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	h.render(c, "auth.tmpl", page{})
}

// Login authenticates against the backend. Failures are shown inline.
func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, "auth.tmpl", page{Login: form, LoginError: "Enter your email and password"})
		return
	}
	if _, err := h.sessions.Login(c.Request.Context(), form.Email, form.Password); err != nil {
		form.Password = ""
		h.render(c, "auth.tmpl", page{Login: form, LoginError: api.Message(err)})
		return
	}
	h.resetView()
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Register creates a customer account. The user signs in separately.
func (h *Handler) Register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		form.Password = ""
		h.render(c, "auth.tmpl", page{Register: form, RegisterError: "Enter your full name, a valid email and a password"})
		return
	}
	if err := h.sessions.RegisterCustomer(c.Request.Context(), form.FullName, form.Email, form.Password); err != nil {
		form.Password = ""
		h.render(c, "auth.tmpl", page{Register: form, RegisterError: api.Message(err)})
		return
	}
	h.alerts.Alert("Customer account created. Now sign in.")
	h.redirect(c, "/")
}

// Logout clears the stored token and every panel's state
func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	h.resetView()
	c.Redirect(http.StatusSeeOther, "/")
}
