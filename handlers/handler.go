package handlers

import (
	"log"
	"net/http"
	"sync"

	"food-delivery-client/dashboard"
	"food-delivery-client/middleware"
	"food-delivery-client/models"
	"food-delivery-client/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// FlashSession is the cookie that carries alerts across redirects
const FlashSession = "food-delivery-client"

// Handler serves the browser UI for the single local user. The dashboard
// view lives here between requests; Serialize makes requests take turns.
type Handler struct {
	sessions *session.Manager
	backend  dashboard.Backend
	cookies  sessions.Store
	alerts   *dashboard.Alerts

	mu   sync.Mutex
	view dashboard.View
}

func New(mgr *session.Manager, backend dashboard.Backend, cookies sessions.Store) *Handler {
	return &Handler{
		sessions: mgr,
		backend:  backend,
		cookies:  cookies,
		alerts:   &dashboard.Alerts{},
	}
}

// Serialize runs one request at a time so panel state is never touched
// concurrently
func (h *Handler) Serialize() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.mu.Lock()
		defer h.mu.Unlock()
		c.Next()
	}
}

type page struct {
	Session  *models.Session
	Alerts   []string
	View     dashboard.View
	Customer *dashboard.CustomerView
	Driver   *dashboard.DriverView
	Admin    *dashboard.AdminView

	Login         LoginForm
	Register      RegisterForm
	LoginError    string
	RegisterError string
}

// currentView returns the mounted dashboard for the session, building it
// on first use
func (h *Handler) currentView(c *gin.Context, s *models.Session) dashboard.View {
	if h.view == nil || h.view.Kind() != dashboard.Route(s.Role) {
		h.view = dashboard.NewView(c.Request.Context(), s.Role, h.backend, h.alerts)
	}
	return h.view
}

func (h *Handler) resetView() {
	h.view = nil
	h.alerts.Drain()
}

// Dashboard renders the one dashboard the caller's role routes to
func (h *Handler) Dashboard(c *gin.Context) {
	s := middleware.GetSession(c)
	v := h.currentView(c, s)
	if tab := c.Query("tab"); tab != "" {
		v.Open(c.Request.Context(), tab)
	}

	p := page{Session: s, View: v}
	var name string
	switch view := v.(type) {
	case *dashboard.AdminView:
		p.Admin, name = view, "admin.tmpl"
	case *dashboard.DriverView:
		p.Driver, name = view, "driver.tmpl"
	case *dashboard.CustomerView:
		p.Customer, name = view, "customer.tmpl"
	}
	h.render(c, name, p)
}

func (h *Handler) render(c *gin.Context, name string, p page) {
	p.Alerts = append(h.popFlashes(c), h.alerts.Drain()...)
	c.HTML(http.StatusOK, name, p)
}

// done stores pending alerts as flashes and sends the browser back to the
// dashboard
func (h *Handler) done(c *gin.Context) {
	h.redirect(c, "/dashboard")
}

func (h *Handler) redirect(c *gin.Context, to string) {
	if msgs := h.alerts.Drain(); len(msgs) > 0 {
		sess, err := h.cookies.Get(c.Request, FlashSession)
		if err != nil {
			log.Printf("⚠️ flash session: %v", err)
		}
		if sess == nil {
			c.Redirect(http.StatusSeeOther, to)
			return
		}
		for _, m := range msgs {
			sess.AddFlash(m)
		}
		if err := sess.Save(c.Request, c.Writer); err != nil {
			log.Printf("⚠️ save flashes: %v", err)
		}
	}
	c.Redirect(http.StatusSeeOther, to)
}

func (h *Handler) popFlashes(c *gin.Context) []string {
	sess, err := h.cookies.Get(c.Request, FlashSession)
	if err != nil || sess == nil {
		return nil
	}
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Printf("⚠️ save flashes: %v", err)
	}
	out := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Health reports the local server and the backend it talks to
func Health(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Delivery Client",
			"backend": baseURL,
		})
	}
}
