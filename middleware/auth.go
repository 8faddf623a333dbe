package middleware

import (
	"net/http"

	"food-delivery-client/dashboard"
	"food-delivery-client/models"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionSource exposes the signed-in session, nil when signed out
type SessionSource interface {
	Current() *models.Session
}

// SessionRequired sends signed-out browsers back to the sign-in screen and
// injects the session into the context otherwise
func SessionRequired(src SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := src.Current()
		if s == nil {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// ViewRequired rejects requests for a dashboard other than the one the
// caller's role routes to
func ViewRequired(kind dashboard.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := GetSession(c)
		if s == nil || dashboard.Route(s.Role) != kind {
			c.String(http.StatusForbidden, "This action is not available for your role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession returns the session stored by SessionRequired
func GetSession(c *gin.Context) *models.Session {
	val, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := val.(*models.Session)
	return s
}
