package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"food-delivery-client/dashboard"
	"food-delivery-client/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type staticSource struct{ s *models.Session }

func (f staticSource) Current() *models.Session { return f.s }

func newEngine(src SessionSource, kind dashboard.Kind) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", SessionRequired(src), ViewRequired(kind), func(c *gin.Context) {
		c.String(http.StatusOK, GetSession(c).Email)
	})
	return r
}

func serve(r *gin.Engine) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	return rr
}

func TestSessionRequired_RedirectsWhenSignedOut(t *testing.T) {
	rr := serve(newEngine(staticSource{}, dashboard.KindCustomer))
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestViewRequired(t *testing.T) {
	admin := &models.Session{Identity: models.Identity{Role: models.RoleAdmin, Email: "a@x.com"}}
	other := &models.Session{Identity: models.Identity{Role: "Chef", Email: "c@x.com"}}

	rr := serve(newEngine(staticSource{admin}, dashboard.KindAdmin))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "a@x.com", rr.Body.String())

	rr = serve(newEngine(staticSource{admin}, dashboard.KindCustomer))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = serve(newEngine(staticSource{other}, dashboard.KindCustomer))
	assert.Equal(t, http.StatusOK, rr.Code)
}
