package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"smartorders/internal/domain/entities"
	"smartorders/pkg/reqctx"

	"github.com/gin-gonic/gin"
)

var (
	caller    = entities.Principal{ClientID: 42, Username: "ivan"}
	moderator = entities.Principal{ClientID: 1, Username: "admin", IsModerator: true}
)

// asPrincipal stands in for the auth middleware.
func asPrincipal(p entities.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(reqctx.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}

func newTestRouter(p *entities.Principal) *gin.Engine {
	r := gin.New()
	if p != nil {
		r.Use(asPrincipal(*p))
	}
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
