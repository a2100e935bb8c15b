package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartorders/internal/domain/entities"
	"smartorders/pkg/reqctx"

	"github.com/gin-gonic/gin"
)

type stubParser struct {
	p   entities.Principal
	err error
}

func (s stubParser) Parse(string) (entities.Principal, error) { return s.p, s.err }

func newAuthRouter(parser TokenParser) *gin.Engine {
	r := gin.New()
	r.Use(NewAuthMiddleware(nil, parser).RequireAuth())
	r.GET("/whoami", func(c *gin.Context) {
		p, _ := reqctx.PrincipalFrom(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"client_id": p.ClientID, "bearer": reqctx.BearerFrom(c.Request.Context())})
	})
	return r
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		r := newAuthRouter(stubParser{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		r := newAuthRouter(stubParser{err: errors.New("expired")})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		r := newAuthRouter(stubParser{p: entities.Principal{ClientID: 42}})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "bearer abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"bearer":"abc","client_id":42}` {
			t.Fatalf("unexpected body %s", body)
		}
	})
}
