package middleware

import (
	"net/http"
	"strings"

	"smartorders/internal/domain/entities"
	"smartorders/pkg"
	"smartorders/pkg/logger"
	"smartorders/pkg/reqctx"

	"github.com/gin-gonic/gin"
)

// TokenParser turns a bearer token into the caller it was issued for.
type TokenParser interface {
	Parse(token string) (entities.Principal, error)
}

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)

type AuthMiddleware struct {
	log    *logger.Logger
	tokens TokenParser
}

func NewAuthMiddleware(log *logger.Logger, tokens TokenParser) *AuthMiddleware {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthMiddleware{log: log.With("middleware", "AuthMiddleware"), tokens: tokens}
}

// RequireAuth rejects requests without a valid bearer token. On success the
// principal and the raw token are stored in the request context.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		p, err := am.tokens.Parse(token)
		if err != nil {
			am.log.Debug("[auth][middleware] token rejected", "path", c.FullPath(), "err", err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		ctx := reqctx.WithPrincipal(c.Request.Context(), p)
		ctx = reqctx.WithBearer(ctx, token)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
