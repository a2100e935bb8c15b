// Package reqctx carries the authenticated caller and its raw bearer token
// through a request context.
package reqctx

import (
	"context"

	"smartorders/internal/domain/entities"
)

type principalKey struct{}
type bearerKey struct{}

func WithPrincipal(ctx context.Context, p entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the caller stored by WithPrincipal. ok is false when
// the context is anonymous.
func PrincipalFrom(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(entities.Principal)
	if !ok || p.ClientID == 0 {
		return entities.Principal{}, false
	}
	return p, true
}

func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

func BearerFrom(ctx context.Context) string {
	v, _ := ctx.Value(bearerKey{}).(string)
	return v
}
