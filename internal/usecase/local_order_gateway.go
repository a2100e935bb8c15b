package usecase

import (
	"context"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase/interfaces"
	"smartorders/pkg/reqctx"
)

// LocalOrderGateway serves the order gateway in-process from the order
// service use case, reading the caller from the context.
type LocalOrderGateway struct {
	svc IOrderServiceUseCase
}

var _ interfaces.IOrderGateway = (*LocalOrderGateway)(nil)

func NewLocalOrderGateway(svc IOrderServiceUseCase) *LocalOrderGateway {
	return &LocalOrderGateway{svc: svc}
}

func (g *LocalOrderGateway) ListOrders(ctx context.Context) ([]entities.RemoteOrder, error) {
	p, ok := reqctx.PrincipalFrom(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	return g.svc.ListOrders(ctx, p, entities.OrderFilter{})
}

func (g *LocalOrderGateway) SaveOrder(ctx context.Context, id int64, patch entities.OrderPatch) (entities.RemoteOrder, error) {
	p, ok := reqctx.PrincipalFrom(ctx)
	if !ok {
		return entities.RemoteOrder{}, ErrUnauthenticated
	}
	return g.svc.SaveOrder(ctx, p, id, patch)
}

func (g *LocalOrderGateway) FormOrder(ctx context.Context, id int64) (entities.RemoteOrder, error) {
	p, ok := reqctx.PrincipalFrom(ctx)
	if !ok {
		return entities.RemoteOrder{}, ErrUnauthenticated
	}
	return g.svc.FormOrder(ctx, p, id)
}

func (g *LocalOrderGateway) DeleteOrder(ctx context.Context, id int64) error {
	p, ok := reqctx.PrincipalFrom(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	return g.svc.DeleteOrder(ctx, p, id)
}
