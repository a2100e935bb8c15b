package interfaces

import (
	"context"
	"smartorders/internal/domain/entities"
)

//go:generate mockgen -source=order_gateway_interface.go -destination=mocks/order_gateway_interface_mock.go -package=mock_interfaces

// IOrderGateway is the remote order store as seen by the ordering core.
//
// The caller identity travels in ctx (see pkg/reqctx). SaveOrder with id 0
// creates a draft record for the caller; any other id patches that order.
// FormOrder moves a draft record to formed.
type IOrderGateway interface {
	ListOrders(ctx context.Context) ([]entities.RemoteOrder, error)
	SaveOrder(ctx context.Context, id int64, patch entities.OrderPatch) (entities.RemoteOrder, error)
	FormOrder(ctx context.Context, id int64) (entities.RemoteOrder, error)
	DeleteOrder(ctx context.Context, id int64) error
}
