package interfaces

import (
	"context"
	"smartorders/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_interface_mock.go -package=mock_interfaces

// IOrderRepository abstracts DynamoDB persistence for RemoteOrder.
//
// GetByID returns a zero-value order (ID == 0) when nothing is stored.

type IOrderRepository interface {
	NextID(ctx context.Context) (int64, error)
	Put(ctx context.Context, o entities.RemoteOrder) (entities.RemoteOrder, error)
	GetByID(ctx context.Context, id int64) (entities.RemoteOrder, error)
	ListByClientID(ctx context.Context, clientID int64) ([]entities.RemoteOrder, error)
	ListAll(ctx context.Context) ([]entities.RemoteOrder, error)
}
