package interfaces

import (
	"context"
	"smartorders/internal/domain/entities"
)

//go:generate mockgen -source=draft_repository_interface.go -destination=mocks/draft_repository_interface_mock.go -package=mock_interfaces

// IDraftRepository keeps each client's in-progress draft between requests.
// Get returns nil when the client has no draft.
type IDraftRepository interface {
	Get(ctx context.Context, clientID int64) (*entities.DraftOrder, error)
	Save(ctx context.Context, d *entities.DraftOrder) error
	Delete(ctx context.Context, clientID int64) error
}
