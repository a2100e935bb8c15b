package interfaces

import (
	"context"
	"smartorders/internal/domain/entities"
)

//go:generate mockgen -source=device_repository_interface.go -destination=mocks/device_repository_interface_mock.go -package=mock_interfaces

// IDeviceRepository abstracts the device catalog table.

type IDeviceRepository interface {
	List(ctx context.Context, filter entities.DeviceFilter) ([]entities.Device, error)
	GetByID(ctx context.Context, id int64) (entities.Device, error)
	Create(ctx context.Context, d entities.Device) (entities.Device, error)
	// Update overwrites an existing device. A zero Device means no row matched.
	Update(ctx context.Context, d entities.Device) (entities.Device, error)
	// Deactivate hides a device from listings. It reports whether a row matched.
	Deactivate(ctx context.Context, id int64) (bool, error)
}
