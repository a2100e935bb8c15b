package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase/interfaces"
)

var (
	ErrDeviceNotFound       = errors.New("device not found")
	ErrDeviceInactive       = errors.New("device is not active")
	ErrInvalidDeviceID      = errors.New("invalid device id")
	ErrInvalidDevicePayload = errors.New("invalid device payload")
	ErrDeviceAlreadyExists  = errors.New("device already exists")
)

// IDeviceUseCase exposes the read side of the device catalog. Writes are
// reserved for moderators.
type IDeviceUseCase interface {
	List(ctx context.Context, filter entities.DeviceFilter) ([]entities.Device, error)
	GetByID(ctx context.Context, id int64) (entities.Device, error)
	Create(ctx context.Context, p entities.Principal, d entities.Device) (entities.Device, error)
	Update(ctx context.Context, p entities.Principal, id int64, upd entities.DeviceUpdate) (entities.Device, error)
	Delete(ctx context.Context, p entities.Principal, id int64) error
}

type DeviceUseCase struct {
	repo interfaces.IDeviceRepository
}

var _ IDeviceUseCase = (*DeviceUseCase)(nil)

func NewDeviceUseCase(repo interfaces.IDeviceRepository) *DeviceUseCase {
	return &DeviceUseCase{repo: repo}
}

func (u *DeviceUseCase) List(ctx context.Context, filter entities.DeviceFilter) ([]entities.Device, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Protocol = strings.TrimSpace(filter.Protocol)
	return u.repo.List(ctx, filter)
}

func (u *DeviceUseCase) GetByID(ctx context.Context, id int64) (entities.Device, error) {
	if id <= 0 {
		return entities.Device{}, ErrInvalidDeviceID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Device{}, err
	}
	if d.ID == 0 {
		return entities.Device{}, ErrDeviceNotFound
	}
	return d, nil
}

func (u *DeviceUseCase) Create(ctx context.Context, p entities.Principal, d entities.Device) (entities.Device, error) {
	if !p.IsModerator {
		return entities.Device{}, ErrModeratorRequired
	}
	d.Name = strings.TrimSpace(d.Name)
	if d.ID <= 0 {
		return entities.Device{}, ErrInvalidDeviceID
	}
	if d.Name == "" || d.DataPerHour < 0 {
		return entities.Device{}, ErrInvalidDevicePayload
	}
	existing, err := u.repo.GetByID(ctx, d.ID)
	if err != nil {
		return entities.Device{}, err
	}
	if existing.ID != 0 {
		return entities.Device{}, ErrDeviceAlreadyExists
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return u.repo.Create(ctx, d)
}

// Update overwrites the editable fields of an existing device. ID and
// CreatedAt are kept from the stored row.
func (u *DeviceUseCase) Update(ctx context.Context, p entities.Principal, id int64, upd entities.DeviceUpdate) (entities.Device, error) {
	if !p.IsModerator {
		return entities.Device{}, ErrModeratorRequired
	}
	if id <= 0 {
		return entities.Device{}, ErrInvalidDeviceID
	}
	upd.Name = strings.TrimSpace(upd.Name)
	if upd.Name == "" || upd.DataPerHour < 0 {
		return entities.Device{}, ErrInvalidDevicePayload
	}
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Device{}, err
	}

	d.Name = upd.Name
	d.Model = upd.Model
	d.Description = upd.Description
	d.Protocol = upd.Protocol
	d.DataPerHour = upd.DataPerHour
	if upd.IsActive != nil {
		d.IsActive = *upd.IsActive
	}

	saved, err := u.repo.Update(ctx, d)
	if err != nil {
		return entities.Device{}, err
	}
	if saved.ID == 0 {
		return entities.Device{}, ErrDeviceNotFound
	}
	return saved, nil
}

// Delete deactivates a device. Deleting an inactive device succeeds.
func (u *DeviceUseCase) Delete(ctx context.Context, p entities.Principal, id int64) error {
	if !p.IsModerator {
		return ErrModeratorRequired
	}
	if id <= 0 {
		return ErrInvalidDeviceID
	}
	found, err := u.repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrDeviceNotFound
	}
	return nil
}
