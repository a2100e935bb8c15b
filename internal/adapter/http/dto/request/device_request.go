package request

import (
	"strings"

	"smartorders/internal/domain/entities"
)

type DeviceFilterQuery struct {
	Search   string `form:"search"`
	Protocol string `form:"protocol"`
}

func (q DeviceFilterQuery) ToFilter() entities.DeviceFilter {
	return entities.DeviceFilter{Search: q.Search, Protocol: q.Protocol}
}

type CreateDeviceRequest struct {
	ID          int64   `json:"id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Model       string  `json:"model"`
	Description string  `json:"description"`
	Protocol    string  `json:"protocol"`
	DataPerHour float64 `json:"data_per_hour"`
	IsActive    *bool   `json:"is_active"`
}

// ToEntity builds the device. Devices are active unless is_active is false.
func (r CreateDeviceRequest) ToEntity() entities.Device {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return entities.Device{
		ID:          r.ID,
		Name:        strings.TrimSpace(r.Name),
		Model:       strings.TrimSpace(r.Model),
		Description: strings.TrimSpace(r.Description),
		Protocol:    strings.TrimSpace(r.Protocol),
		DataPerHour: r.DataPerHour,
		IsActive:    active,
	}
}

type UpdateDeviceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Model       string  `json:"model"`
	Description string  `json:"description"`
	Protocol    string  `json:"protocol"`
	DataPerHour float64 `json:"data_per_hour"`
	IsActive    *bool   `json:"is_active"`
}

func (r UpdateDeviceRequest) ToEntity() entities.DeviceUpdate {
	return entities.DeviceUpdate{
		Name:        strings.TrimSpace(r.Name),
		Model:       strings.TrimSpace(r.Model),
		Description: strings.TrimSpace(r.Description),
		Protocol:    strings.TrimSpace(r.Protocol),
		DataPerHour: r.DataPerHour,
		IsActive:    r.IsActive,
	}
}
