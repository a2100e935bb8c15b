package response

import (
	"time"

	"smartorders/internal/domain/entities"
)

type DeviceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Model       string    `json:"model"`
	Description string    `json:"description"`
	Protocol    string    `json:"protocol"`
	DataPerHour float64   `json:"data_per_hour"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromDevice(d entities.Device) DeviceResponse {
	return DeviceResponse(d)
}

func FromDevices(devices []entities.Device) []DeviceResponse {
	out := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, FromDevice(d))
	}
	return out
}
