package entities

import "time"

// Device is a catalog entry. The ordering core only reads devices; moderators
// maintain the catalog.
//
// Storage model (DynamoDB):
//   - PK: id (number)
type Device struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Model       string    `json:"model"`
	Description string    `json:"description"`
	Protocol    string    `json:"protocol"`
	DataPerHour float64   `json:"data_per_hour"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// DeviceFilter narrows a catalog listing. Empty fields do not filter.
type DeviceFilter struct {
	Search   string
	Protocol string
}

// DeviceUpdate replaces the editable fields of a device. IsActive is left
// unchanged when nil.
type DeviceUpdate struct {
	Name        string
	Model       string
	Description string
	Protocol    string
	DataPerHour float64
	IsActive    *bool
}
