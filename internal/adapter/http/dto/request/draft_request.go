package request

import (
	"strings"

	"smartorders/internal/domain/entities"
)

// AddDeviceRequest adds a device to the caller's draft. Quantity defaults to 1.
type AddDeviceRequest struct {
	DeviceID int64 `json:"device_id" binding:"required"`
	Quantity *int  `json:"quantity"`
}

func (r AddDeviceRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// SetQuantityRequest sets a line quantity. Zero or less removes the line.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type ServiceRequest struct {
	ID    int64   `json:"id" binding:"required"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (r ServiceRequest) ToEntity() entities.ServiceLine {
	return entities.ServiceLine{ID: r.ID, Name: strings.TrimSpace(r.Name), Price: r.Price}
}

type SubmitDraftRequest struct {
	Address string `json:"address" binding:"required"`
}
