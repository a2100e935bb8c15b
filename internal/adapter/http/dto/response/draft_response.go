package response

import (
	"time"

	"smartorders/internal/domain/entities"
)

type LineItemResponse struct {
	DeviceID    int64   `json:"device_id"`
	DeviceName  string  `json:"device_name"`
	Quantity    int     `json:"quantity"`
	DataPerHour float64 `json:"data_per_hour"`
}

type DraftResponse struct {
	ID           string             `json:"id"`
	Status       string             `json:"status"`
	StatusLabel  string             `json:"status_label"`
	ClientID     int64              `json:"client_id"`
	Items        []LineItemResponse `json:"items"`
	Services     []ServiceResponse  `json:"services"`
	ItemCount    int                `json:"item_count"`
	TotalTraffic float64            `json:"total_traffic"`
	Total        float64            `json:"total"`
	CreatedAt    time.Time          `json:"created_at"`
}

// FromDraft returns nil for a nil draft so the handler can render "no draft".
func FromDraft(d *entities.DraftOrder) *DraftResponse {
	if d == nil {
		return nil
	}
	res := &DraftResponse{
		ID:           d.ID,
		Status:       string(d.Status),
		StatusLabel:  d.Status.Label(),
		ClientID:     d.ClientID,
		Items:        make([]LineItemResponse, 0, len(d.Items)),
		Services:     make([]ServiceResponse, 0, len(d.Services)),
		ItemCount:    d.ItemCount(),
		TotalTraffic: d.TotalTraffic,
		Total:        d.Total,
		CreatedAt:    d.CreatedAt,
	}
	for _, it := range d.Items {
		res.Items = append(res.Items, LineItemResponse(it))
	}
	for _, s := range d.Services {
		res.Services = append(res.Services, ServiceResponse(s))
	}
	return res
}
