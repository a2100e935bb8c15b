package entities

import "time"

// LineItem is one device entry of a draft. Name and rate are snapshots taken
// when the device was added, so the line still renders if the catalog changes.
type LineItem struct {
	DeviceID    int64   `json:"device_id"`
	DeviceName  string  `json:"device_name"`
	Quantity    int     `json:"quantity"`
	DataPerHour float64 `json:"data_per_hour"`
}

// ServiceLine is a flat-priced add-on.
type ServiceLine struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// DraftOrder is the client-only order being composed. It is never persisted
// by the order service until submission, so ID is a placeholder.
//
// TotalTraffic and Total are derived from Items and Services; see ComputeTotals.
type DraftOrder struct {
	ID           string        `json:"id"`
	Status       OrderStatus   `json:"status"`
	ClientID     int64         `json:"client_id"`
	Items        []LineItem    `json:"items"`
	Services     []ServiceLine `json:"services"`
	TotalTraffic float64       `json:"total_traffic"`
	Total        float64       `json:"total"`
	CreatedAt    time.Time     `json:"created_at"`
}

// ItemCount is the sum of quantities over all line items.
func (d *DraftOrder) ItemCount() int {
	n := 0
	for _, it := range d.Items {
		n += it.Quantity
	}
	return n
}

// IsEmpty reports whether the draft holds neither devices nor services.
func (d *DraftOrder) IsEmpty() bool {
	return len(d.Items) == 0 && len(d.Services) == 0
}

// Clone returns a deep copy.
func (d *DraftOrder) Clone() *DraftOrder {
	if d == nil {
		return nil
	}
	out := *d
	out.Items = append([]LineItem(nil), d.Items...)
	out.Services = append([]ServiceLine(nil), d.Services...)
	return &out
}

// OrderItems converts the draft lines into the wire representation.
func (d *DraftOrder) OrderItems() []OrderItem {
	out := make([]OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		out = append(out, OrderItem(it))
	}
	return out
}
