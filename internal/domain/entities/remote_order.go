package entities

import "time"

// OrderItem is an item summary of a persisted order.
type OrderItem struct {
	DeviceID    int64   `json:"device_id"`
	DeviceName  string  `json:"device_name"`
	Quantity    int     `json:"quantity"`
	DataPerHour float64 `json:"data_per_hour"`
}

// RemoteOrder is an order persisted by the order service. Its status is only
// ever changed by server responses.
//
// Storage model (DynamoDB):
//   - PK: id (number); id 0 is reserved for the id counter
type RemoteOrder struct {
	ID            int64         `json:"id"`
	Status        OrderStatus   `json:"status"`
	Address       string        `json:"address"`
	TotalTraffic  float64       `json:"total_traffic"`
	ClientID      int64         `json:"client_id"`
	ClientName    string        `json:"client_name"`
	CreatedAt     time.Time     `json:"created_at"`
	FormedAt      *time.Time    `json:"formed_at,omitempty"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
	ModeratorID   *int64        `json:"moderator_id,omitempty"`
	ModeratorName string        `json:"moderator_name,omitempty"`
	Items         []OrderItem   `json:"items"`
	Services      []ServiceLine `json:"services,omitempty"`
}

// OrderPatch is the body of a create-or-update call. An empty Address leaves
// the stored address untouched; Items/Services are only applied to drafts.
type OrderPatch struct {
	Address  string        `json:"address"`
	Items    []OrderItem   `json:"items,omitempty"`
	Services []ServiceLine `json:"services,omitempty"`
}

// OrderFilter narrows an order listing. Date bounds apply to FormedAt and are
// inclusive calendar days.
type OrderFilter struct {
	Status   OrderStatus
	DateFrom *time.Time
	DateTo   *time.Time
}
