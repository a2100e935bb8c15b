package response

import (
	"time"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase"
)

type OrderItemResponse struct {
	DeviceID    int64   `json:"device_id"`
	DeviceName  string  `json:"device_name"`
	Quantity    int     `json:"quantity"`
	DataPerHour float64 `json:"data_per_hour"`
}

type ServiceResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderResponse is a persisted order. StatusLabel is the display label of
// Status; unknown statuses are echoed unchanged.
type OrderResponse struct {
	ID            int64               `json:"id"`
	Status        string              `json:"status"`
	StatusLabel   string              `json:"status_label"`
	Address       string              `json:"address"`
	TotalTraffic  float64             `json:"total_traffic"`
	ClientID      int64               `json:"client_id"`
	ClientName    string              `json:"client_name"`
	CreatedAt     time.Time           `json:"created_at"`
	FormedAt      *time.Time          `json:"formed_at,omitempty"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
	ModeratorID   *int64              `json:"moderator_id,omitempty"`
	ModeratorName string              `json:"moderator_name,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	Services      []ServiceResponse   `json:"services,omitempty"`
}

func FromOrder(o entities.RemoteOrder) OrderResponse {
	res := OrderResponse{
		ID:            o.ID,
		Status:        string(o.Status),
		StatusLabel:   o.Status.Label(),
		Address:       o.Address,
		TotalTraffic:  o.TotalTraffic,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		CreatedAt:     o.CreatedAt,
		FormedAt:      o.FormedAt,
		CompletedAt:   o.CompletedAt,
		ModeratorID:   o.ModeratorID,
		ModeratorName: o.ModeratorName,
		Items:         make([]OrderItemResponse, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		res.Items = append(res.Items, OrderItemResponse(it))
	}
	for _, s := range o.Services {
		res.Services = append(res.Services, ServiceResponse(s))
	}
	return res
}

func FromOrders(orders []entities.RemoteOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// OrdersStateResponse is the synchronized order list of a client together
// with the status of its requests.
type OrdersStateResponse struct {
	Orders   []OrderResponse   `json:"orders"`
	Loading  bool              `json:"loading"`
	Error    string            `json:"error,omitempty"`
	Requests map[string]string `json:"requests"`
	Version  uint64            `json:"version"`
}

func FromOrdersState(st usecase.OrdersState) OrdersStateResponse {
	res := OrdersStateResponse{
		Orders:   FromOrders(st.Orders),
		Loading:  st.Loading,
		Error:    st.Error,
		Requests: make(map[string]string, len(st.Requests)),
		Version:  st.Version,
	}
	for k, v := range st.Requests {
		res.Requests[string(k)] = string(v)
	}
	return res
}
