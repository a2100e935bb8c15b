package request

import (
	"errors"
	"strings"
	"time"

	"smartorders/internal/domain/entities"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

type OrderItemRequest struct {
	DeviceID    int64   `json:"device_id" binding:"required"`
	DeviceName  string  `json:"device_name"`
	Quantity    int     `json:"quantity" binding:"required"`
	DataPerHour float64 `json:"data_per_hour"`
}

// OrderPatchRequest is the body of order save/update calls. Omitted items or
// services leave the stored ones untouched.
type OrderPatchRequest struct {
	Address  string             `json:"address"`
	Items    []OrderItemRequest `json:"items"`
	Services []ServiceRequest   `json:"services"`
}

func (r OrderPatchRequest) ToPatch() entities.OrderPatch {
	p := entities.OrderPatch{Address: strings.TrimSpace(r.Address)}
	if r.Items != nil {
		p.Items = make([]entities.OrderItem, 0, len(r.Items))
		for _, it := range r.Items {
			p.Items = append(p.Items, entities.OrderItem{
				DeviceID:    it.DeviceID,
				DeviceName:  strings.TrimSpace(it.DeviceName),
				Quantity:    it.Quantity,
				DataPerHour: it.DataPerHour,
			})
		}
	}
	if r.Services != nil {
		p.Services = make([]entities.ServiceLine, 0, len(r.Services))
		for _, s := range r.Services {
			p.Services = append(p.Services, s.ToEntity())
		}
	}
	return p
}

// OrderFilterQuery binds the order listing query string.
type OrderFilterQuery struct {
	Status   string `form:"status"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

func (q OrderFilterQuery) ToFilter() (entities.OrderFilter, error) {
	f := entities.OrderFilter{Status: entities.OrderStatus(strings.TrimSpace(q.Status))}
	var err error
	if f.DateFrom, err = parseDate(q.DateFrom); err != nil {
		return entities.OrderFilter{}, err
	}
	if f.DateTo, err = parseDate(q.DateTo); err != nil {
		return entities.OrderFilter{}, err
	}
	return f, nil
}

func parseDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
