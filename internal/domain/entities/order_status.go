package entities

// OrderStatus is the server-authoritative lifecycle of an order.
//
//	draft -> formed -> completed | rejected
//	draft | formed -> deleted
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusFormed    OrderStatus = "formed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusDeleted   OrderStatus = "deleted"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusDraft:     "Черновик",
	OrderStatusFormed:    "Сформирована",
	OrderStatusCompleted: "Завершена",
	OrderStatusRejected:  "Отклонена",
	OrderStatusDeleted:   "Удалена",
}

// IsKnown reports whether s is one of the five canonical statuses.
func (s OrderStatus) IsKnown() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// Label returns the display label, or the raw value for unknown statuses.
func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func StatusLabel(s string) string {
	return OrderStatus(s).Label()
}
