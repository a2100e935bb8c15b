package response

import (
	"testing"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase"
)

func TestFromOrder_StatusLabel(t *testing.T) {
	cases := map[entities.OrderStatus]string{
		entities.OrderStatusDraft:     "Черновик",
		entities.OrderStatusFormed:    "Сформирована",
		entities.OrderStatusCompleted: "Завершена",
		entities.OrderStatusRejected:  "Отклонена",
		entities.OrderStatusDeleted:   "Удалена",
		"archived":                    "archived",
	}
	for status, label := range cases {
		res := FromOrder(entities.RemoteOrder{ID: 1, Status: status})
		if res.StatusLabel != label || res.Status != string(status) {
			t.Fatalf("status %q: unexpected %q/%q", status, res.Status, res.StatusLabel)
		}
		if res.Items == nil {
			t.Fatalf("items must render as an empty list")
		}
	}
}

func TestFromOrdersState(t *testing.T) {
	res := FromOrdersState(usecase.OrdersState{
		Orders:   []entities.RemoteOrder{{ID: 1, Status: entities.OrderStatusFormed}},
		Loading:  true,
		Error:    "fetchAll: boom",
		Requests: map[usecase.RequestKind]usecase.RequestStatus{usecase.RequestFetchAll: usecase.RequestPending},
		Version:  3,
	})
	if len(res.Orders) != 1 || !res.Loading || res.Error != "fetchAll: boom" || res.Version != 3 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Requests["fetchAll"] != "pending" {
		t.Fatalf("unexpected requests: %+v", res.Requests)
	}
}

func TestFromDraft(t *testing.T) {
	if FromDraft(nil) != nil {
		t.Fatalf("expected nil for no draft")
	}
	res := FromDraft(&entities.DraftOrder{
		ID:     "d1",
		Status: entities.OrderStatusDraft,
		Items:  []entities.LineItem{{DeviceID: 1, Quantity: 2}, {DeviceID: 2, Quantity: 3}},
	})
	if res.ItemCount != 5 || res.StatusLabel != "Черновик" || res.Services == nil {
		t.Fatalf("unexpected draft response: %+v", res)
	}
}
