package request

import (
	"errors"
	"testing"
	"time"

	"smartorders/internal/domain/entities"
)

func TestOrderFilterQuery_ToFilter(t *testing.T) {
	f, err := OrderFilterQuery{Status: " formed ", DateFrom: "2025-03-01", DateTo: "2025-03-05"}.ToFilter()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.Status != entities.OrderStatusFormed {
		t.Fatalf("unexpected status %q", f.Status)
	}
	if f.DateFrom == nil || !f.DateFrom.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date_from %v", f.DateFrom)
	}
	if f.DateTo == nil || f.DateTo.Day() != 5 {
		t.Fatalf("unexpected date_to %v", f.DateTo)
	}

	empty, err := OrderFilterQuery{}.ToFilter()
	if err != nil || empty.DateFrom != nil || empty.DateTo != nil || empty.Status != "" {
		t.Fatalf("expected empty filter, got %+v, %v", empty, err)
	}

	if _, err := (OrderFilterQuery{DateTo: "05.03.2025"}).ToFilter(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestOrderPatchRequest_ToPatch(t *testing.T) {
	p := OrderPatchRequest{Address: "  addr "}.ToPatch()
	if p.Address != "addr" || p.Items != nil || p.Services != nil {
		t.Fatalf("omitted lists must stay nil: %+v", p)
	}

	p = OrderPatchRequest{Items: []OrderItemRequest{}}.ToPatch()
	if p.Items == nil {
		t.Fatalf("explicit empty items must be kept")
	}
}

func TestAddDeviceRequest_ResolveQuantity(t *testing.T) {
	if q := (AddDeviceRequest{DeviceID: 1}).ResolveQuantity(); q != 1 {
		t.Fatalf("expected default 1, got %d", q)
	}
	three := 3
	if q := (AddDeviceRequest{DeviceID: 1, Quantity: &three}).ResolveQuantity(); q != 3 {
		t.Fatalf("expected 3, got %d", q)
	}
}
