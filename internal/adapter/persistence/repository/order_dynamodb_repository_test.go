package repository

import (
	"testing"
	"time"

	"smartorders/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestOrderItemMapping(t *testing.T) {
	formed := time.Date(2025, 3, 2, 10, 30, 0, 0, time.UTC)
	mod := int64(1)
	o := entities.RemoteOrder{
		ID:            10,
		Status:        entities.OrderStatusCompleted,
		Address:       "ул. Ленина, 1",
		TotalTraffic:  1.37,
		ClientID:      42,
		ClientName:    "ivan",
		CreatedAt:     formed.Add(-time.Hour),
		FormedAt:      &formed,
		CompletedAt:   &formed,
		ModeratorID:   &mod,
		ModeratorName: "admin",
		Items:         []entities.OrderItem{{DeviceID: 1, DeviceName: "Хаб", Quantity: 2, DataPerHour: 0.5}},
		Services:      []entities.ServiceLine{{ID: 3, Name: "Монтаж", Price: 150}},
	}

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["id"].(*types.AttributeValueMemberN); !ok {
		t.Fatalf("expected numeric id attribute, got %T", av["id"])
	}
	if _, ok := av["client_id"].(*types.AttributeValueMemberN); !ok {
		t.Fatalf("expected numeric client_id for the index, got %T", av["client_id"])
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromOrderItem(it)
	if got.TotalTraffic != 1.37 || got.Items[0].DataPerHour != 0.5 || got.Services[0].Price != 150 {
		t.Fatalf("numbers not preserved: %+v", got)
	}
	if got.FormedAt == nil || !got.FormedAt.Equal(formed) || got.ModeratorID == nil || *got.ModeratorID != 1 {
		t.Fatalf("optional fields not preserved: %+v", got)
	}
}

func TestOrderItemMapping_DraftOmitsOptionalFields(t *testing.T) {
	av, err := attributevalue.MarshalMap(toOrderItem(entities.RemoteOrder{ID: 5, Status: entities.OrderStatusDraft, ClientID: 42}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, k := range []string{"formed_at", "completed_at", "moderator_id", "services"} {
		if _, ok := av[k]; ok {
			t.Fatalf("expected %s to be omitted", k)
		}
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromOrderItem(it)
	if got.FormedAt != nil || got.CompletedAt != nil || got.ModeratorID != nil {
		t.Fatalf("expected nil optional fields: %+v", got)
	}
	if got.Items == nil {
		t.Fatalf("expected empty items slice")
	}
}

func TestOrderKey(t *testing.T) {
	k := orderKey(12)
	n, ok := k["id"].(*types.AttributeValueMemberN)
	if !ok || n.Value != "12" {
		t.Fatalf("unexpected key: %#v", k)
	}
}
