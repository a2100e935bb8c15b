package repository

import (
	"errors"
	"fmt"
	"testing"

	"smartorders/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestMatchesDeviceFilter(t *testing.T) {
	d := entities.Device{ID: 1, Name: "Хаб Zigbee", Protocol: "Zigbee", IsActive: true}

	cases := []struct {
		name   string
		device entities.Device
		filter entities.DeviceFilter
		want   bool
	}{
		{"no filter", d, entities.DeviceFilter{}, true},
		{"case-insensitive search", d, entities.DeviceFilter{Search: "хаб"}, true},
		{"search miss", d, entities.DeviceFilter{Search: "лампа"}, false},
		{"protocol", d, entities.DeviceFilter{Protocol: "zigbee"}, true},
		{"protocol miss", d, entities.DeviceFilter{Protocol: "Wi-Fi"}, false},
		{"inactive", entities.Device{ID: 2, Name: "Хаб"}, entities.DeviceFilter{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := matchesDeviceFilter(tc.device, tc.filter); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDeviceItemMapping(t *testing.T) {
	it := toDeviceItem(entities.Device{ID: 3, Name: "Датчик", DataPerHour: 0.1, IsActive: true})
	if it.DataPerHour != "0.1" {
		t.Fatalf("unexpected rate encoding %q", it.DataPerHour)
	}
	got := fromDeviceItem(it)
	if got.ID != 3 || got.DataPerHour != 0.1 || !got.IsActive {
		t.Fatalf("unexpected device: %+v", got)
	}
}

func TestIsConditionFailed(t *testing.T) {
	wrapped := fmt.Errorf("operation error DynamoDB: PutItem: %w", &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")})
	if !isConditionFailed(wrapped) {
		t.Fatalf("expected conditional failure to be recognised")
	}
	if isConditionFailed(errors.New("throttled")) || isConditionFailed(nil) {
		t.Fatalf("unexpected conditional failure match")
	}
}
