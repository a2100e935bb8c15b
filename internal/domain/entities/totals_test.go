package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	items := []LineItem{
		{DeviceID: 1, Quantity: 2, DataPerHour: 0.5},
		{DeviceID: 2, Quantity: 1, DataPerHour: 0.1},
	}

	traffic, total := ComputeTotals(items, nil)
	assert.Equal(t, 1.1, traffic)
	assert.Equal(t, 1.1, total)

	traffic, total = ComputeTotals(items, []ServiceLine{{ID: 1, Price: 100}, {ID: 2, Price: 0.2}})
	assert.Equal(t, 1.1, traffic)
	assert.Equal(t, 101.3, total)

	traffic, total = ComputeTotals(nil, nil)
	assert.Zero(t, traffic)
	assert.Zero(t, total)
}

func TestComputeTotals_NoAccumulatedRounding(t *testing.T) {
	items := make([]LineItem, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, LineItem{DeviceID: int64(i + 1), Quantity: 1, DataPerHour: 0.1})
	}
	traffic, _ := ComputeTotals(items, nil)
	assert.Equal(t, 1.0, traffic)
}

func TestOrderTraffic(t *testing.T) {
	assert.Equal(t, 3.5, OrderTraffic([]OrderItem{{Quantity: 3, DataPerHour: 1}, {Quantity: 1, DataPerHour: 0.5}}))
}

func TestDraftOrder_Helpers(t *testing.T) {
	d := &DraftOrder{Items: []LineItem{{DeviceID: 1, Quantity: 2}, {DeviceID: 2, Quantity: 3}}}
	assert.Equal(t, 5, d.ItemCount())
	assert.False(t, d.IsEmpty())

	c := d.Clone()
	c.Items[0].Quantity = 9
	assert.Equal(t, 2, d.Items[0].Quantity, "clone must not share backing arrays")

	assert.Nil(t, (*DraftOrder)(nil).Clone())
	assert.True(t, (&DraftOrder{}).IsEmpty())
	assert.Equal(t, []OrderItem{{DeviceID: 1, Quantity: 2}, {DeviceID: 2, Quantity: 3}}, d.OrderItems())
}
