package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"smartorders/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeviceArg(t *testing.T) {
	id, qty, err := parseDeviceArg("4")
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	assert.Equal(t, 1, qty)

	id, qty, err = parseDeviceArg(" 2:3 ")
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
	assert.Equal(t, 3, qty)

	for _, bad := range []string{"", "x", "0", "2:0", "2:x"} {
		_, _, err := parseDeviceArg(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseServiceArg(t *testing.T) {
	s, err := parseServiceArg("3:Монтаж под ключ:150.5")
	require.NoError(t, err)
	assert.Equal(t, entities.ServiceLine{ID: 3, Name: "Монтаж под ключ", Price: 150.5}, s)

	for _, bad := range []string{"3", "3:x", "x:y:1", "3:y:-1", "3:y:z"} {
		_, err := parseServiceArg(bad)
		assert.Error(t, err, bad)
	}
}

func TestPrintOrders_UsesStatusLabels(t *testing.T) {
	var buf bytes.Buffer
	printOrders(&buf, []entities.RemoteOrder{
		{ID: 1, Status: entities.OrderStatusFormed, Address: "Москва", CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{ID: 2, Status: "archived"},
	})
	out := buf.String()
	assert.Contains(t, out, "Сформирована")
	assert.Contains(t, out, "archived")
	assert.Equal(t, 3, strings.Count(out, "\n"))

	buf.Reset()
	printOrders(&buf, nil)
	assert.Equal(t, "no orders\n", buf.String())
}
