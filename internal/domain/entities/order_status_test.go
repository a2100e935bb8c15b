package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	cases := map[string]string{
		"draft":     "Черновик",
		"formed":    "Сформирована",
		"completed": "Завершена",
		"rejected":  "Отклонена",
		"deleted":   "Удалена",
	}
	for status, label := range cases {
		assert.True(t, OrderStatus(status).IsKnown(), status)
		assert.Equal(t, label, StatusLabel(status))
	}

	assert.False(t, OrderStatus("submitted").IsKnown())
	assert.Equal(t, "submitted", StatusLabel("submitted"))
	assert.Equal(t, "", StatusLabel(""))
}
