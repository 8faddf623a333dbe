package statemachine

import (
	"testing"

	"food-delivery-client/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  any
		want models.OrderStatus
	}{
		{"Pending", models.StatusPending},
		{"PENDING", models.StatusPending},
		{" assigned ", models.StatusAssigned},
		{"picked_up", models.StatusAssigned},
		{"delivered", models.StatusDelivered},
		{float64(0), models.StatusPending},
		{float64(2), models.StatusDelivered},
		{float64(9), "9"},
		{"Cancelled", "Cancelled"},
		{nil, ""},
		{true, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.raw), "raw %v", tt.raw)
	}
}

func TestExpectedAfter(t *testing.T) {
	to, ok := ExpectedAfter(models.StatusPending, ActionAssign)
	assert.True(t, ok)
	assert.Equal(t, models.StatusAssigned, to)

	to, ok = ExpectedAfter(models.StatusAssigned, ActionDeliver)
	assert.True(t, ok)
	assert.Equal(t, models.StatusDelivered, to)

	_, ok = ExpectedAfter(models.StatusDelivered, ActionAssign)
	assert.False(t, ok)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Unknown", Label(""))
	assert.Equal(t, "Pending", Label(models.StatusPending))
}
