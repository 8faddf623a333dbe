package cart

import (
	"testing"

	"food-delivery-client/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pizza = models.Product{ID: models.NumericID(1), Name: "Pizza", Price: 12.5}
	soda  = models.Product{ID: models.NumericID(2), Name: "Soda", Price: 2}
)

func TestCart_AddSameProductTwice(t *testing.T) {
	c := New()
	c.Add(pizza)
	c.Add(pizza)

	require.Equal(t, 1, c.Len())
	line, ok := c.Find("1")
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
}

func TestCart_AddKeepsInsertionOrder(t *testing.T) {
	c := New()
	c.Add(soda)
	c.Add(pizza)
	c.Add(soda)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Soda", lines[0].Product.Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Pizza", lines[1].Product.Name)
}

func TestCart_SetQuantity(t *testing.T) {
	c := New()
	c.Add(pizza)
	c.Add(soda)

	c.SetQuantity("1", 4)
	line, _ := c.Find("1")
	assert.Equal(t, 4, line.Quantity)

	c.SetQuantity("1", 0)
	_, ok := c.Find("1")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.SetQuantity("2", -3)
	assert.True(t, c.IsEmpty())

	c.SetQuantity("missing", 5)
	assert.True(t, c.IsEmpty())
}

func TestCart_TotalTracksLines(t *testing.T) {
	c := New()
	assert.Equal(t, 0.0, c.Total())

	c.Add(pizza)
	c.Add(pizza)
	c.Add(soda)
	assert.InDelta(t, 27.0, c.Total(), 1e-9)

	c.SetQuantity("1", 1)
	assert.InDelta(t, 14.5, c.Total(), 1e-9)

	var sum float64
	for _, l := range c.Lines() {
		sum += l.Subtotal()
	}
	assert.InDelta(t, sum, c.Total(), 1e-9)
}

func TestCart_LinesIsACopy(t *testing.T) {
	c := New()
	c.Add(pizza)
	lines := c.Lines()
	lines[0].Quantity = 99

	line, _ := c.Find("1")
	assert.Equal(t, 1, line.Quantity)
}

func TestCart_OrderLinesAndClear(t *testing.T) {
	c := New()
	c.Add(pizza)
	c.Add(soda)
	c.Add(soda)

	assert.Equal(t, []models.OrderLineRequest{
		{ProductID: pizza.ID, Quantity: 1},
		{ProductID: soda.ID, Quantity: 2},
	}, c.OrderLines())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.OrderLines())
}
