// Package cart holds the customer's transient shopping cart. Lines are
// unique by product id and kept in insertion order.
package cart

import "food-delivery-client/models"

type Line struct {
	Product  models.Product
	Quantity int
}

func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add increments the line for p, appending a quantity-1 line if p is new
func (c *Cart) Add(p models.Product) {
	if i := c.index(p.ID.String()); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// SetQuantity updates the line for productKey. A quantity of zero or less
// removes the line. Unknown keys are ignored.
func (c *Cart) SetQuantity(productKey string, qty int) {
	i := c.index(productKey)
	if i < 0 {
		return
	}
	if qty <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity = qty
}

func (c *Cart) Find(productKey string) (Line, bool) {
	if i := c.index(productKey); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// Lines returns a copy of the current lines
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Total is recomputed from the lines on every call
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Cart) Clear() {
	c.lines = nil
}

// OrderLines converts the cart into create-order item pairs
func (c *Cart) OrderLines() []models.OrderLineRequest {
	out := make([]models.OrderLineRequest, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, models.OrderLineRequest{ProductID: l.Product.ID, Quantity: l.Quantity})
	}
	return out
}

func (c *Cart) index(productKey string) int {
	for i, l := range c.lines {
		if l.Product.ID.String() == productKey {
			return i
		}
	}
	return -1
}
