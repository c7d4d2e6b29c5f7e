package cart

import (
	"errors"

	"mvs/models"
	"mvs/shipping"
)

// MaxQuantity is the hard per-line cap, independent of stock.
const MaxQuantity = 50

// ErrInvalidQuantity rejects quantities outside [1,50]. The cart is
// left untouched when it is returned.
var ErrInvalidQuantity = errors.New("quantity must be between 1 and 50")

// Cart holds one session's lines keyed by product id. Insertion order
// is kept for display; totals do not depend on it. A cart has a single
// writer (the owning session), so it does no locking of its own.
type Cart struct {
	lines map[string]*models.CartLine
	order []string
}

func New() *Cart {
	return &Cart{lines: make(map[string]*models.CartLine)}
}

// clampQuantity applies the per-line cap and, when availableStock is
// non-negative, the stock cap as well.
func clampQuantity(q, availableStock int) int {
	if q > MaxQuantity {
		q = MaxQuantity
	}
	if availableStock >= 0 && q > availableStock {
		q = availableStock
	}
	return q
}

// AddItem inserts a line for the product, or bumps the quantity of an
// existing one. The resulting quantity is clamped to MaxQuantity and,
// if availableStock >= 0, to the stock count. Pass a negative stock to
// skip stock enforcement.
func (c *Cart) AddItem(p models.Product, quantity, availableStock int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if line, ok := c.lines[p.ProductID]; ok {
		line.Quantity = clampQuantity(line.Quantity+quantity, availableStock)
		return nil
	}

	q := clampQuantity(quantity, availableStock)
	if q < 1 {
		// out of stock, nothing to insert
		return ErrInvalidQuantity
	}
	c.lines[p.ProductID] = &models.CartLine{
		ProductID: p.ProductID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Weight:    p.Weight,
		Quantity:  q,
	}
	c.order = append(c.order, p.ProductID)
	return nil
}

// UpdateQuantity sets a line's quantity exactly. Quantities outside
// [1,50] are rejected without touching the cart. Updating an absent
// product id is a no-op. A non-negative availableStock additionally
// clamps the result to the stock count.
func (c *Cart) UpdateQuantity(productID string, quantity, availableStock int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	line, ok := c.lines[productID]
	if !ok {
		return nil
	}
	line.Quantity = clampQuantity(quantity, availableStock)
	return nil
}

// RemoveItem deletes a line. Removing an absent id is a no-op.
func (c *Cart) RemoveItem(productID string) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart. Called once an order has been assembled.
func (c *Cart) Clear() {
	c.lines = make(map[string]*models.CartLine)
	c.order = nil
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns copies of the cart lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Subtotal is the sum of price*quantity over all lines, in rupees.
func (c *Cart) Subtotal() int {
	total := 0
	for _, line := range c.lines {
		total += line.Price * line.Quantity
	}
	return total
}

// ItemCount is the sum of quantities, used for the cart badge.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Quote recomputes the shipping quote from the current lines. Never
// cached: it is a pure function of cart state.
func (c *Cart) Quote() shipping.Quote {
	lines := make([]shipping.Line, 0, len(c.order))
	for _, id := range c.order {
		l := c.lines[id]
		lines = append(lines, shipping.Line{Weight: l.Weight, Quantity: l.Quantity})
	}
	return shipping.Compute(lines)
}
