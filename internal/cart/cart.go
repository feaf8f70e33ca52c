package cart

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"QuantumStore/internal/catalog"
)

type Line struct {
	Item     *catalog.Item
	Quantity int
}

func (l Line) Total() decimal.Decimal {
	return l.Item.LineTotal(l.Quantity)
}

func (l Line) Weight() decimal.Decimal {
	return l.Item.LineWeight(l.Quantity)
}

// Cart takes stock out of the item as soon as a line is added; removing a
// line does not put it back.
type Cart struct {
	lines []Line
	now   func() time.Time
}

func New() *Cart {
	return &Cart{now: time.Now}
}

// NewWithClock is New with an injected clock for expiry checks.
func NewWithClock(now func() time.Time) *Cart {
	return &Cart{now: now}
}

func (c *Cart) Add(it *catalog.Item, qty int) error {
	if err := catalog.Validate(it); err != nil {
		return err
	}
	if qty <= 0 {
		return fmt.Errorf("%w: %d", catalog.ErrInvalidQuantity, qty)
	}
	if !it.IsAvailable(c.now()) {
		return fmt.Errorf("%w: %s", catalog.ErrUnavailable, it.Title)
	}
	if err := it.ReduceQuantity(qty); err != nil {
		return err
	}

	c.lines = append(c.lines, Line{Item: it, Quantity: qty})
	return nil
}

func (c *Cart) Remove(id string) {
	n := 0
	for _, l := range c.lines {
		if l.Item.ID != id {
			c.lines[n] = l
			n++
		}
	}
	c.lines = c.lines[:n]
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

// ShippingWeight is the total kilograms of shippable lines.
func (c *Cart) ShippingWeight() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Weight())
	}
	return sum
}

func (c *Cart) ShippingFee(ratePerKg decimal.Decimal) decimal.Decimal {
	return c.ShippingWeight().Mul(ratePerKg)
}

func (c *Cart) Clear() {
	c.lines = nil
}
