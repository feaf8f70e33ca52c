package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"QuantumStore/internal/catalog"
)

type Customer struct {
	Name    string
	balance decimal.Decimal
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{Name: name, balance: balance}
}

func (c *Customer) Balance() decimal.Decimal {
	return c.balance
}

func (c *Customer) CanAfford(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(c.balance)
}

// Deduct never takes the balance below zero.
func (c *Customer) Deduct(amount decimal.Decimal) error {
	if !c.CanAfford(amount) {
		return fmt.Errorf("%w: %s has %s, needs %s", catalog.ErrInsufficientBalance, c.Name, c.balance, amount)
	}
	c.balance = c.balance.Sub(amount)
	return nil
}
