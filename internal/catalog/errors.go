package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is the single failure kind of the store. Every other
// error in this file wraps it.
var ErrInvalidOperation = errors.New("invalid operation")

var (
	ErrInsufficientStock   = invalid("not enough stock available")
	ErrInsufficientBalance = invalid("customer hasn't enough balance")
	ErrEmptyCart           = invalid("cart is empty")
	ErrUnavailable         = invalid("item is not available")
	ErrUnknownItem         = invalid("item not found")
	ErrNoShippableItems    = invalid("no items to ship")
	ErrInvalidItem         = invalid("invalid item")
	ErrInvalidQuantity     = invalid("quantity must be positive")
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, msg)
}

// Reason maps an error to a short label for metrics.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrUnknownItem):
		return "unknown_item"
	case errors.Is(err, ErrNoShippableItems):
		return "no_shippable_items"
	case errors.Is(err, ErrInvalidItem):
		return "invalid_item"
	case errors.Is(err, ErrInvalidQuantity):
		return "invalid_quantity"
	default:
		return "other"
	}
}
