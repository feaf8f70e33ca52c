package main

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"QuantumStore/internal/checkout"
	"QuantumStore/internal/order"
	"QuantumStore/internal/shipping"
)

func TestRunScenario(t *testing.T) {
	var out, errOut bytes.Buffer
	orders := order.NewMemStore()
	svc := &checkout.Service{
		Shipping: shipping.NewService(shipping.DefaultRatePerKg, &out, nil),
		Orders:   orders,
		Out:      &out,
	}
	jane := checkout.NewCustomer("Jane", decimal.NewFromInt(10000))

	run(&out, &errOut, svc, jane, zap.NewNop())

	transcript := out.String()
	for _, want := range []string{
		"Shipping Service Noticed",
		"2x Cheese 400g",
		"1x TV 8000g",
		"Total package weight 9.1kg",
		"Shipment package fees 91.0LE",
		"1x Scratch Card 10LE",
		"Subtotal 3035",
		"Shipping 91",
		"Amount 3126",
		"Balance left 6874",
	} {
		assert.Contains(t, transcript, want)
	}
	assert.NotContains(t, transcript, "Milk")

	failures := errOut.String()
	assert.Contains(t, failures, "Could not add Milk: invalid operation: item is not available")
	assert.Contains(t, failures, "Checkout failed: invalid operation: customer hasn't enough balance")

	assert.True(t, jane.Balance().Equal(decimal.NewFromInt(6874)))
	list, _ := orders.List()
	assert.Len(t, list, 1)
}
