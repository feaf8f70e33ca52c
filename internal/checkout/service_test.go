package checkout

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantumStore/internal/cart"
	"QuantumStore/internal/catalog"
	"QuantumStore/internal/order"
	"QuantumStore/internal/shipping"
	"QuantumStore/pkg/kit"
)

var now = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func kg(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type fixture struct {
	svc     *Service
	out     *bytes.Buffer
	orders  *order.MemStore
	metrics *kit.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	var out bytes.Buffer
	orders := order.NewMemStore()
	m := kit.NewMetrics(prometheus.NewRegistry())
	return fixture{
		svc: &Service{
			Shipping: shipping.NewService(shipping.DefaultRatePerKg, &out, nil),
			Orders:   orders,
			Out:      &out,
			Metrics:  m,
			Now:      func() time.Time { return now },
		},
		out:     &out,
		orders:  orders,
		metrics: m,
	}
}

func groceries(t *testing.T) *cart.Cart {
	t.Helper()

	c := cart.NewWithClock(func() time.Time { return now })
	cheese := catalog.NewProduct("Cheese", 100, decimal.NewFromInt(10), now.AddDate(0, 0, 5), kg("0.2"))
	biscuits := catalog.NewProduct("Biscuits", 150, decimal.NewFromInt(5), now.AddDate(0, 0, 5), kg("0.7"))
	require.NoError(t, c.Add(cheese, 2))
	require.NoError(t, c.Add(biscuits, 1))
	return c
}

func TestCheckout_CheeseAndBiscuits(t *testing.T) {
	f := newFixture(t)
	c := groceries(t)
	cust := NewCustomer("Jane", decimal.NewFromInt(100))

	r, err := f.svc.Checkout(cust, c)
	require.NoError(t, err)

	assert.True(t, r.Subtotal.Equal(decimal.NewFromInt(25)))
	assert.True(t, r.Shipping.Equal(decimal.NewFromInt(11)))
	assert.True(t, r.Total.Equal(decimal.NewFromInt(36)))
	assert.True(t, r.Total.Equal(r.Subtotal.Add(r.Shipping)))
	assert.True(t, cust.Balance().Equal(decimal.NewFromInt(64)))
	assert.True(t, r.BalanceLeft.Equal(cust.Balance()))
	assert.True(t, c.IsEmpty())

	want := "Shipping Service Noticed\n" +
		"2x Cheese 400g\n" +
		"1x Biscuits 700g\n" +
		"Total package weight 1.1kg\n" +
		"Shipment package fees 11.0LE\n\n" +
		"** Checkout receipt **\n" +
		"2x Cheese 20LE\n" +
		"1x Biscuits 5LE\n" +
		"----------------------\n" +
		"Subtotal 25\n" +
		"Shipping 11\n" +
		"Amount 36\n" +
		"----------------------\n" +
		"Balance left 64\n" +
		"----------------------\n"
	assert.Equal(t, want, f.out.String())

	stored, ok, err := f.orders.Get(r.OrderID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, order.StatusCheckedOut, stored.Status)
	assert.Equal(t, "Jane", stored.Customer)
	require.Len(t, stored.Items, 2)

	assert.Equal(t, float64(3), testutil.ToFloat64(f.metrics.UnitsSold.WithLabelValues(kit.FlowCheckout, "product")))
	assert.Equal(t, float64(36), testutil.ToFloat64(f.metrics.Revenue.WithLabelValues(kit.FlowCheckout)))
}

func TestCheckout_NoShippableLinesSkipsShipping(t *testing.T) {
	f := newFixture(t)
	c := cart.NewWithClock(func() time.Time { return now })
	card := catalog.NewProduct("Scratch Card", 50, decimal.NewFromInt(10), time.Time{}, nil)
	require.NoError(t, c.Add(card, 2))

	r, err := f.svc.Checkout(NewCustomer("Jane", decimal.NewFromInt(20)), c)
	require.NoError(t, err)
	assert.True(t, r.Shipping.IsZero())
	assert.True(t, r.Total.Equal(decimal.NewFromInt(20)))
	assert.True(t, r.BalanceLeft.IsZero())
	assert.NotContains(t, f.out.String(), "Shipping Service Noticed")
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newFixture(t)
	cust := NewCustomer("Jane", decimal.NewFromInt(100))

	_, err := f.svc.Checkout(cust, cart.New())
	require.ErrorIs(t, err, catalog.ErrEmptyCart)
	assert.True(t, cust.Balance().Equal(decimal.NewFromInt(100)))
	assert.Empty(t, f.out.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.Rejected.WithLabelValues(kit.FlowCheckout, "empty_cart")))
}

func TestCheckout_InsufficientBalanceChangesNothing(t *testing.T) {
	f := newFixture(t)
	c := groceries(t)
	cust := NewCustomer("Jane", decimal.NewFromInt(35))

	_, err := f.svc.Checkout(cust, c)
	require.ErrorIs(t, err, catalog.ErrInsufficientBalance)
	assert.ErrorIs(t, err, catalog.ErrInvalidOperation)

	assert.True(t, cust.Balance().Equal(decimal.NewFromInt(35)))
	assert.Len(t, c.Lines(), 2)
	assert.Empty(t, f.out.String())

	orders, err := f.orders.List()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckout_ExactBalanceSucceeds(t *testing.T) {
	f := newFixture(t)
	cust := NewCustomer("Jane", decimal.NewFromInt(36))

	r, err := f.svc.Checkout(cust, groceries(t))
	require.NoError(t, err)
	assert.True(t, r.BalanceLeft.IsZero())
}

func TestQuote(t *testing.T) {
	f := newFixture(t)
	q := f.svc.Quote(groceries(t))

	assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(25)))
	assert.True(t, q.Shipping.Equal(decimal.NewFromInt(11)))
	assert.True(t, q.Total.Equal(decimal.NewFromInt(36)))
}

func TestCustomerDeduct(t *testing.T) {
	cust := NewCustomer("Jane", decimal.NewFromInt(10))

	require.ErrorIs(t, cust.Deduct(decimal.NewFromInt(11)), catalog.ErrInsufficientBalance)
	assert.True(t, cust.Balance().Equal(decimal.NewFromInt(10)))

	require.NoError(t, cust.Deduct(decimal.NewFromInt(4)))
	assert.True(t, cust.Balance().Equal(decimal.NewFromInt(6)))
}
