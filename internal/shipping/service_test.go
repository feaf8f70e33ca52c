package shipping

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantumStore/internal/cart"
	"QuantumStore/internal/catalog"
)

func kg(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProcess_PrintsNotice(t *testing.T) {
	var out bytes.Buffer
	s := NewService(DefaultRatePerKg, &out, nil)

	fee, err := s.Process([]Parcel{
		{Name: "Cheese", Quantity: 2, Weight: decimal.RequireFromString("0.4")},
		{Name: "Biscuits", Quantity: 1, Weight: decimal.RequireFromString("0.7")},
	})
	require.NoError(t, err)
	assert.True(t, fee.Equal(decimal.NewFromInt(11)))

	want := "Shipping Service Noticed\n" +
		"2x Cheese 400g\n" +
		"1x Biscuits 700g\n" +
		"Total package weight 1.1kg\n" +
		"Shipment package fees 11.0LE\n\n"
	assert.Equal(t, want, out.String())
}

func TestProcess_NoParcels(t *testing.T) {
	var out bytes.Buffer
	s := NewService(DefaultRatePerKg, &out, nil)

	_, err := s.Process(nil)
	require.ErrorIs(t, err, catalog.ErrNoShippableItems)
	assert.ErrorIs(t, err, catalog.ErrInvalidOperation)
	assert.Empty(t, out.String())
}

func TestFeeUsesRate(t *testing.T) {
	s := NewService(decimal.NewFromInt(25), nil, nil)
	assert.True(t, s.Fee(decimal.RequireFromString("2.5")).Equal(decimal.RequireFromString("62.5")))
}

func TestParcelsSkipsUnshippable(t *testing.T) {
	c := cart.New()
	tv := catalog.NewProduct("TV", 5, decimal.NewFromInt(3000), time.Time{}, kg("8"))
	card := catalog.NewProduct("Scratch Card", 5, decimal.NewFromInt(10), time.Time{}, nil)
	require.NoError(t, c.Add(tv, 2))
	require.NoError(t, c.Add(card, 1))

	parcels := Parcels(c.Lines())
	require.Len(t, parcels, 1)
	assert.Equal(t, "TV", parcels[0].Name)
	assert.Equal(t, 2, parcels[0].Quantity)
	assert.True(t, parcels[0].Weight.Equal(decimal.NewFromInt(16)))
}
