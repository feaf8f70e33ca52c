package shipping

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"QuantumStore/internal/cart"
	"QuantumStore/internal/catalog"
	"QuantumStore/pkg/kit"
)

var DefaultRatePerKg = decimal.NewFromInt(10)

var gramsPerKg = decimal.NewFromInt(1000)

// Parcel is one shippable line: Weight is for the whole quantity, in kg.
type Parcel struct {
	Name     string
	Quantity int
	Weight   decimal.Decimal
}

type Service struct {
	RatePerKg decimal.Decimal
	Out       io.Writer
	Log       *zap.Logger
}

func NewService(ratePerKg decimal.Decimal, out io.Writer, log *zap.Logger) *Service {
	if out == nil {
		out = io.Discard
	}
	return &Service{RatePerKg: ratePerKg, Out: out, Log: kit.OrNop(log)}
}

func (s *Service) Fee(weight decimal.Decimal) decimal.Decimal {
	return weight.Mul(s.RatePerKg)
}

func Parcels(lines []cart.Line) []Parcel {
	var out []Parcel
	for _, l := range lines {
		if !l.Item.IsShippable() {
			continue
		}
		out = append(out, Parcel{Name: l.Item.Title, Quantity: l.Quantity, Weight: l.Weight()})
	}
	return out
}

// Process prints the shipment notice and returns the fee charged for it.
func (s *Service) Process(parcels []Parcel) (decimal.Decimal, error) {
	if len(parcels) == 0 {
		return decimal.Zero, catalog.ErrNoShippableItems
	}

	fmt.Fprintln(s.Out, "Shipping Service Noticed")
	total := decimal.Zero
	for _, p := range parcels {
		fmt.Fprintf(s.Out, "%dx %s %sg\n", p.Quantity, p.Name, p.Weight.Mul(gramsPerKg).StringFixed(0))
		total = total.Add(p.Weight)
	}

	fee := s.Fee(total)
	fmt.Fprintf(s.Out, "Total package weight %skg\n", total.StringFixed(1))
	fmt.Fprintf(s.Out, "Shipment package fees %sLE\n", fee.StringFixed(1))
	fmt.Fprintln(s.Out)

	kit.OrNop(s.Log).Info("shipment processed",
		zap.Int("parcels", len(parcels)),
		zap.String("weight_kg", total.String()),
		zap.String("fee", fee.String()),
	)
	return fee, nil
}
