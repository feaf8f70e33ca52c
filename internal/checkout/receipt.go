package checkout

import (
	"bytes"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

const rule = "----------------------"

type ReceiptLine struct {
	Name     string
	Quantity int
	Total    decimal.Decimal
}

type Receipt struct {
	OrderID     string
	Customer    string
	Lines       []ReceiptLine
	Subtotal    decimal.Decimal
	Shipping    decimal.Decimal
	Total       decimal.Decimal
	BalanceLeft decimal.Decimal
}

func (r Receipt) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer

	fmt.Fprintln(&b, "** Checkout receipt **")
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "%dx %s %sLE\n", l.Quantity, l.Name, l.Total.StringFixed(0))
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Subtotal %s\n", r.Subtotal.StringFixed(0))
	fmt.Fprintf(&b, "Shipping %s\n", r.Shipping.StringFixed(0))
	fmt.Fprintf(&b, "Amount %s\n", r.Total.StringFixed(0))
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Balance left %s\n", r.BalanceLeft.StringFixed(0))
	fmt.Fprintln(&b, rule)

	return b.WriteTo(w)
}
