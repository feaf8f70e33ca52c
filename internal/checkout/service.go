package checkout

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"QuantumStore/internal/cart"
	"QuantumStore/internal/catalog"
	"QuantumStore/internal/order"
	"QuantumStore/internal/shipping"
	"QuantumStore/pkg/kit"
)

// Service needs Shipping; the other fields are optional.
type Service struct {
	Shipping *shipping.Service
	Orders   order.Store
	Out      io.Writer
	Log      *zap.Logger
	Metrics  *kit.Metrics
	Now      func() time.Time
}

// Quote is what a checkout of the cart would charge right now.
type Quote struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

func (s *Service) Quote(c *cart.Cart) Quote {
	sub := c.Subtotal()
	fee := s.Shipping.Fee(c.ShippingWeight())
	return Quote{Subtotal: sub, Shipping: fee, Total: sub.Add(fee)}
}

// Checkout charges the customer for the whole cart, prints the shipping
// notice and receipt, and empties the cart. On error neither the balance nor
// the cart is touched.
func (s *Service) Checkout(cust *Customer, c *cart.Cart) (Receipt, error) {
	log := kit.OrNop(s.Log)

	if c.IsEmpty() {
		s.Metrics.Reject(kit.FlowCheckout, catalog.Reason(catalog.ErrEmptyCart))
		return Receipt{}, catalog.ErrEmptyCart
	}

	q := s.Quote(c)
	if !cust.CanAfford(q.Total) {
		err := fmt.Errorf("%w: %s has %s, needs %s", catalog.ErrInsufficientBalance, cust.Name, cust.Balance(), q.Total)
		s.Metrics.Reject(kit.FlowCheckout, catalog.Reason(err))
		log.Warn("checkout rejected",
			zap.String("customer", cust.Name),
			zap.String("total", q.Total.String()),
			zap.String("balance", cust.Balance().String()),
		)
		return Receipt{}, err
	}

	lines := c.Lines()
	if parcels := shipping.Parcels(lines); len(parcels) > 0 {
		if _, err := s.Shipping.Process(parcels); err != nil {
			return Receipt{}, err
		}
	}

	if err := cust.Deduct(q.Total); err != nil {
		return Receipt{}, err
	}

	r := Receipt{
		OrderID:     order.NewID(),
		Customer:    cust.Name,
		Lines:       make([]ReceiptLine, 0, len(lines)),
		Subtotal:    q.Subtotal,
		Shipping:    q.Shipping,
		Total:       q.Total,
		BalanceLeft: cust.Balance(),
	}
	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		r.Lines = append(r.Lines, ReceiptLine{Name: l.Item.Title, Quantity: l.Quantity, Total: l.Total()})
		items = append(items, order.Item{ItemID: l.Item.ID, Title: l.Item.Title, Qty: l.Quantity, Total: l.Total()})
		s.Metrics.Sold(kit.FlowCheckout, string(l.Item.Kind), l.Quantity)
	}

	if s.Orders != nil {
		err := s.Orders.Create(order.Order{
			ID:        r.OrderID,
			Customer:  cust.Name,
			Items:     items,
			Subtotal:  q.Subtotal,
			Shipping:  q.Shipping,
			Total:     q.Total,
			Status:    order.StatusCheckedOut,
			CreatedAt: s.now().UTC(),
		})
		if err != nil {
			log.Error("record order failed", zap.Error(err), zap.String("order_id", r.OrderID))
		}
	}

	if s.Out != nil {
		if _, err := r.WriteTo(s.Out); err != nil {
			log.Warn("print receipt failed", zap.Error(err))
		}
	}
	c.Clear()

	s.Metrics.Collected(kit.FlowCheckout, q.Total)
	s.Metrics.CheckedOut(q.Total)
	log.Info("checkout complete",
		zap.String("order_id", r.OrderID),
		zap.String("customer", cust.Name),
		zap.String("total", q.Total.String()),
		zap.String("balance_left", r.BalanceLeft.String()),
	)
	return r, nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
