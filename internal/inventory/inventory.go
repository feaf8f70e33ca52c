package inventory

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"QuantumStore/internal/catalog"
	"QuantumStore/internal/delivery"
	"QuantumStore/internal/order"
	"QuantumStore/pkg/kit"
)

type Deps struct {
	Store    Store
	Orders   order.Store
	Notifier *delivery.Notifier
	Out      io.Writer
	Log      *zap.Logger
	Metrics  *kit.Metrics
	Now      func() time.Time
}

// Inventory is the book store's stock and sales ledger.
type Inventory struct {
	store    Store
	orders   order.Store
	notifier *delivery.Notifier
	out      io.Writer
	log      *zap.Logger
	metrics  *kit.Metrics
	now      func() time.Time
	revenue  decimal.Decimal
}

func New(deps Deps) *Inventory {
	inv := &Inventory{
		store:    deps.Store,
		orders:   deps.Orders,
		notifier: deps.Notifier,
		out:      deps.Out,
		log:      kit.OrNop(deps.Log),
		metrics:  deps.Metrics,
		now:      deps.Now,
	}
	if inv.store == nil {
		inv.store = NewMemStore()
	}
	if inv.orders == nil {
		inv.orders = order.NewMemStore()
	}
	if inv.out == nil {
		inv.out = io.Discard
	}
	if inv.notifier == nil {
		inv.notifier = delivery.NewNotifier(inv.out, inv.log)
	}
	if inv.now == nil {
		inv.now = time.Now
	}
	return inv
}

// Add stores the item under its ID, replacing any previous entry.
func (inv *Inventory) Add(it *catalog.Item) error {
	if err := inv.addable(it); err != nil {
		inv.metrics.Reject(kit.FlowAdd, catalog.Reason(err))
		inv.log.Warn("add rejected", zap.Error(err))
		return err
	}

	inv.store.Put(it)
	inv.log.Info("item added", zap.String("item_id", it.ID), zap.Int("quantity", it.Quantity))
	return nil
}

func (inv *Inventory) addable(it *catalog.Item) error {
	if err := catalog.Validate(it); err != nil {
		return err
	}
	if !it.IsAvailable(inv.now()) {
		return fmt.Errorf("%w: %s is not available for addition", catalog.ErrUnavailable, it.ID)
	}
	return nil
}

func (inv *Inventory) Get(id string) (*catalog.Item, bool) {
	return inv.store.Get(id)
}

func (inv *Inventory) Items() []*catalog.Item {
	return inv.store.List()
}

func (inv *Inventory) Remove(id string) {
	inv.store.Delete(id)
}

// Purchase sells qty units of an item and returns what the buyer owes.
// Nothing changes when it fails.
func (inv *Inventory) Purchase(id string, qty int, to delivery.Target) (decimal.Decimal, error) {
	it, err := inv.purchasable(id, qty)
	if err != nil {
		inv.metrics.Reject(kit.FlowPurchase, catalog.Reason(err))
		inv.log.Warn("purchase rejected", zap.String("item_id", id), zap.Int("qty", qty), zap.Error(err))
		return decimal.Zero, err
	}

	if err := it.ReduceQuantity(qty); err != nil {
		return decimal.Zero, err
	}
	inv.notifier.Deliver(it, to)

	amount := it.LineTotal(qty)
	inv.revenue = inv.revenue.Add(amount)

	o := order.Order{
		ID:        order.NewID(),
		Items:     []order.Item{{ItemID: it.ID, Title: it.Title, Qty: qty, Total: amount}},
		Subtotal:  amount,
		Shipping:  decimal.Zero,
		Total:     amount,
		Status:    order.StatusSold,
		CreatedAt: inv.now().UTC(),
	}
	if err := inv.orders.Create(o); err != nil {
		inv.log.Error("record sale failed", zap.Error(err), zap.String("order_id", o.ID))
	}

	inv.metrics.Sold(kit.FlowPurchase, string(it.Kind), qty)
	inv.metrics.Collected(kit.FlowPurchase, amount)
	inv.log.Info("purchase",
		zap.String("order_id", o.ID),
		zap.String("item_id", it.ID),
		zap.Int("qty", qty),
		zap.String("amount", amount.String()),
	)
	return amount, nil
}

func (inv *Inventory) purchasable(id string, qty int) (*catalog.Item, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: %d", catalog.ErrInvalidQuantity, qty)
	}

	it, ok := inv.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownItem, id)
	}
	if !it.IsAvailable(inv.now()) {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnavailable, id)
	}
	if it.Quantity < qty {
		return nil, fmt.Errorf("%w: %s has %d, want %d", catalog.ErrInsufficientStock, id, it.Quantity, qty)
	}
	return it, nil
}

// RemoveExpired drops the first item, in insertion order, whose reference
// date plus years is already past. Items without a reference date never
// expire this way.
func (inv *Inventory) RemoveExpired(years int) (*catalog.Item, bool) {
	now := inv.now()

	for _, it := range inv.store.List() {
		ref := it.ReferenceDate()
		if ref.IsZero() || !ref.AddDate(years, 0, 0).Before(now) {
			continue
		}

		fmt.Fprintf(inv.out, "Quantum book store: Book expired - %s\n", it.Title)
		inv.store.Delete(it.ID)
		inv.log.Info("expired item removed",
			zap.String("item_id", it.ID),
			zap.Time("reference_date", ref),
			zap.Int("threshold_years", years),
		)
		return it, true
	}
	return nil, false
}

// Revenue is the total collected by successful purchases.
func (inv *Inventory) Revenue() decimal.Decimal {
	return inv.revenue
}

func (inv *Inventory) Orders() order.Store {
	return inv.orders
}
