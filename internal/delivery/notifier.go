package delivery

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"QuantumStore/internal/catalog"
	"QuantumStore/pkg/kit"
)

// Target holds where the buyer wants the goods. Only the field matching the
// item's delivery method is read.
type Target struct {
	Email   string
	Address string
}

type Notifier struct {
	Out io.Writer
	Log *zap.Logger
}

func NewNotifier(out io.Writer, log *zap.Logger) *Notifier {
	return &Notifier{Out: out, Log: kit.OrNop(log)}
}

// Deliver announces the hand-off and returns the method used.
func (n *Notifier) Deliver(it *catalog.Item, to Target) catalog.DeliveryMethod {
	m := it.Delivery()

	switch m {
	case catalog.DeliverEmail:
		fmt.Fprintf(n.Out, "Delivering ebook to: %s\n", to.Email)
	case catalog.DeliverAddress:
		fmt.Fprintf(n.Out, "Delivering paper book to: %s\n", to.Address)
	default:
		return m
	}

	kit.OrNop(n.Log).Debug("delivery dispatched",
		zap.String("item_id", it.ID),
		zap.Stringer("method", m),
	)
	return m
}
