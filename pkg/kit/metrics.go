package kit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const (
	labelFlow   = "flow"
	labelKind   = "kind"
	labelReason = "reason"

	FlowAdd      = "add"
	FlowPurchase = "purchase"
	FlowCheckout = "checkout"
)

type Metrics struct {
	UnitsSold *prometheus.CounterVec
	Revenue   *prometheus.CounterVec
	Rejected  *prometheus.CounterVec
	Checkouts prometheus.Histogram
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		UnitsSold: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_units_sold_total",
				Help: "Units taken out of stock by a sale",
			},
			[]string{labelFlow, labelKind},
		),
		Revenue: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_revenue_total",
				Help: "Money collected",
			},
			[]string{labelFlow},
		),
		Rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_rejected_operations_total",
				Help: "Operations refused by a business rule",
			},
			[]string{labelFlow, labelReason},
		),
		Checkouts: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "store_checkout_amount",
				Help:    "Checkout totals including shipping",
				Buckets: prometheus.ExponentialBuckets(10, 4, 6),
			},
		),
	}

	reg.MustRegister(m.UnitsSold, m.Revenue, m.Rejected, m.Checkouts)
	return m
}

// The methods below are no-ops on a nil *Metrics.

func (m *Metrics) Sold(flow, kind string, units int) {
	if m == nil {
		return
	}
	m.UnitsSold.WithLabelValues(flow, kind).Add(float64(units))
}

func (m *Metrics) Collected(flow string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.Revenue.WithLabelValues(flow).Add(amount.InexactFloat64())
}

func (m *Metrics) Reject(flow, reason string) {
	if m == nil {
		return
	}
	m.Rejected.WithLabelValues(flow, reason).Inc()
}

func (m *Metrics) CheckedOut(total decimal.Decimal) {
	if m == nil {
		return
	}
	m.Checkouts.Observe(total.InexactFloat64())
}
