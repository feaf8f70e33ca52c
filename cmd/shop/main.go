package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"QuantumStore/internal/cart"
	"QuantumStore/internal/catalog"
	"QuantumStore/internal/checkout"
	"QuantumStore/internal/order"
	"QuantumStore/internal/shipping"
	"QuantumStore/pkg/kit"
)

func main() {
	service := "shop"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	rate := kit.GetenvDecimal("SHIPPING_RATE_PER_KG", shipping.DefaultRatePerKg)
	balance := kit.GetenvDecimal("CUSTOMER_BALANCE", decimal.NewFromInt(10000))

	reg := prometheus.NewRegistry()
	svc := &checkout.Service{
		Shipping: shipping.NewService(rate, os.Stdout, log),
		Orders:   order.NewStore(),
		Out:      os.Stdout,
		Log:      log,
		Metrics:  kit.NewMetrics(reg),
	}

	run(os.Stdout, os.Stderr, svc, checkout.NewCustomer("Jane", balance), log)
	dumpOrders(svc.Orders, log)
	kit.LogMetrics(log, reg)
}

func dumpOrders(orders order.Store, log *zap.Logger) {
	if kit.Getenv("DUMP_ORDERS", "") == "" {
		return
	}
	if err := order.Dump(os.Stdout, orders); err != nil {
		log.Warn("dump orders failed", zap.Error(err))
	}
}

func run(out, errOut io.Writer, svc *checkout.Service, customer *checkout.Customer, log *zap.Logger) {
	now := time.Now()
	kg := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	cheese := catalog.NewProduct("Cheese", 100, decimal.NewFromInt(10), now.AddDate(0, 0, 10), kg("0.2"))
	biscuits := catalog.NewProduct("Biscuits", 150, decimal.NewFromInt(5), now.AddDate(0, 0, 6), kg("0.7"))
	tv := catalog.NewProduct("TV", 5000, decimal.NewFromInt(3000), time.Time{}, kg("8"))
	scratchCard := catalog.NewProduct("Scratch Card", 50, decimal.NewFromInt(10), time.Time{}, nil)
	oldMilk := catalog.NewProduct("Milk", 20, decimal.NewFromInt(3), now.AddDate(0, 0, -2), kg("1"))

	c := cart.New()
	for _, add := range []struct {
		item *catalog.Item
		qty  int
	}{
		{cheese, 2},
		{biscuits, 1},
		{scratchCard, 1},
		{tv, 1},
		{oldMilk, 1},
	} {
		if err := c.Add(add.item, add.qty); err != nil {
			fmt.Fprintf(errOut, "Could not add %s: %v\n", add.item.Title, err)
			log.Warn("add to cart failed", zap.String("item", add.item.Title), zap.Error(err))
		}
	}

	if _, err := svc.Checkout(customer, c); err != nil {
		fmt.Fprintf(errOut, "Checkout failed: %v\n", err)
	}

	fmt.Fprintln(out)
	if err := c.Add(tv, 4); err != nil {
		fmt.Fprintf(errOut, "Could not add %s: %v\n", tv.Title, err)
	}
	if _, err := svc.Checkout(customer, c); err != nil {
		fmt.Fprintf(errOut, "Checkout failed: %v\n", err)
	}
}
