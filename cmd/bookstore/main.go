package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"QuantumStore/internal/catalog"
	"QuantumStore/internal/delivery"
	"QuantumStore/internal/inventory"
	"QuantumStore/internal/order"
	"QuantumStore/pkg/kit"
)

func main() {
	service := "bookstore"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	expiryYears := kit.GetenvInt("EXPIRY_YEARS", 10)

	reg := prometheus.NewRegistry()
	inv := inventory.New(inventory.Deps{
		Out:     os.Stdout,
		Log:     log,
		Metrics: kit.NewMetrics(reg),
	})

	if err := run(os.Stdout, inv, expiryYears); err != nil {
		log.Fatal("scenario failed", zap.Error(err))
	}
	dumpOrders(inv.Orders(), log)
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

func run(out io.Writer, inv *inventory.Inventory, expiryYears int) error {
	ebook := catalog.NewEBook("124548", "Effective Java", "Joshua Bloch",
		date(2017, time.December, 27), decimal.RequireFromString("45.99"), 5, "PDF")
	paperBook := catalog.NewPaperBook("666666", "Design Patterns", "Eric Freeman",
		date(2004, time.October, 25), decimal.RequireFromString("39.99"), 3)
	oldBook := catalog.NewPaperBook("7897855", "Old Book", "Old Author",
		date(2000, time.January, 1), decimal.RequireFromString("19.99"), 2)

	fmt.Fprintln(out, "\n->Add Books")
	for _, b := range []*catalog.Item{ebook, paperBook, oldBook} {
		if err := inv.Add(b); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, " Books added to inventory ")

	fmt.Fprintln(out, "\n->Buying EBook ")
	cost, err := inv.Purchase(ebook.ID, 1, delivery.Target{Email: "test@email.com"})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Bought EBook, total: $%s\n", cost.StringFixed(2))

	fmt.Fprintln(out, "\n->Buying PaperBook ")
	cost, err = inv.Purchase(paperBook.ID, 2, delivery.Target{Address: "123 Street"})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Bought PaperBook, total: $%s\n", cost.StringFixed(2))

	fmt.Fprintln(out, "\n->Buying More Than Available ")
	if err := expectFailure(out, inv, paperBook.ID, 10, "Some Address"); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n->Removing Expired Books ")
	for {
		removed, ok := inv.RemoveExpired(expiryYears)
		if !ok {
			break
		}
		fmt.Fprintf(out, "Removed expired book: %s\n", removed.Title)
	}

	fmt.Fprintln(out, "\n->Buying Removed Book ")
	if err := expectFailure(out, inv, oldBook.ID, 1, "Nowhere"); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nRevenue: $%s\n", inv.Revenue().StringFixed(2))
	fmt.Fprintln(out, "\n Test Completed ")
	return nil
}

func expectFailure(out io.Writer, inv *inventory.Inventory, id string, qty int, address string) error {
	_, err := inv.Purchase(id, qty, delivery.Target{Address: address})
	if err == nil {
		return fmt.Errorf("purchase of %d x %s unexpectedly succeeded", qty, id)
	}
	if !errors.Is(err, catalog.ErrInvalidOperation) {
		return err
	}
	fmt.Fprintf(out, "Expected failure: %v\n", err)
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
