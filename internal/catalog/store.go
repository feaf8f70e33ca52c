package catalog

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindPaper   Kind = "paper"
	KindEBook   Kind = "ebook"
	KindDemo    Kind = "demo"
	KindProduct Kind = "product"
)

// DeliveryMethod says how a sold item reaches the buyer.
type DeliveryMethod int

const (
	DeliverNone DeliveryMethod = iota
	DeliverEmail
	DeliverAddress
)

func (m DeliveryMethod) String() string {
	switch m {
	case DeliverEmail:
		return "email"
	case DeliverAddress:
		return "address"
	default:
		return "none"
	}
}

// Item is a book or a product held in stock. Published and Expires are zero
// when unknown; Weight is only valid for items that ship physically.
type Item struct {
	ID        string              `json:"id" validate:"required"`
	Title     string              `json:"title" validate:"required"`
	Author    string              `json:"author,omitempty"`
	Kind      Kind                `json:"kind" validate:"oneof=paper ebook demo product"`
	FileType  string              `json:"file_type,omitempty"`
	Price     decimal.Decimal     `json:"price" validate:"-"`
	Quantity  int                 `json:"quantity" validate:"min=0"`
	Published time.Time           `json:"published,omitempty" validate:"-"`
	Expires   time.Time           `json:"expires,omitempty" validate:"-"`
	Weight    decimal.NullDecimal `json:"weight_kg" validate:"-"`
}

func NewPaperBook(isbn, title, author string, published time.Time, price decimal.Decimal, qty int) *Item {
	return &Item{ID: isbn, Title: title, Author: author, Kind: KindPaper, Published: published, Price: price, Quantity: qty}
}

func NewEBook(isbn, title, author string, published time.Time, price decimal.Decimal, qty int, fileType string) *Item {
	return &Item{ID: isbn, Title: title, Author: author, Kind: KindEBook, FileType: fileType, Published: published, Price: price, Quantity: qty}
}

func NewDemoBook(isbn, title, author string, published time.Time, price decimal.Decimal, qty int) *Item {
	return &Item{ID: isbn, Title: title, Author: author, Kind: KindDemo, Published: published, Price: price, Quantity: qty}
}

// NewProduct builds a grocery or electronics item. A zero expires means the
// product never goes off; a nil weight means it is not shipped.
func NewProduct(name string, qty int, price decimal.Decimal, expires time.Time, weight *decimal.Decimal) *Item {
	it := &Item{ID: name, Title: name, Kind: KindProduct, Quantity: qty, Price: price, Expires: expires}
	if weight != nil {
		it.Weight = decimal.NewNullDecimal(*weight)
	}
	return it
}

func (it *Item) IsExpired(now time.Time) bool {
	return !it.Expires.IsZero() && it.Expires.Before(now)
}

func (it *Item) IsAvailable(now time.Time) bool {
	return it.Quantity > 0 && !it.IsExpired(now)
}

func (it *Item) IsShippable() bool {
	return it.Weight.Valid
}

// ReferenceDate is the date expiry thresholds count from.
func (it *Item) ReferenceDate() time.Time {
	if !it.Published.IsZero() {
		return it.Published
	}
	return it.Expires
}

func (it *Item) Delivery() DeliveryMethod {
	switch it.Kind {
	case KindEBook:
		return DeliverEmail
	case KindPaper:
		return DeliverAddress
	default:
		return DeliverNone
	}
}

func (it *Item) ReduceQuantity(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, n)
	}
	if n > it.Quantity {
		return fmt.Errorf("%w: %s has %d, want %d", ErrInsufficientStock, it.ID, it.Quantity, n)
	}
	it.Quantity -= n
	return nil
}

func (it *Item) LineTotal(n int) decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(n)))
}

// LineWeight is zero for items that do not ship.
func (it *Item) LineWeight(n int) decimal.Decimal {
	if !it.Weight.Valid {
		return decimal.Zero
	}
	return it.Weight.Decimal.Mul(decimal.NewFromInt(int64(n)))
}
