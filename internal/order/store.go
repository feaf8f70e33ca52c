package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusSold       Status = "SOLD"
	StatusCheckedOut Status = "CHECKED_OUT"
)

type Item struct {
	ItemID string          `json:"item_id"`
	Title  string          `json:"title"`
	Qty    int             `json:"qty"`
	Total  decimal.Decimal `json:"total"`
}

type Order struct {
	ID        string          `json:"id"`
	Customer  string          `json:"customer,omitempty"`
	Items     []Item          `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type Store interface {
	Create(o Order) error
	Get(id string) (Order, bool, error)
	List() ([]Order, error)
}

func NewID() string {
	return "o_" + uuid.NewString()
}
