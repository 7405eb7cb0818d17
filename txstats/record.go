package txstats

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a transaction.
type Category string

const (
	CategoryDigital      Category = "digital"
	CategoryPhysical     Category = "physical"
	CategorySubscription Category = "subscription"
)

// ParseCategory validates and returns the category for a raw CSV value.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryDigital, CategoryPhysical, CategorySubscription:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Transaction is one row of the transactions file.
type Transaction struct {
	TransactionID string
	Timestamp     time.Time
	UserID        string
	Category      Category
	Item          string
	Quantity      int
	UnitPrice     decimal.Decimal
}

// Revenue returns quantity times unit price.
func (t Transaction) Revenue() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
}
