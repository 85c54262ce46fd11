// Package billing holds the monetary arithmetic shared by the HTTP layer,
// the persistence path and the PDF renderer. Both the saved aggregates and
// the printed totals come from the same Aggregate call, so they can never
// disagree.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/bonison01/invoice-cargo/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Aggregates is the (subtotal, tax, total) triple of an invoice.
type Aggregates struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Aggregate computes the triple from the item list and a percent tax rate.
// Pure: an empty list yields zeros. Callers are responsible for clamping
// taxRate into [0,100] before the persistence boundary (see ClampTaxRate).
func Aggregate(items []model.DeliveryItem, taxRate decimal.Decimal) Aggregates {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount)
	}
	tax := subtotal.Mul(taxRate).Div(hundred)
	return Aggregates{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// ClampTaxRate forces a percent rate into [0,100].
func ClampTaxRate(rate decimal.Decimal) decimal.Decimal {
	if rate.IsNegative() {
		return decimal.Zero
	}
	if rate.GreaterThan(hundred) {
		return hundred
	}
	return rate
}
