package billing

import (
	"github.com/shopspring/decimal"

	"github.com/bonison01/invoice-cargo/internal/model"
)

// ItemAmount derives the billable amount of a line: base charge + weight charge.
func ItemAmount(baseCharge, weightCharge decimal.Decimal) decimal.Decimal {
	return baseCharge.Add(weightCharge)
}

// NormalizeItem is the single write path for a delivery item's numeric fields.
// Negative charges and weights are coerced to zero, quantity to a minimum of 1,
// the weight unit defaults to kg, and Amount is recomputed from the charges.
// Whatever Amount the caller had set is discarded.
func NormalizeItem(it *model.DeliveryItem) {
	if it.BaseCharge.IsNegative() {
		it.BaseCharge = decimal.Zero
	}
	if it.WeightCharge.IsNegative() {
		it.WeightCharge = decimal.Zero
	}
	if it.Weight.IsNegative() {
		it.Weight = decimal.Zero
	}
	if it.Quantity < 1 {
		it.Quantity = 1
	}
	if it.WeightUnit == "" {
		it.WeightUnit = "kg"
	}
	if it.DeliveryMode == "" {
		it.DeliveryMode = model.DeliveryModeStandard
	}
	it.Amount = ItemAmount(it.BaseCharge, it.WeightCharge)
}
