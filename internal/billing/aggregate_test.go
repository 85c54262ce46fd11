package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bonison01/invoice-cargo/internal/model"
)

func item(base, weight string) model.DeliveryItem {
	it := model.DeliveryItem{
		ItemType:     model.ItemTypeParcel,
		BaseCharge:   decimal.RequireFromString(base),
		WeightCharge: decimal.RequireFromString(weight),
	}
	NormalizeItem(&it)
	return it
}

func TestAggregateEmptyItems(t *testing.T) {
	agg := Aggregate(nil, decimal.NewFromInt(18))

	assert.True(t, agg.Subtotal.IsZero(), "subtotal = %s", agg.Subtotal)
	assert.True(t, agg.Tax.IsZero(), "tax = %s", agg.Tax)
	assert.True(t, agg.Total.IsZero(), "total = %s", agg.Total)
}

func TestAggregateTwoItemsNoTax(t *testing.T) {
	items := []model.DeliveryItem{
		item("100", "20"),
		item("50", "5"),
	}
	agg := Aggregate(items, decimal.Zero)

	assert.Equal(t, "120.00", items[0].Amount.StringFixed(2))
	assert.Equal(t, "55.00", items[1].Amount.StringFixed(2))
	assert.Equal(t, "175.00", agg.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", agg.Tax.StringFixed(2))
	assert.Equal(t, "175.00", agg.Total.StringFixed(2))
}

func TestAggregateTaxedTotalIdentity(t *testing.T) {
	items := []model.DeliveryItem{
		item("100", "0"),
		item("200", "49.50"),
		item("0.01", "0"),
	}
	rate := decimal.RequireFromString("12.5")
	agg := Aggregate(items, rate)

	assert.Equal(t, "349.51", agg.Subtotal.StringFixed(2))
	assert.True(t, agg.Total.Equal(agg.Subtotal.Add(agg.Tax)),
		"total %s != subtotal %s + tax %s", agg.Total, agg.Subtotal, agg.Tax)
}

func TestNormalizeItemDerivesAmount(t *testing.T) {
	it := model.DeliveryItem{
		BaseCharge:   decimal.NewFromInt(100),
		WeightCharge: decimal.NewFromInt(20),
		// A client-supplied amount must be discarded
		Amount: decimal.NewFromInt(9999),
	}
	NormalizeItem(&it)
	assert.Equal(t, "120.00", it.Amount.StringFixed(2))

	// Amount follows any change to either charge
	it.WeightCharge = decimal.NewFromInt(30)
	NormalizeItem(&it)
	assert.Equal(t, "130.00", it.Amount.StringFixed(2))
}

func TestNormalizeItemCoercesBadNumbers(t *testing.T) {
	it := model.DeliveryItem{
		BaseCharge:   decimal.NewFromInt(-5),
		WeightCharge: decimal.NewFromInt(-1),
		Weight:       decimal.NewFromInt(-2),
		Quantity:     0,
	}
	NormalizeItem(&it)

	assert.True(t, it.BaseCharge.IsZero())
	assert.True(t, it.WeightCharge.IsZero())
	assert.True(t, it.Weight.IsZero())
	assert.Equal(t, 1, it.Quantity)
	assert.Equal(t, "kg", it.WeightUnit)
	assert.Equal(t, model.DeliveryModeStandard, it.DeliveryMode)
	assert.True(t, it.Amount.IsZero())
}

func TestClampTaxRate(t *testing.T) {
	assert.True(t, ClampTaxRate(decimal.NewFromInt(-3)).IsZero())
	assert.Equal(t, "100", ClampTaxRate(decimal.NewFromInt(150)).String())
	assert.Equal(t, "18", ClampTaxRate(decimal.NewFromInt(18)).String())
}
