package tests

import (
	"testing"

	"syncpos/internal/domain"
	"syncpos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func billLine(t *testing.T, id string, unit string, qty int) domain.LineItem {
	t.Helper()
	return domain.LineItem{
		CartEntryID: id,
		MenuItemID:  id,
		UnitPrice:   dec(t, unit),
		Quantity:    qty,
	}
}

func TestComputeTotalsPipeline(t *testing.T) {
	// One customized pizza (299 + 50 + 40) and two plain burgers, 10% off.
	state := domain.CartState{
		Items: []domain.LineItem{
			billLine(t, "l1", "389", 1),
			billLine(t, "l2", "249", 2),
		},
		DiscountPercent: dec(t, "10"),
	}

	totals := service.ComputeTotals(state, service.DefaultTaxPolicy())

	assertDecimal(t, "887", totals.Subtotal)
	assertDecimal(t, "10", totals.DiscountPercent)
	assertDecimal(t, "88.7", totals.DiscountAmount)
	assertDecimal(t, "798.3", totals.TaxableAmount)
	assertDecimal(t, "143.694", totals.TaxAmount)
	assertDecimal(t, "941.994", totals.Total)
	assert.Equal(t, 3, totals.ItemCount)

	rounded := totals.Rounded()
	assert.Equal(t, "941.99", rounded.Total.StringFixed(2))
	assert.Equal(t, "143.69", rounded.TaxAmount.StringFixed(2))
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := service.ComputeTotals(domain.CartState{}, service.DefaultTaxPolicy())

	assertDecimal(t, "0", totals.Subtotal)
	assertDecimal(t, "0", totals.Total)
	assert.Equal(t, 0, totals.ItemCount)
}

func TestComputeTotalsDiscountClamped(t *testing.T) {
	tests := []struct {
		name        string
		percent     string
		wantPercent string
		wantTotal   string
	}{
		{name: "above range clamps to 100", percent: "150", wantPercent: "100", wantTotal: "0"},
		{name: "below range clamps to 0", percent: "-10", wantPercent: "0", wantTotal: "118"},
		{name: "in range unchanged", percent: "50", wantPercent: "50", wantTotal: "59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := domain.CartState{
				Items:           []domain.LineItem{billLine(t, "l1", "100", 1)},
				DiscountPercent: dec(t, tt.percent),
			}

			totals := service.ComputeTotals(state, service.DefaultTaxPolicy())

			assertDecimal(t, tt.wantPercent, totals.DiscountPercent)
			assertDecimal(t, tt.wantTotal, totals.Total)
		})
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	state := domain.CartState{
		Items:           []domain.LineItem{billLine(t, "l1", "389", 3)},
		DiscountPercent: dec(t, "7"),
	}

	first := service.ComputeTotals(state, service.DefaultTaxPolicy())
	second := service.ComputeTotals(state, service.DefaultTaxPolicy())

	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
	assert.Equal(t, first.ItemCount, second.ItemCount)
}

func TestComputeTotalsMonotonicInQuantity(t *testing.T) {
	smaller := domain.CartState{Items: []domain.LineItem{billLine(t, "l1", "249", 1)}}
	larger := domain.CartState{Items: []domain.LineItem{billLine(t, "l1", "249", 4)}}

	a := service.ComputeTotals(smaller, service.DefaultTaxPolicy())
	b := service.ComputeTotals(larger, service.DefaultTaxPolicy())

	assert.True(t, b.Total.GreaterThan(a.Total))
}

func TestTaxSplitHalves(t *testing.T) {
	totals := domain.Totals{TaxAmount: dec(t, "143.694")}

	cgst, sgst := totals.TaxSplit()

	assert.True(t, cgst.Equal(sgst))
	assertDecimal(t, "143.694", cgst.Add(sgst))
}

func TestTaxPolicyFromPercent(t *testing.T) {
	tests := []struct {
		name     string
		percent  decimal.Decimal
		wantRate string
	}{
		{name: "custom rate", percent: decimal.NewFromInt(5), wantRate: "0.05"},
		{name: "zero is valid", percent: decimal.Zero, wantRate: "0"},
		{name: "negative falls back to default", percent: decimal.NewFromInt(-1), wantRate: "0.18"},
		{name: "over 100 falls back to default", percent: decimal.NewFromInt(120), wantRate: "0.18"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := service.TaxPolicyFromPercent(tt.percent)
			assertDecimal(t, tt.wantRate, policy.Rate)
		})
	}
}
