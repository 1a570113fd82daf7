package service

import (
	"syncpos/internal/domain"

	"github.com/shopspring/decimal"
)

// TaxPolicy carries the GST rate as a fraction (0.18 for 18%). The pipeline
// never hardcodes the rate; the composition root builds the policy from the
// persisted settings.
type TaxPolicy struct {
	Rate decimal.Decimal
}

var defaultTaxRatePercent = decimal.NewFromInt(18)

func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicyFromPercent(defaultTaxRatePercent)
}

func TaxPolicyFromPercent(percent decimal.Decimal) TaxPolicy {
	if percent.LessThan(decimal.Zero) || percent.GreaterThan(decimal.NewFromInt(100)) {
		percent = defaultTaxRatePercent
	}
	return TaxPolicy{Rate: percent.Div(decimal.NewFromInt(100))}
}

// ComputeTotals is the pure subtotal → discount → tax → total pipeline.
// Arithmetic is exact; rounding happens only in Totals.Rounded.
func ComputeTotals(state domain.CartState, tax TaxPolicy) domain.Totals {
	subtotal := decimal.Zero
	itemCount := 0
	for _, line := range state.Items {
		subtotal = subtotal.Add(line.LineTotal())
		itemCount += line.Quantity
	}

	discountPercent := domain.ClampDiscount(state.DiscountPercent)
	discountAmount := subtotal.Mul(discountPercent).Div(decimal.NewFromInt(100))
	taxableAmount := subtotal.Sub(discountAmount)
	taxAmount := taxableAmount.Mul(tax.Rate)

	return domain.Totals{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		TaxableAmount:   taxableAmount,
		TaxAmount:       taxAmount,
		Total:           taxableAmount.Add(taxAmount),
		ItemCount:       itemCount,
	}
}
