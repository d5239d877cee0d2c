// Package pricing computes order totals from a cart and a restaurant's
// configured rates. It is pure: no I/O, no clock, identical output for
// identical input, so persisted totals are always reproducible.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/raamveerrr/pos/internal/domain"
)

// Totals is the monetary breakdown of a cart.
type Totals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	Total         decimal.Decimal `json:"total"`
}

// ComputeTotals sums the cart lines and applies the tax and service-charge
// rates (fractions, e.g. 0.18 for 18%). Tax and service charge are rounded
// half-even to cents; the subtotal is an exact sum, so the invariant
// total = subtotal + tax + service holds without tolerance.
func ComputeTotals(lines []domain.CartLine, taxRate, serviceRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(LineTotal(line.UnitPrice, line.Quantity))
	}

	tax := subtotal.Mul(taxRate).RoundBank(2)
	service := subtotal.Mul(serviceRate).RoundBank(2)

	return Totals{
		Subtotal:      subtotal,
		TaxAmount:     tax,
		ServiceCharge: service,
		Total:         subtotal.Add(tax).Add(service),
	}
}

// LineTotal is unitPrice x quantity, the value persisted on each order item.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
