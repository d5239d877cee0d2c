package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/raamveerrr/pos/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		lines        []domain.CartLine
		taxRate      string
		serviceRate  string
		wantSubtotal string
		wantTax      string
		wantService  string
		wantTotal    string
	}{
		{
			name: "single line standard rates",
			lines: []domain.CartLine{
				{MenuItemID: "m1", UnitPrice: dec("85.00"), Quantity: 1},
			},
			taxRate:      "0.18",
			serviceRate:  "0.10",
			wantSubtotal: "85.00",
			wantTax:      "15.30",
			wantService:  "8.50",
			wantTotal:    "108.80",
		},
		{
			name: "multiple lines with quantities",
			lines: []domain.CartLine{
				{MenuItemID: "m1", UnitPrice: dec("120.50"), Quantity: 2},
				{MenuItemID: "m2", UnitPrice: dec("45.25"), Quantity: 3},
				{MenuItemID: "m3", UnitPrice: dec("9.99"), Quantity: 1},
			},
			taxRate:      "0.18",
			serviceRate:  "0.10",
			wantSubtotal: "386.74",
			wantTax:      "69.61",
			wantService:  "38.67",
			wantTotal:    "495.02",
		},
		{
			name:         "empty cart yields zeros for any rates",
			lines:        nil,
			taxRate:      "0.18",
			serviceRate:  "0.10",
			wantSubtotal: "0",
			wantTax:      "0",
			wantService:  "0",
			wantTotal:    "0",
		},
		{
			name: "zero rates",
			lines: []domain.CartLine{
				{MenuItemID: "m1", UnitPrice: dec("10.00"), Quantity: 5},
			},
			taxRate:      "0",
			serviceRate:  "0",
			wantSubtotal: "50.00",
			wantTax:      "0",
			wantService:  "0",
			wantTotal:    "50.00",
		},
		{
			name: "half-even rounding on tax",
			lines: []domain.CartLine{
				// 12.35 * 0.18 = 2.2230 -> 2.22; 12.35 * 0.10 = 1.235 -> 1.24 (ties to even)
				{MenuItemID: "m1", UnitPrice: dec("12.35"), Quantity: 1},
			},
			taxRate:      "0.18",
			serviceRate:  "0.10",
			wantSubtotal: "12.35",
			wantTax:      "2.22",
			wantService:  "1.24",
			wantTotal:    "15.81",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.lines, dec(tt.taxRate), dec(tt.serviceRate))

			assert.True(t, got.Subtotal.Equal(dec(tt.wantSubtotal)), "subtotal = %s, want %s", got.Subtotal, tt.wantSubtotal)
			assert.True(t, got.TaxAmount.Equal(dec(tt.wantTax)), "tax = %s, want %s", got.TaxAmount, tt.wantTax)
			assert.True(t, got.ServiceCharge.Equal(dec(tt.wantService)), "service = %s, want %s", got.ServiceCharge, tt.wantService)
			assert.True(t, got.Total.Equal(dec(tt.wantTotal)), "total = %s, want %s", got.Total, tt.wantTotal)
		})
	}
}

func TestComputeTotalsInvariants(t *testing.T) {
	lines := []domain.CartLine{
		{MenuItemID: "m1", UnitPrice: dec("33.33"), Quantity: 3},
		{MenuItemID: "m2", UnitPrice: dec("7.77"), Quantity: 7},
		{MenuItemID: "m3", UnitPrice: dec("199.95"), Quantity: 2},
	}
	taxRate, serviceRate := dec("0.18"), dec("0.10")

	got := ComputeTotals(lines, taxRate, serviceRate)

	// total is the exact sum of its persisted components
	assert.True(t, got.Total.Equal(got.Subtotal.Add(got.TaxAmount).Add(got.ServiceCharge)))

	// subtotal is exactly the sum of line totals
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	assert.True(t, got.Subtotal.Equal(sum))

	// pure function: same input, same output
	again := ComputeTotals(lines, taxRate, serviceRate)
	assert.True(t, got.Total.Equal(again.Total))
	assert.True(t, got.TaxAmount.Equal(again.TaxAmount))
}

func TestLineTotal(t *testing.T) {
	assert.True(t, LineTotal(dec("12.50"), 4).Equal(dec("50.00")))
	assert.True(t, LineTotal(dec("0.05"), 3).Equal(dec("0.15")))
}
