package domain

import "github.com/shopspring/decimal"

// RevenueSummary aggregates one day's collected orders for a restaurant.
type RevenueSummary struct {
	OrdersCount   int             `json:"orders_count"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxCollected  decimal.Decimal `json:"tax_collected"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	GrossRevenue  decimal.Decimal `json:"gross_revenue"`
}
