package infra

import (
	"context"

	"github.com/shopspring/decimal"
)

type RazorpayClientInterface interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (*GatewayOrder, error)
	KeyID() string
}

var _ RazorpayClientInterface = (*RazorpayClient)(nil)
