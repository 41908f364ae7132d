package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentAdapter gives every bank backend the same payment surface.
type PaymentAdapter interface {
	Method() PaymentMethod
	Pay(ctx context.Context, amount decimal.Decimal) (*Payment, error)
}
