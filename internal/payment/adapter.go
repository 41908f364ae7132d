package payment

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
	"github.com/shopspring/decimal"
)

type KBBankAdapter struct {
	api *KBBankAPI
	now func() time.Time
}

func (a *KBBankAdapter) Method() domain.PaymentMethod {
	return domain.PaymentMethodKBBank
}

func (a *KBBankAdapter) Pay(ctx context.Context, amount decimal.Decimal) (*domain.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// KB Bank only settles whole won.
	won := amount.Round(0)
	a.api.SendKBPayment(won.IntPart())

	return domain.NewPayment(a.Method(), won, a.now()), nil
}

type TossBankAdapter struct {
	api *TossBankAPI
	now func() time.Time
}

func (a *TossBankAdapter) Method() domain.PaymentMethod {
	return domain.PaymentMethodTossBank
}

func (a *TossBankAdapter) Pay(ctx context.Context, amount decimal.Decimal) (*domain.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.api.SendTossPayment(amount)

	return domain.NewPayment(a.Method(), amount, a.now()), nil
}

type KakaoBankAdapter struct {
	api *KakaoBankAPI
	now func() time.Time
}

func (a *KakaoBankAdapter) Method() domain.PaymentMethod {
	return domain.PaymentMethodKakaoBank
}

func (a *KakaoBankAdapter) Pay(ctx context.Context, amount decimal.Decimal) (*domain.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.api.SendKakaoPayment(amount.String())

	return domain.NewPayment(a.Method(), amount, a.now()), nil
}

// NewAdapter returns the adapter for a payment method label. Bank output is
// written to out.
func NewAdapter(method domain.PaymentMethod, out io.Writer) (domain.PaymentAdapter, error) {
	if out == nil {
		out = io.Discard
	}

	switch method {
	case domain.PaymentMethodKBBank:
		return &KBBankAdapter{api: &KBBankAPI{out: out}, now: time.Now}, nil
	case domain.PaymentMethodTossBank:
		return &TossBankAdapter{api: &TossBankAPI{out: out}, now: time.Now}, nil
	case domain.PaymentMethodKakaoBank:
		return &KakaoBankAdapter{api: &KakaoBankAPI{out: out}, now: time.Now}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedPaymentMethod, method)
	}
}
