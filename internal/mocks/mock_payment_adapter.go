package mocks

import (
	"context"

	"github.com/metinatakli/movie-ticket-system/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockPaymentAdapter struct {
	mock.Mock
	domain.PaymentAdapter
}

func (m *MockPaymentAdapter) Method() domain.PaymentMethod {
	args := m.Called()
	return args.Get(0).(domain.PaymentMethod)
}

func (m *MockPaymentAdapter) Pay(ctx context.Context, amount decimal.Decimal) (*domain.Payment, error) {
	args := m.Called(ctx, amount)

	payment, _ := args.Get(0).(*domain.Payment)
	return payment, args.Error(1)
}
