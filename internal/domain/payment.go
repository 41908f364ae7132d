package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodKBBank    PaymentMethod = "KBBank"
	PaymentMethodTossBank  PaymentMethod = "TossBank"
	PaymentMethodKakaoBank PaymentMethod = "KakaoBank"
)

// PaymentMethods lists the supported methods in lookup order.
var PaymentMethods = []PaymentMethod{
	PaymentMethodKBBank,
	PaymentMethodTossBank,
	PaymentMethodKakaoBank,
}

func (m PaymentMethod) Valid() bool {
	for _, v := range PaymentMethods {
		if m == v {
			return true
		}
	}

	return false
}

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

const DefaultCurrency = "KRW"

// Payment is the receipt of a simulated bank transfer.
type Payment struct {
	ID       uuid.UUID
	UserName string
	Method   PaymentMethod
	Amount   decimal.Decimal
	Currency string
	Status   PaymentStatus
	PaidAt   time.Time
}

func NewPayment(method PaymentMethod, amount decimal.Decimal, paidAt time.Time) *Payment {
	return &Payment{
		ID:       uuid.New(),
		Method:   method,
		Amount:   amount,
		Currency: DefaultCurrency,
		Status:   PaymentStatusCompleted,
		PaidAt:   paidAt,
	}
}
