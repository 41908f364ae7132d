package payment

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// The bank APIs below stand in for external payment systems. Each one has its
// own calling convention; the adapters in adapter.go hide the differences.

type KBBankAPI struct {
	out io.Writer
}

// SendKBPayment takes the amount in whole won.
func (api *KBBankAPI) SendKBPayment(won int64) {
	fmt.Fprintf(api.out, "[KBBank payment system] Paid %d via KB Bank\n", won)
}

type TossBankAPI struct {
	out io.Writer
}

func (api *TossBankAPI) SendTossPayment(amount decimal.Decimal) {
	fmt.Fprintf(api.out, "[TossBank payment system] Paid %s via Toss Bank\n", amount.String())
}

type KakaoBankAPI struct {
	out io.Writer
}

// SendKakaoPayment takes the amount as a decimal string.
func (api *KakaoBankAPI) SendKakaoPayment(amount string) {
	fmt.Fprintf(api.out, "[KakaoBank payment system] Paid %s via Kakao Bank\n", amount)
}
