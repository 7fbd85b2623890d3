package pkg

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PaymentIntent 支付网关占位实现返回的三元组。真实的
// Paystack/Stripe 接入和回调结算不在本服务内。
type PaymentIntent struct {
	PaymentURL    string `json:"payment_url"`
	TransactionID string `json:"transaction_id"`
	Reference     string `json:"reference"`
}

const paymentGatewayBase = "https://payment-gateway.com/pay"

// NewPaymentIntent 生成交易号和对账引用，拼占位支付链接
func NewPaymentIntent() (*PaymentIntent, error) {
	raw := make([]byte, 8)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	txID := "SAQ_" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	ref := "REF_" + strings.ToUpper(hex.EncodeToString(raw))
	return &PaymentIntent{
		PaymentURL:    fmt.Sprintf("%s/%s", paymentGatewayBase, ref),
		TransactionID: txID,
		Reference:     ref,
	}, nil
}
