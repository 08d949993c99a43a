package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement outcome reported by the payment provider.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// PaymentStatusFromProvider folds provider statuses into the three we track.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusRejected
	default:
		return PaymentStatusPending
	}
}

// BillPayment is one settlement attempt for a bill.
//
// ProviderPayloadRaw keeps the provider response body for audit;
// ProviderPayload is the parsed form, kept for querying/debugging.
type BillPayment struct {
	ID       string          `json:"id"`
	BillID   string          `json:"bill_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Date     time.Time       `json:"date"`
	Status   PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func (p *BillPayment) Clone() *BillPayment {
	if p == nil {
		return nil
	}
	c := *p
	if p.ProviderPayloadRaw != nil {
		c.ProviderPayloadRaw = append(json.RawMessage(nil), p.ProviderPayloadRaw...)
	}
	if p.ProviderPayload != nil {
		c.ProviderPayload = make(map[string]interface{}, len(p.ProviderPayload))
		for k, v := range p.ProviderPayload {
			c.ProviderPayload[k] = v
		}
	}
	return &c
}
