package response

import (
	"time"

	"meditrack/internal/domain/entities"
)

type BillSummaryResponse struct {
	BillID        string `json:"bill_id"`
	AppointmentID string `json:"appointment_id"`
	BaseAmount    string `json:"base_amount"`
	TaxAmount     string `json:"tax_amount"`
	TotalAmount   string `json:"total_amount"`
	Currency      string `json:"currency"`
}

type BillResponse struct {
	ID            string              `json:"id"`
	AppointmentID string              `json:"appointment_id"`
	Strategy      string              `json:"strategy,omitempty"`
	Status        string              `json:"status"`
	TaxRate       string              `json:"tax_rate" example:"0.18"`
	AmountDue     string              `json:"amount_due" example:"1180.00"`
	CreatedAt     time.Time           `json:"created_at"`
	Summary       BillSummaryResponse `json:"summary"`
}

func FromBill(b entities.Bill) BillResponse {
	s := b.Summary()
	return BillResponse{
		ID:            b.ID,
		AppointmentID: b.AppointmentID,
		Strategy:      b.Strategy,
		Status:        string(b.Status),
		TaxRate:       b.TaxRate.String(),
		AmountDue:     b.AmountDue().StringFixed(entities.MoneyScale),
		CreatedAt:     b.CreatedAt,
		Summary: BillSummaryResponse{
			BillID:        s.BillID,
			AppointmentID: s.AppointmentID,
			BaseAmount:    s.BaseAmount.StringFixed(entities.MoneyScale),
			TaxAmount:     s.TaxAmount.StringFixed(entities.MoneyScale),
			TotalAmount:   s.TotalAmount.StringFixed(entities.MoneyScale),
			Currency:      s.Currency,
		},
	}
}

type BillPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	BillID      string    `json:"bill_id"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromBillPayment(p entities.BillPayment) BillPaymentResponse {
	return BillPaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		BillID:             p.BillID,
		Amount:             p.Amount.StringFixed(entities.MoneyScale),
		Currency:           p.Currency,
		PaymentDate:        p.Date,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromBillPayments(list []entities.BillPayment) []BillPaymentResponse {
	out := make([]BillPaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromBillPayment(p))
	}
	return out
}
