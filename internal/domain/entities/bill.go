package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits a payable figure is rounded to.
const MoneyScale = 2

type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
)

// Bill is the payable artifact issued for an appointment.
//
// AmountDue is always round2(BaseAmount + BaseAmount*TaxRate), rounded once on
// the sum. Bills produced through a strategy carry the strategy total as
// BaseAmount and a zero TaxRate.
type Bill struct {
	Entity
	AppointmentID string          `json:"appointment_id"`
	BaseAmount    decimal.Decimal `json:"base_amount"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	Currency      string          `json:"currency"`
	Strategy      string          `json:"strategy,omitempty"`
	Status        BillStatus      `json:"status"`
}

// TaxAmount is rounded to two digits for display.
func (b *Bill) TaxAmount() decimal.Decimal {
	return b.BaseAmount.Mul(b.TaxRate).Round(MoneyScale)
}

func (b *Bill) AmountDue() decimal.Decimal {
	return b.BaseAmount.Add(b.BaseAmount.Mul(b.TaxRate)).Round(MoneyScale)
}

func (b *Bill) Clone() *Bill {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

func (b *Bill) Summary() BillSummary {
	return BillSummary{
		BillID:        b.ID,
		AppointmentID: b.AppointmentID,
		BaseAmount:    b.BaseAmount.Round(MoneyScale),
		TaxAmount:     b.TaxAmount(),
		TotalAmount:   b.AmountDue(),
		Currency:      b.Currency,
	}
}

func (b *Bill) Describe() string {
	return describe("Bill", b.Entity, fmt.Sprintf("appointment=%s, base=%s, taxRate=%s, total=%s %s, status=%s",
		b.AppointmentID, b.BaseAmount.StringFixed(MoneyScale), b.TaxRate.String(),
		b.AmountDue().StringFixed(MoneyScale), b.Currency, b.Status))
}

// BillSummary is a read-only snapshot of a bill's figures.
type BillSummary struct {
	BillID        string          `json:"bill_id"`
	AppointmentID string          `json:"appointment_id"`
	BaseAmount    decimal.Decimal `json:"base_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Currency      string          `json:"currency"`
}
