package billing

import (
	"time"

	"meditrack/internal/domain/entities"
	"meditrack/internal/domain/errs"
	"meditrack/internal/domain/validator"

	"github.com/shopspring/decimal"
)

// IDIssuer hands out bill identifiers.
type IDIssuer interface {
	NextID(prefix string) (string, error)
}

type Factory struct {
	ids         IDIssuer
	defaultRate decimal.Decimal
	currency    string
	now         func() time.Time
}

func NewFactory(ids IDIssuer, defaultRate decimal.Decimal, currency string) *Factory {
	return &Factory{ids: ids, defaultRate: defaultRate, currency: currency, now: time.Now}
}

// WithClock replaces the time source used for CreatedAt.
func (f *Factory) WithClock(now func() time.Time) *Factory {
	f.now = now
	return f
}

func (f *Factory) DefaultRate() decimal.Decimal { return f.defaultRate }

// CreateConsultationBill taxes base at the default flat rate.
func (f *Factory) CreateConsultationBill(referenceID string, base decimal.Decimal) (*entities.Bill, error) {
	ref, err := validator.RequireNonBlank(referenceID, "reference_id")
	if err != nil {
		return nil, err
	}
	if _, err := validator.RequireNonNegative(base, "base_amount"); err != nil {
		return nil, err
	}
	return f.newBill(ref, base, f.defaultRate, StrategyFlatTax)
}

// CreateBillWithStrategy stores the strategy total as the base amount with a
// zero tax rate, so AmountDue equals the strategy output exactly.
func (f *Factory) CreateBillWithStrategy(referenceID string, base decimal.Decimal, s Strategy) (*entities.Bill, error) {
	ref, err := validator.RequireNonBlank(referenceID, "reference_id")
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errs.Invalid("strategy", "must not be nil")
	}
	total, err := s.ComputeTotal(base)
	if err != nil {
		return nil, err
	}
	return f.newBill(ref, total, decimal.Zero, s.Name())
}

func (f *Factory) newBill(ref string, base, rate decimal.Decimal, strategy string) (*entities.Bill, error) {
	id, err := f.ids.NextID("BILL")
	if err != nil {
		return nil, err
	}
	return &entities.Bill{
		Entity:        entities.NewEntity(id, f.now()),
		AppointmentID: ref,
		BaseAmount:    base,
		TaxRate:       rate,
		Currency:      f.currency,
		Strategy:      strategy,
		Status:        entities.BillStatusPending,
	}, nil
}
