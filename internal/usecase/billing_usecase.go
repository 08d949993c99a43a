package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"meditrack/internal/domain/billing"
	"meditrack/internal/domain/entities"
	"meditrack/internal/domain/errs"
	"meditrack/internal/domain/validator"
	"meditrack/internal/infrastructure/metrics"
	"meditrack/internal/usecase/interfaces"
)

var (
	ErrBillNotFound                   = errors.New("bill not found")
	ErrBillPaymentNotFound            = errors.New("bill payment not found")
	ErrAppointmentCancelled           = errors.New("appointment is cancelled")
	ErrBillAlreadyPaid                = errors.New("bill already paid")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions tunes how provider payloads are checked and enriched.
type PaymentOptions struct {
	// MockMode accepts empty or malformed payloads; the gateway fakes approval.
	MockMode bool
	// Sandbox enables the test payer fallbacks below.
	Sandbox         bool
	TestPayerEmail  string
	TestPayerUserID string
}

// IBillingUseCase issues bills for appointments and settles them.
type IBillingUseCase interface {
	GenerateForAppointment(ctx context.Context, appointmentID, strategy string) (entities.Bill, error)
	GetBill(ctx context.Context, id string) (entities.Bill, error)
	Pay(ctx context.Context, billID string, providerPayload json.RawMessage) (entities.BillPayment, error)
	GetPayment(ctx context.Context, id string) (entities.BillPayment, error)
	ListPayments(ctx context.Context, billID string) ([]entities.BillPayment, error)
}

type BillingUseCase struct {
	bills        interfaces.IBillRepository
	payments     interfaces.IBillPaymentRepository
	appointments interfaces.IAppointmentRepository
	factory      *billing.Factory
	strategies   *billing.Registry
	gateway      interfaces.IPaymentGateway
	archive      interfaces.IBillingArchive
	metrics      *metrics.ClinicMetrics
	opts         PaymentOptions
	clock        Clock
	payLocks     *keyedLock
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

// NewBillingUseCase wires the billing flow. gateway, archive and m may be nil.
func NewBillingUseCase(
	bills interfaces.IBillRepository,
	payments interfaces.IBillPaymentRepository,
	appointments interfaces.IAppointmentRepository,
	factory *billing.Factory,
	strategies *billing.Registry,
	gateway interfaces.IPaymentGateway,
	archive interfaces.IBillingArchive,
	m *metrics.ClinicMetrics,
	opts PaymentOptions,
) *BillingUseCase {
	return &BillingUseCase{
		bills:        bills,
		payments:     payments,
		appointments: appointments,
		factory:      factory,
		strategies:   strategies,
		gateway:      gateway,
		archive:      archive,
		metrics:      m,
		opts:         opts,
		clock:        clockOrDefault(nil),
		payLocks:     newKeyedLock(),
	}
}

// GenerateForAppointment bills the doctor's consultation fee.
//
// A blank strategy issues an itemized consultation bill at the default tax
// rate. A named strategy computes the total itself and the bill carries that
// total with no further tax.
func (u *BillingUseCase) GenerateForAppointment(ctx context.Context, appointmentID, strategy string) (entities.Bill, error) {
	log.Printf("[billing][usecase] generate start appointment_id=%q strategy=%q", appointmentID, strategy)
	appointmentID, err := validator.RequireNonBlank(appointmentID, "appointment_id")
	if err != nil {
		return entities.Bill{}, err
	}

	var chosen billing.Strategy
	if strings.TrimSpace(strategy) != "" {
		if chosen, err = u.strategies.Resolve(strategy); err != nil {
			log.Printf("[billing][usecase] unknown strategy appointment_id=%s strategy=%q", appointmentID, strategy)
			return entities.Bill{}, err
		}
	}

	a, err := u.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return entities.Bill{}, err
	}
	if a.ID == "" {
		log.Printf("[billing][usecase] appointment not found appointment_id=%s", appointmentID)
		return entities.Bill{}, errs.NotFound("appointment", appointmentID, ErrAppointmentNotFound)
	}
	if a.Status == entities.AppointmentStatusCancelled {
		log.Printf("[billing][usecase] appointment cancelled appointment_id=%s", appointmentID)
		return entities.Bill{}, ErrAppointmentCancelled
	}
	if a.Doctor == nil {
		return entities.Bill{}, errs.Invalid("doctor", "appointment %s has no doctor", appointmentID)
	}
	fee := a.Doctor.ConsultationFee

	var bill *entities.Bill
	if chosen == nil {
		bill, err = u.factory.CreateConsultationBill(appointmentID, fee)
	} else {
		bill, err = u.factory.CreateBillWithStrategy(appointmentID, fee, chosen)
	}
	if err != nil {
		log.Printf("[billing][usecase] bill computation failed appointment_id=%s err=%v", appointmentID, err)
		return entities.Bill{}, err
	}

	saved, err := u.bills.Save(ctx, *bill)
	if err != nil {
		log.Printf("[billing][usecase] bill save failed bill_id=%s err=%v", bill.ID, err)
		return entities.Bill{}, err
	}
	u.archiveBill(ctx, saved)
	u.metrics.ObserveBillIssued(saved.Strategy, saved.Currency, saved.AmountDue().InexactFloat64())
	log.Printf("[billing][usecase] generate success bill_id=%s appointment_id=%s strategy=%s amount_due=%s %s",
		saved.ID, appointmentID, saved.Strategy, saved.AmountDue().StringFixed(entities.MoneyScale), saved.Currency)
	return saved, nil
}

func (u *BillingUseCase) GetBill(ctx context.Context, id string) (entities.Bill, error) {
	id, err := validator.RequireNonBlank(id, "bill_id")
	if err != nil {
		return entities.Bill{}, err
	}
	b, err := u.bills.GetByID(ctx, id)
	if err != nil {
		return entities.Bill{}, err
	}
	if b.ID == "" {
		return entities.Bill{}, errs.NotFound("bill", id, ErrBillNotFound)
	}
	return b, nil
}

// Pay settles a bill through the payment gateway. The bill's amount due
// always overrides any transaction_amount sent by the caller.
//
// Payments for the same bill run one at a time, from the paid check until the
// outcome is stored, so a bill is charged at most once.
func (u *BillingUseCase) Pay(ctx context.Context, billID string, providerPayload json.RawMessage) (entities.BillPayment, error) {
	log.Printf("[payment][usecase] pay start raw_bill_id=%q payload_len=%d", billID, len(providerPayload))
	billID, err := validator.RequireNonBlank(billID, "bill_id")
	if err != nil {
		return entities.BillPayment{}, err
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !u.opts.MockMode {
			log.Printf("[payment][usecase] invalid payload bill_id=%s", billID)
			return entities.BillPayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured bill_id=%s", billID)
		return entities.BillPayment{}, ErrPaymentGatewayNotConfigured
	}

	unlock := u.payLocks.lock(billID)
	defer unlock()

	bill, err := u.GetBill(ctx, billID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading bill bill_id=%s err=%v", billID, err)
		return entities.BillPayment{}, err
	}
	if bill.Status == entities.BillStatusPaid {
		log.Printf("[payment][usecase] bill already paid bill_id=%s", billID)
		return entities.BillPayment{}, ErrBillAlreadyPaid
	}
	amountDue := bill.AmountDue()
	log.Printf("[payment][usecase] bill loaded bill_id=%s amount_due=%s %s", billID, amountDue.StringFixed(entities.MoneyScale), bill.Currency)

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		if !u.opts.MockMode {
			return entities.BillPayment{}, ErrInvalidProviderPayload
		}
		reqMap = map[string]any{}
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id bill_id=%s", billID)
			return entities.BillPayment{}, ErrInvalidProviderPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer bill_id=%s", billID)
			return entities.BillPayment{}, ErrInvalidProviderPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = billID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Consultation bill %s (appointment %s)", billID, bill.AppointmentID)
	}
	reqMap["transaction_amount"] = amountDue.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BillPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed bill_id=%s err=%v", billID, err)
		return entities.BillPayment{}, mapGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success bill_id=%s provider_payment_id=%s provider_status=%s", billID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed bill_id=%s err=%v", billID, err)
	}

	p := entities.BillPayment{
		ID:                 providerPaymentID,
		BillID:             billID,
		Amount:             amountDue,
		Currency:           bill.Currency,
		Date:               u.clock(),
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	approved := p.Status == entities.PaymentStatusApproved
	paid := bill
	if approved {
		paid.Status = entities.BillStatusPaid
		if _, err := u.bills.Save(ctx, paid); err != nil {
			log.Printf("[payment][usecase] bill status update failed bill_id=%s provider_payment_id=%s err=%v", billID, p.ID, err)
			return entities.BillPayment{}, err
		}
	}
	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed bill_id=%s payment_id=%s err=%v", billID, p.ID, err)
		if approved {
			if _, rbErr := u.bills.Save(ctx, bill); rbErr != nil {
				log.Printf("[payment][usecase] bill status rollback failed bill_id=%s err=%v", billID, rbErr)
			}
		}
		return entities.BillPayment{}, err
	}
	u.metrics.ObservePayment(string(created.Status))
	u.archivePayment(ctx, created)
	if approved {
		u.archiveBill(ctx, paid)
	}
	log.Printf("[payment][usecase] pay success bill_id=%s payment_id=%s status=%s", billID, created.ID, created.Status)
	return created, nil
}

func (u *BillingUseCase) GetPayment(ctx context.Context, id string) (entities.BillPayment, error) {
	id, err := validator.RequireNonBlank(id, "payment_id")
	if err != nil {
		return entities.BillPayment{}, err
	}
	p, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return entities.BillPayment{}, err
	}
	if p.ID == "" {
		return entities.BillPayment{}, errs.NotFound("bill payment", id, ErrBillPaymentNotFound)
	}
	return p, nil
}

// ListPayments returns the bill's payments in recording order.
func (u *BillingUseCase) ListPayments(ctx context.Context, billID string) ([]entities.BillPayment, error) {
	if _, err := u.GetBill(ctx, billID); err != nil {
		return nil, err
	}
	return u.payments.ListByBillID(ctx, strings.TrimSpace(billID))
}

// The archive is a copy; a failed export never undoes the in-memory write.
func (u *BillingUseCase) archiveBill(ctx context.Context, b entities.Bill) {
	if u.archive == nil {
		return
	}
	if err := u.archive.ArchiveBill(ctx, b); err != nil {
		u.metrics.ObserveArchiveFailure("bill")
		log.Printf("[billing][archive] bill export failed bill_id=%s err=%v", b.ID, err)
	}
}

func (u *BillingUseCase) archivePayment(ctx context.Context, p entities.BillPayment) {
	if u.archive == nil {
		return
	}
	if err := u.archive.ArchivePayment(ctx, p); err != nil {
		u.metrics.ObserveArchiveFailure("payment")
		log.Printf("[billing][archive] payment export failed payment_id=%s err=%v", p.ID, err)
	}
}

func mapGatewayError(err error) error {
	switch {
	case errors.Is(err, ErrPaymentGatewayNotConfigured):
		return err
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

// WithClock replaces the time source used for payment dates.
func (u *BillingUseCase) WithClock(c Clock) *BillingUseCase {
	u.clock = clockOrDefault(c)
	return u
}
