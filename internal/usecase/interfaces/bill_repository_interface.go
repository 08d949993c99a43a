package interfaces

import (
	"context"

	"meditrack/internal/domain/entities"
)

type IBillRepository interface {
	Save(ctx context.Context, b entities.Bill) (entities.Bill, error)
	GetByID(ctx context.Context, id string) (entities.Bill, error)
	ListByAppointmentID(ctx context.Context, appointmentID string) ([]entities.Bill, error)
}

// IBillPaymentRepository keeps settlement attempts. Create fails when the id
// is already taken.
type IBillPaymentRepository interface {
	Create(ctx context.Context, p entities.BillPayment) (entities.BillPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillPayment, error)
	ListByBillID(ctx context.Context, billID string) ([]entities.BillPayment, error)
}
