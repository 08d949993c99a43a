package interfaces

import (
	"context"

	"meditrack/internal/domain/entities"
)

// IBillingArchive receives a copy of every issued bill and recorded payment.
// It is write-only: the service never reads back from it.
type IBillingArchive interface {
	ArchiveBill(ctx context.Context, b entities.Bill) error
	ArchivePayment(ctx context.Context, p entities.BillPayment) error
}
