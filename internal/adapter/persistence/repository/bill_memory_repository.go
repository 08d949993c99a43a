package repository

import (
	"context"
	"errors"
	"fmt"

	"meditrack/internal/domain/entities"
	"meditrack/internal/usecase/interfaces"
)

type BillMemoryRepository struct {
	store *lockedStore[entities.Bill]
}

var _ interfaces.IBillRepository = (*BillMemoryRepository)(nil)

func NewBillMemoryRepository() *BillMemoryRepository {
	return &BillMemoryRepository{store: newLockedStore((*entities.Bill).Clone)}
}

func (r *BillMemoryRepository) Save(_ context.Context, b entities.Bill) (entities.Bill, error) {
	if err := r.store.upsert(b.ID, b); err != nil {
		return entities.Bill{}, err
	}
	return b, nil
}

func (r *BillMemoryRepository) GetByID(_ context.Context, id string) (entities.Bill, error) {
	return r.store.get(id), nil
}

func (r *BillMemoryRepository) ListByAppointmentID(_ context.Context, appointmentID string) ([]entities.Bill, error) {
	return r.store.find(func(b *entities.Bill) bool { return b.AppointmentID == appointmentID }), nil
}

// BillPaymentMemoryRepository keeps payments in recording order.
type BillPaymentMemoryRepository struct {
	store *lockedStore[entities.BillPayment]
}

var _ interfaces.IBillPaymentRepository = (*BillPaymentMemoryRepository)(nil)

var ErrPaymentAlreadyExists = errors.New("bill payment already exists")

func NewBillPaymentMemoryRepository() *BillPaymentMemoryRepository {
	return &BillPaymentMemoryRepository{store: newLockedStore((*entities.BillPayment).Clone)}
}

func (r *BillPaymentMemoryRepository) Create(_ context.Context, p entities.BillPayment) (entities.BillPayment, error) {
	inserted, err := r.store.insert(p.ID, p)
	if err != nil {
		return entities.BillPayment{}, err
	}
	if !inserted {
		return entities.BillPayment{}, fmt.Errorf("%w: %s", ErrPaymentAlreadyExists, p.ID)
	}
	return p, nil
}

func (r *BillPaymentMemoryRepository) GetByID(_ context.Context, id string) (entities.BillPayment, error) {
	return r.store.get(id), nil
}

func (r *BillPaymentMemoryRepository) ListByBillID(_ context.Context, billID string) ([]entities.BillPayment, error) {
	return r.store.find(func(p *entities.BillPayment) bool { return p.BillID == billID }), nil
}
